package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	v := View{Authenticated: true}.Normalize()
	assert.Equal(t, MetricNightOwl, v.Metric)
	assert.Equal(t, ScopeFriends, v.Scope)

	v = View{Authenticated: false}.Normalize()
	assert.Equal(t, ScopeGlobal, v.Scope)
}

func TestNormalizeForcesGlobalWhenAnonymous(t *testing.T) {
	// A previously selected friends scope does not survive logout.
	v := View{Metric: MetricEarlyBird, Scope: ScopeFriends, Authenticated: false}.Normalize()
	assert.Equal(t, ScopeGlobal, v.Scope)
	assert.Equal(t, MetricEarlyBird, v.Metric)
}

func TestComposeAuthenticatedFriends(t *testing.T) {
	friends := []Summary{{ID: "f1"}, {ID: "f2"}}
	global := []Summary{{ID: "g1"}}
	self := &Summary{ID: "me"}

	got := Compose(View{Scope: ScopeFriends, Authenticated: true}, friends, global, self)
	assert.Equal(t, []string{"f1", "f2", "me"}, ids(got))
	assert.True(t, got[2].IsSelf, "self entry is marked")
}

func TestComposeAuthenticatedGlobalIncludesSelf(t *testing.T) {
	global := []Summary{{ID: "g1"}, {ID: "g2"}}
	self := &Summary{ID: "me"}

	got := Compose(View{Scope: ScopeGlobal, Authenticated: true}, nil, global, self)
	assert.Equal(t, []string{"g1", "g2", "me"}, ids(got))
}

func TestComposeAnonymousNeverIncludesSelf(t *testing.T) {
	friends := []Summary{{ID: "f1"}}
	global := []Summary{{ID: "g1"}}
	self := &Summary{ID: "me"}

	got := Compose(View{Scope: ScopeFriends, Authenticated: false}, friends, global, self)
	assert.Equal(t, []string{"g1"}, ids(got), "anonymous callers see global only")
	for _, s := range got {
		assert.False(t, s.IsSelf)
	}
}

func TestComposeSelfWithoutRecordsIsOmitted(t *testing.T) {
	global := []Summary{{ID: "g1"}}
	got := Compose(View{Scope: ScopeGlobal, Authenticated: true}, nil, global, nil)
	assert.Equal(t, []string{"g1"}, ids(got))
}
