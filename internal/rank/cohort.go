package rank

type Scope string

const (
	ScopeFriends Scope = "friends"
	ScopeGlobal  Scope = "global"
)

// View is the explicit ranking configuration threaded through each call;
// there is no ambient selected-metric or selected-scope state.
type View struct {
	Metric        Metric
	Scope         Scope
	Authenticated bool
}

// Normalize fills defaults and enforces eligibility: an anonymous caller is
// forced onto the global scope even if friends was selected.
func (v View) Normalize() View {
	if !v.Metric.Valid() {
		v.Metric = MetricNightOwl
	}
	if v.Scope != ScopeFriends && v.Scope != ScopeGlobal {
		if v.Authenticated {
			v.Scope = ScopeFriends
		} else {
			v.Scope = ScopeGlobal
		}
	}
	if !v.Authenticated {
		v.Scope = ScopeGlobal
	}
	return v
}

// Compose merges the active source with the caller's own summary into the
// list the ranking consumes. Anonymous callers get the global source only,
// with no self entry. Self is appended after the source, marked IsSelf.
func Compose(v View, friends, global []Summary, self *Summary) []Summary {
	v = v.Normalize()
	base := global
	if v.Scope == ScopeFriends {
		base = friends
	}
	out := make([]Summary, 0, len(base)+1)
	out = append(out, base...)
	if v.Authenticated && self != nil {
		s := *self
		s.IsSelf = true
		out = append(out, s)
	}
	return out
}
