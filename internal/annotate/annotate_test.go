package annotate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

type stubAnnotator struct {
	out *Analysis
	err error
}

func (s *stubAnnotator) Annotate(ctx context.Context, rec record.Record) (*Analysis, error) {
	return s.out, s.err
}

func completeRecord() record.Record {
	r := record.StartSleep(nil, "u1", "2026-09-01", "23:00")
	return *record.WakeUp(r, "07:00")
}

func TestFallbackValues(t *testing.T) {
	open := record.Record{Status: record.StatusIncomplete}
	f := Fallback(open)
	assert.Equal(t, 0, f.Score)
	assert.Equal(t, "Looks like you're still dreaming!", f.Insight)

	f = Fallback(completeRecord())
	assert.Equal(t, 85, f.Score)
	assert.Equal(t, "Analysis unavailable currently.", f.Insight)
	assert.Equal(t, "Try to maintain a consistent schedule.", f.Suggestion)
}

func TestDispatcherCachesServiceResult(t *testing.T) {
	want := &Analysis{Score: 91, Insight: "Solid night.", Suggestion: "Keep it up."}
	d := NewDispatcher(&stubAnnotator{out: want}, 0, internal.NopLogger())

	assert.Nil(t, d.Last(), "nothing cached before the first dispatch")

	got := d.Annotate(completeRecord())
	assert.Equal(t, want, got)
	assert.Equal(t, want, d.Last())
}

func TestDispatcherFallsBackOnError(t *testing.T) {
	d := NewDispatcher(&stubAnnotator{err: errors.New("boom")}, 0, internal.NopLogger())

	got := d.Annotate(completeRecord())
	require.NotNil(t, got)
	assert.Equal(t, 85, got.Score)
	assert.Equal(t, got, d.Last())
}

func TestDispatcherWithoutAnnotatorUsesFallback(t *testing.T) {
	d := NewDispatcher(nil, 0, internal.NopLogger())
	got := d.Annotate(completeRecord())
	assert.Equal(t, Fallback(completeRecord()), got)
}
