// Package annotate hands finished records to the external insight service.
// The annotator is advisory only: its result updates presentation state and
// never gates a lifecycle transition.
package annotate

import (
	"context"

	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

type Analysis struct {
	Score      int    `json:"score"`
	Insight    string `json:"insight"`
	Suggestion string `json:"suggestion"`
}

type Annotator interface {
	Annotate(ctx context.Context, rec record.Record) (*Analysis, error)
}

// Fallback is the fixed advisory substitute used when the annotator fails
// or is not configured.
func Fallback(rec record.Record) *Analysis {
	if rec.Status == record.StatusIncomplete {
		return &Analysis{
			Score:      0,
			Insight:    "Looks like you're still dreaming!",
			Suggestion: "Don't forget to stop the timer when you wake up.",
		}
	}
	return &Analysis{
		Score:      85,
		Insight:    "Analysis unavailable currently.",
		Suggestion: "Try to maintain a consistent schedule.",
	}
}
