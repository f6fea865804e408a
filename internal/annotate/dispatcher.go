package annotate

import (
	"context"
	"sync"
	"time"

	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

// Dispatcher runs annotation as a one-shot task after a record completes and
// caches the latest result for the presentation layer. The lifecycle never
// waits on it; an abandoned call leaves state untouched.
type Dispatcher struct {
	ann     Annotator // nil means fallback-only
	timeout time.Duration
	logger  internal.Logger

	mu   sync.RWMutex
	last *Analysis
}

func NewDispatcher(ann Annotator, timeout time.Duration, logger internal.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{ann: ann, timeout: timeout, logger: logger}
}

// Dispatch fires annotation in the background.
func (d *Dispatcher) Dispatch(rec record.Record) {
	go d.Annotate(rec)
}

// Annotate runs one annotation synchronously, substituting the fixed
// fallback when the service fails, and caches the result.
func (d *Dispatcher) Annotate(rec record.Record) *Analysis {
	out := Fallback(rec)
	if d.ann != nil {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if got, err := d.ann.Annotate(ctx, rec); err == nil && got != nil {
			out = got
		} else if err != nil {
			d.logger.Warnf("annotate: falling back for %s: %v", rec.Date, err)
		}
	}
	d.mu.Lock()
	d.last = out
	d.mu.Unlock()
	return out
}

// Last returns the most recent analysis, or nil before any dispatch.
func (d *Dispatcher) Last() *Analysis {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.last
}
