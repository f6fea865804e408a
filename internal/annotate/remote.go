package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

type RemoteAnnotator struct {
	URL        string
	HTTPClient *http.Client
	logger     internal.Logger
}

func NewRemoteAnnotator(url string, timeout time.Duration, logger internal.Logger) *RemoteAnnotator {
	return &RemoteAnnotator{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (a *RemoteAnnotator) Annotate(ctx context.Context, rec record.Record) (*Analysis, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL, bytes.NewReader(payload))
	if err != nil {
		a.logger.Errorf("annotate: failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		a.logger.Errorf("annotate: failed to call insight service: %v", err)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		a.logger.Errorf("annotate: insight service returned %d", resp.StatusCode)
		return nil, errors.New("insight service returned non-200")
	}
	var out Analysis
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		a.logger.Errorf("annotate: failed to decode insight response: %v", err)
		return nil, err
	}
	return &out, nil
}

var _ Annotator = (*RemoteAnnotator)(nil)
