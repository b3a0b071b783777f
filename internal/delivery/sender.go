// Package delivery hands synthesized records to the ingestion endpoint.
// Delivery is at-most-once: a failed send is logged and the record is
// dropped, never re-queued.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"atm-stream-generator/internal/metrics"
	"atm-stream-generator/internal/models"
)

// Sender posts one transaction record per request to the ingestion endpoint.
type Sender struct {
	endpoint string
	client   *http.Client
}

// NewSender creates a Sender for endpoint with the given request timeout.
func NewSender(endpoint string, timeout time.Duration) *Sender {
	return &Sender{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send posts tx as JSON. Only an HTTP 200 counts as a successful delivery.
func (s *Sender) Send(ctx context.Context, tx models.Transaction) error {
	body, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.SendFailures.Inc()
		return fmt.Errorf("send transaction: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		metrics.SendFailures.Inc()
		return fmt.Errorf("send transaction: HTTP %d", resp.StatusCode)
	}

	metrics.TransactionsSent.Inc()
	return nil
}
