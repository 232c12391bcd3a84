package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/retailpos/cashledger/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// WebhookNotifier POSTs each event to the configured endpoint. Delivery runs
// on a worker pool with bounded retries; a delivery failure is logged and
// dropped, never surfaced to the caller.
type WebhookNotifier struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func NewWebhookNotifier(url string, client clients.HTTPClientI) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

func (n *WebhookNotifier) Publish(ctx context.Context, event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode change event", zap.Error(err))
		return
	}

	err = n.workerPool.AddTask(ctx, func() error {
		return n.deliver(body, event)
	})
	if err != nil {
		zap.L().Warn("change event dropped", zap.String("event_id", event.ID), zap.Error(err))
	}
}

func (n *WebhookNotifier) deliver(body []byte, event Event) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < http.StatusMultipleChoices {
				zap.L().Debug("change event delivered",
					zap.String("event_id", event.ID),
					zap.String("type", string(event.Type)),
				)
				return nil
			}
			err = fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		lastErr = err
		time.Sleep(retryInterval)
	}
	return fmt.Errorf("event %s undelivered after %d attempts: %w", event.ID, maxRetries, lastErr)
}

func (n *WebhookNotifier) Close() {
	n.workerPool.Close()
}
