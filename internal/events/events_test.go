package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/pkg/clients"
)

func TestNewEvent(t *testing.T) {
	req := &domain.TransferRequest{ID: "req-1", TenantID: "tenant-1", Status: domain.StatusCompleted}

	event := NewEvent(TypeRequestCompleted, req)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, TypeRequestCompleted, event.Type)
	assert.Equal(t, "tenant-1", event.TenantID)
	assert.Equal(t, req, event.Request)
	assert.WithinDuration(t, time.Now(), event.OccurredAt, time.Second)
}

func TestWebhookNotifier_Publish(t *testing.T) {
	received := make(chan Event, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var event Event
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		received <- event
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, clients.NewHTTPClient())
	defer notifier.Close()

	req := &domain.TransferRequest{ID: "req-1", TenantID: "tenant-1", Status: domain.StatusCompleted}
	notifier.Publish(context.Background(), NewEvent(TypeRequestCompleted, req))

	select {
	case event := <-received:
		assert.Equal(t, TypeRequestCompleted, event.Type)
		assert.Equal(t, "req-1", event.Request.ID)
	case <-time.After(3 * time.Second):
		t.Fatal("webhook was never called")
	}
}

type failingClient struct {
	calls int
}

func (c *failingClient) Do(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("connection refused")
}

func TestWebhookNotifier_DeliverRetries(t *testing.T) {
	client := &failingClient{}
	notifier := NewWebhookNotifier("http://localhost:1", client)
	defer notifier.Close()

	event := NewEvent(TypeRequestCreated, &domain.TransferRequest{ID: "req-1", TenantID: "tenant-1"})
	body, err := json.Marshal(event)
	assert.NoError(t, err)

	err = notifier.deliver(body, event)
	assert.Error(t, err)
	assert.Equal(t, maxRetries, client.calls)
}

func TestWebhookNotifier_PublishCancelledContext(t *testing.T) {
	notifier := &WebhookNotifier{
		url:        "http://localhost:1",
		client:     &failingClient{},
		workerPool: NewWorkerPool(0),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the pool has no capacity and the context is done, the event is dropped
	notifier.Publish(ctx, NewEvent(TypeRequestCreated, &domain.TransferRequest{ID: "req-1", TenantID: "tenant-1"}))
}

func TestNopNotifier(t *testing.T) {
	var notifier NopNotifier
	notifier.Publish(context.Background(), Event{ID: "evt-1"})
}
