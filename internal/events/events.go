package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/retailpos/cashledger/internal/domain"
)

type Type string

const (
	TypeRequestCreated   Type = "transfer_request.created"
	TypeRequestRejected  Type = "transfer_request.rejected"
	TypeRequestCancelled Type = "transfer_request.cancelled"
	TypeRequestCompleted Type = "transfer_request.completed"
)

// Event is the change record handed to the external notification layer on
// every transfer request transition. The payload is the full updated record.
type Event struct {
	ID         string                  `json:"id"`
	Type       Type                    `json:"type"`
	TenantID   string                  `json:"tenant_id"`
	OccurredAt time.Time               `json:"occurred_at"`
	Request    *domain.TransferRequest `json:"request"`
}

func NewEvent(eventType Type, req *domain.TransferRequest) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		TenantID:   req.TenantID,
		OccurredAt: time.Now(),
		Request:    req,
	}
}

// Notifier delivers change events. Delivery is best-effort and must never
// influence the outcome of the transaction that produced the event.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}

// NopNotifier drops all events; used when no webhook address is configured.
type NopNotifier struct{}

func (NopNotifier) Publish(context.Context, Event) {}
