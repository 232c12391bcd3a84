package transferrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/pg"
)

const transferColumns = `id, tenant_id, type, amount, currency, requested_by, counterparty_id,
       source_drawer_id, dest_drawer_id, dest_account_id, reason, notes, reference_number,
       status, requested_at, responded_at, responded_by, completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransfer(row pgx.Row) (*domain.TransferRequest, error) {
	var t domain.TransferRequest
	err := row.Scan(
		&t.ID, &t.TenantID, &t.Type, &t.Amount, &t.Currency, &t.RequestedBy, &t.CounterpartyID,
		&t.SourceDrawerID, &t.DestDrawerID, &t.DestAccountID, &t.Reason, &t.Notes, &t.ReferenceNumber,
		&t.Status, &t.RequestedAt, &t.RespondedAt, &t.RespondedBy, &t.CompletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.TransferRequest) (*domain.TransferRequest, error) {
	query := `
        INSERT INTO transfer_requests (id, tenant_id, type, amount, currency, requested_by, counterparty_id,
            source_drawer_id, dest_drawer_id, dest_account_id, reason, reference_number, status, requested_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING ` + transferColumns + `
    `
	created, err := scanTransfer(r.db.QueryRow(ctx, query,
		req.ID, req.TenantID, req.Type, req.Amount, req.Currency, req.RequestedBy, req.CounterpartyID,
		req.SourceDrawerID, req.DestDrawerID, req.DestAccountID, req.Reason, req.ReferenceNumber,
		req.Status, req.RequestedAt))
	if err != nil {
		zap.L().Error("failed to create transfer request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error) {
	query := `
        SELECT ` + transferColumns + `
        FROM transfer_requests
        WHERE tenant_id = $1 AND id = $2
    `
	req, err := scanTransfer(r.db.QueryRow(ctx, query, tenantID, requestID))
	if err != nil {
		zap.L().Error("failed to get transfer request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) List(ctx context.Context, tenantID string, filter domain.TransferFilter) ([]domain.TransferRequest, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	query := `
        SELECT ` + transferColumns + `
        FROM transfer_requests
        WHERE tenant_id = $1
          AND ($2 = '' OR status = $2)
          AND ($3 = '' OR type = $3)
        ORDER BY requested_at DESC
        LIMIT $4
    `
	rows, err := r.db.Query(ctx, query, tenantID, string(filter.Status), string(filter.Type), limit)
	if err != nil {
		zap.L().Error("failed to list transfer requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.TransferRequest
	for rows.Next() {
		var t domain.TransferRequest
		err := rows.Scan(
			&t.ID, &t.TenantID, &t.Type, &t.Amount, &t.Currency, &t.RequestedBy, &t.CounterpartyID,
			&t.SourceDrawerID, &t.DestDrawerID, &t.DestAccountID, &t.Reason, &t.Notes, &t.ReferenceNumber,
			&t.Status, &t.RequestedAt, &t.RespondedAt, &t.RespondedBy, &t.CompletedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan transfer request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, t)
	}
	return requests, rows.Err()
}

// MarkApproved moves a pending request to approved. It returns nil when the
// request is no longer pending, which serializes concurrent responders: only
// the first one gets a row back.
func (r *Repository) MarkApproved(ctx context.Context, tenantID, requestID, responderID string) (*domain.TransferRequest, error) {
	query := `
        UPDATE transfer_requests
        SET status = 'approved', responded_at = now(), responded_by = $3
        WHERE tenant_id = $1 AND id = $2 AND status = 'pending'
        RETURNING ` + transferColumns + `
    `
	req, err := scanTransfer(r.db.QueryRow(ctx, query, tenantID, requestID, responderID))
	if err != nil {
		zap.L().Error("failed to approve transfer request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) MarkRejected(ctx context.Context, tenantID, requestID, responderID, notes string) (*domain.TransferRequest, error) {
	query := `
        UPDATE transfer_requests
        SET status = 'rejected', responded_at = now(), responded_by = $3, notes = $4
        WHERE tenant_id = $1 AND id = $2 AND status = 'pending'
        RETURNING ` + transferColumns + `
    `
	req, err := scanTransfer(r.db.QueryRow(ctx, query, tenantID, requestID, responderID, notes))
	if err != nil {
		zap.L().Error("failed to reject transfer request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) MarkCancelled(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error) {
	query := `
        UPDATE transfer_requests
        SET status = 'cancelled', responded_at = now()
        WHERE tenant_id = $1 AND id = $2 AND status = 'pending'
        RETURNING ` + transferColumns + `
    `
	req, err := scanTransfer(r.db.QueryRow(ctx, query, tenantID, requestID))
	if err != nil {
		zap.L().Error("failed to cancel transfer request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) MarkCompleted(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error) {
	query := `
        UPDATE transfer_requests
        SET status = 'completed', completed_at = now()
        WHERE tenant_id = $1 AND id = $2 AND status = 'approved'
        RETURNING ` + transferColumns + `
    `
	req, err := scanTransfer(r.db.QueryRow(ctx, query, tenantID, requestID))
	if err != nil {
		zap.L().Error("failed to complete transfer request", zap.Error(err))
		return nil, err
	}
	return req, nil
}
