package drawerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/pg"
)

const drawerColumns = `id, tenant_id, user_id, ledger_account_id, balance, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDrawer(row pgx.Row) (*domain.CashDrawer, error) {
	var d domain.CashDrawer
	err := row.Scan(&d.ID, &d.TenantID, &d.UserID, &d.LedgerAccountID, &d.Balance, &d.Status, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *Repository) GetByID(ctx context.Context, tenantID, drawerID string) (*domain.CashDrawer, error) {
	query := `
        SELECT ` + drawerColumns + `
        FROM cash_drawers
        WHERE tenant_id = $1 AND id = $2
    `
	drawer, err := scanDrawer(r.db.QueryRow(ctx, query, tenantID, drawerID))
	if err != nil {
		zap.L().Error("failed to get cash drawer", zap.Error(err))
		return nil, err
	}
	return drawer, nil
}

// GetByUser returns the user's open drawer within the tenant.
func (r *Repository) GetByUser(ctx context.Context, tenantID, userID string) (*domain.CashDrawer, error) {
	query := `
        SELECT ` + drawerColumns + `
        FROM cash_drawers
        WHERE tenant_id = $1 AND user_id = $2 AND status = 'open'
        ORDER BY created_at
        LIMIT 1
    `
	drawer, err := scanDrawer(r.db.QueryRow(ctx, query, tenantID, userID))
	if err != nil {
		zap.L().Error("failed to get cash drawer by user", zap.Error(err))
		return nil, err
	}
	return drawer, nil
}

// GetForUpdate locks the drawer row for the duration of the surrounding
// transaction. Callers lock multiple drawers in ascending id order.
func (r *Repository) GetForUpdate(ctx context.Context, tenantID, drawerID string) (*domain.CashDrawer, error) {
	query := `
        SELECT ` + drawerColumns + `
        FROM cash_drawers
        WHERE tenant_id = $1 AND id = $2
        FOR UPDATE
    `
	drawer, err := scanDrawer(r.db.QueryRow(ctx, query, tenantID, drawerID))
	if err != nil {
		zap.L().Error("failed to lock cash drawer", zap.Error(err))
		return nil, err
	}
	return drawer, nil
}

func (r *Repository) AddBalance(ctx context.Context, tenantID, drawerID string, delta float64) (*domain.CashDrawer, error) {
	query := `
        UPDATE cash_drawers
        SET balance = balance + $1
        WHERE tenant_id = $2 AND id = $3
        RETURNING ` + drawerColumns + `
    `
	drawer, err := scanDrawer(r.db.QueryRow(ctx, query, delta, tenantID, drawerID))
	if err != nil {
		zap.L().Error("failed to update drawer balance", zap.Error(err))
		return nil, err
	}
	return drawer, nil
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]domain.CashDrawer, error) {
	query := `
        SELECT ` + drawerColumns + `
        FROM cash_drawers
        WHERE tenant_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		zap.L().Error("failed to list cash drawers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var drawers []domain.CashDrawer
	for rows.Next() {
		var d domain.CashDrawer
		err := rows.Scan(&d.ID, &d.TenantID, &d.UserID, &d.LedgerAccountID, &d.Balance, &d.Status, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan cash drawer row", zap.Error(err))
			return nil, err
		}
		drawers = append(drawers, d)
	}
	return drawers, rows.Err()
}
