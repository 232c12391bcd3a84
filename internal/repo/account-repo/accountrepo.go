package accountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	query := `
        SELECT id, tenant_id, name, category, balance, created_at
        FROM accounts
        WHERE tenant_id = $1 AND id = $2
    `
	row := r.db.QueryRow(ctx, query, tenantID, accountID)
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.TenantID, &acc.Name, &acc.Category, &acc.Balance, &acc.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

// GetForUpdate locks the account row for the duration of the surrounding
// transaction. Callers lock multiple accounts in ascending id order.
func (r *Repository) GetForUpdate(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	query := `
        SELECT id, tenant_id, name, category, balance, created_at
        FROM accounts
        WHERE tenant_id = $1 AND id = $2
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, tenantID, accountID)
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.TenantID, &acc.Name, &acc.Category, &acc.Balance, &acc.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) ApplyDelta(ctx context.Context, tenantID, accountID string, delta float64) error {
	query := `
        UPDATE accounts
        SET balance = balance + $1
        WHERE tenant_id = $2 AND id = $3
    `
	tag, err := r.db.Exec(ctx, query, delta, tenantID, accountID)
	if err != nil {
		zap.L().Error("failed to apply account delta", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) BalancesByCategory(ctx context.Context, tenantID string) (map[domain.AccountCategory]float64, error) {
	query := `
        SELECT category, COALESCE(SUM(balance), 0)
        FROM accounts
        WHERE tenant_id = $1
        GROUP BY category
    `
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		zap.L().Error("failed to fetch balances by category", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	totals := make(map[domain.AccountCategory]float64)
	for rows.Next() {
		var category domain.AccountCategory
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			zap.L().Error("failed to scan category total", zap.Error(err))
			return nil, err
		}
		totals[category] = total
	}
	return totals, rows.Err()
}

func (r *Repository) ListTenants(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT tenant_id FROM accounts`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list tenants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tenants []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		tenants = append(tenants, id)
	}
	return tenants, rows.Err()
}

// Resync recomputes every account balance of the tenant from the posted
// entry history. Running it twice in a row is a no-op the second time.
func (r *Repository) Resync(ctx context.Context, tenantID string) error {
	query := `
        UPDATE accounts a
        SET balance = COALESCE((
            SELECT SUM(CASE WHEN a.category IN ('assets', 'expenses')
                            THEN e.debit - e.credit
                            ELSE e.credit - e.debit END)
            FROM ledger_entries e
            JOIN ledger_transactions t ON t.id = e.transaction_id
            WHERE e.account_id = a.id AND t.posted
        ), 0)
        WHERE a.tenant_id = $1
    `
	if _, err := r.db.Exec(ctx, query, tenantID); err != nil {
		zap.L().Error("failed to resync account balances", zap.Error(err))
		return err
	}
	return nil
}
