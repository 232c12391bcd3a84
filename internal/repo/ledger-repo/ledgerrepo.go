package ledgerrepo

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

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.LedgerTransaction) error {
	query := `
        INSERT INTO ledger_transactions (id, tenant_id, description, date, amount, posted, reference_type, reference_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		tx.ID, tx.TenantID, tx.Description, tx.Date, tx.Amount, tx.Posted, tx.ReferenceType, tx.ReferenceID)
	if err != nil {
		zap.L().Error("failed to create ledger transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries (transaction_id, account_id, debit, credit, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		entry.TransactionID, entry.AccountID, entry.Debit, entry.Credit, entry.Description).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("failed to create ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkPosted(ctx context.Context, tenantID, transactionID string) error {
	query := `
        UPDATE ledger_transactions
        SET posted = TRUE
        WHERE tenant_id = $1 AND id = $2 AND NOT posted
    `
	tag, err := r.db.Exec(ctx, query, tenantID, transactionID)
	if err != nil {
		zap.L().Error("failed to mark transaction posted", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) GetTransaction(ctx context.Context, tenantID, transactionID string) (*domain.LedgerTransaction, error) {
	query := `
        SELECT id, tenant_id, description, date, amount, posted, reference_type, reference_id
        FROM ledger_transactions
        WHERE tenant_id = $1 AND id = $2
    `
	row := r.db.QueryRow(ctx, query, tenantID, transactionID)
	var tx domain.LedgerTransaction
	err := row.Scan(&tx.ID, &tx.TenantID, &tx.Description, &tx.Date, &tx.Amount, &tx.Posted, &tx.ReferenceType, &tx.ReferenceID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get ledger transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) EntriesByTransaction(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, transaction_id, account_id, debit, credit, description
        FROM ledger_entries
        WHERE transaction_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, transactionID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.AccountID, &e.Debit, &e.Credit, &e.Description); err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// JournalBalance returns total debits minus total credits over all posted
// entries of the tenant. A balanced journal yields exactly zero.
func (r *Repository) JournalBalance(ctx context.Context, tenantID string) (float64, error) {
	query := `
        SELECT COALESCE(SUM(e.debit), 0) - COALESCE(SUM(e.credit), 0)
        FROM ledger_entries e
        JOIN ledger_transactions t ON t.id = e.transaction_id
        WHERE t.tenant_id = $1 AND t.posted
    `
	var balance float64
	if err := r.db.QueryRow(ctx, query, tenantID).Scan(&balance); err != nil {
		zap.L().Error("failed to compute journal balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}
