package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/retailpos/cashledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Now()

	tx := &domain.LedgerTransaction{
		ID: "tx-1", TenantID: "tenant-1", Description: "cash transfer TRF-AB12CD34 to payment method",
		Date: date, Amount: 400, ReferenceType: "transfer_request", ReferenceID: "req-1",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Transaction created",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledger_transactions")).
					WithArgs(tx.ID, tx.TenantID, tx.Description, tx.Date, tx.Amount, tx.Posted,
						tx.ReferenceType, tx.ReferenceID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledger_transactions")).
					WithArgs(tx.ID, tx.TenantID, tx.Description, tx.Date, tx.Amount, tx.Posted,
						tx.ReferenceType, tx.ReferenceID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateTransaction(context.Background(), tx)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock := NewMock(t)

	entry := &domain.LedgerEntry{
		TransactionID: "tx-1", AccountID: "acct-cash", Credit: 400, Description: "cash out",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ledger_entries")).
		WithArgs(entry.TransactionID, entry.AccountID, entry.Debit, entry.Credit, entry.Description).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

	err := repo.CreateEntry(context.Background(), entry)
	assert.NoError(t, err)
	assert.Equal(t, 42, entry.ID)
}

func TestRepository_MarkPosted(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Marked posted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET posted = TRUE")).
					WithArgs("tenant-1", "tx-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Already posted or missing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET posted = TRUE")).
					WithArgs("tenant-1", "tx-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkPosted(context.Background(), "tenant-1", "tx-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_GetTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Transaction found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "tenant_id", "description", "date", "amount", "posted", "reference_type", "reference_id"}).
					AddRow("tx-1", "tenant-1", "cash out", date, 400.0, true, "transfer_request", "req-1")
				mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_transactions")).
					WithArgs("tenant-1", "tx-1").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Transaction not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_transactions")).
					WithArgs("tenant-1", "tx-1").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tx, err := repo.GetTransaction(context.Background(), "tenant-1", "tx-1")
			assert.NoError(t, err)
			if tt.found {
				assert.True(t, tx.Posted)
				assert.Equal(t, "req-1", tx.ReferenceID)
			} else {
				assert.Nil(t, tx)
			}
		})
	}
}

func TestRepository_EntriesByTransaction(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "transaction_id", "account_id", "debit", "credit", "description"}).
		AddRow(1, "tx-1", "acct-cash", 0.0, 400.0, "cash out").
		AddRow(2, "tx-1", "acct-bank", 400.0, 0.0, "cash out")
	mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_entries")).
		WithArgs("tx-1").
		WillReturnRows(rows)

	entries, err := repo.EntriesByTransaction(context.Background(), "tx-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 400.0, entries[0].Credit)
	assert.Equal(t, 400.0, entries[1].Debit)
}

func TestRepository_JournalBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		want      float64
	}{
		{
			name: "Balanced journal",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN ledger_transactions")).
					WithArgs("tenant-1").
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(0.0))
			},
			want: 0,
		},
		{
			name: "Out of balance",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN ledger_transactions")).
					WithArgs("tenant-1").
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(25.0))
			},
			want: 25,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN ledger_transactions")).
					WithArgs("tenant-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.JournalBalance(context.Background(), "tenant-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, balance)
			}
		})
	}
}
