package ledgerservice

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/pg"
)

type LedgerRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.LedgerTransaction) error
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	MarkPosted(ctx context.Context, tenantID, transactionID string) error
	GetTransaction(ctx context.Context, tenantID, transactionID string) (*domain.LedgerTransaction, error)
	EntriesByTransaction(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error)
}

type AccountRepo interface {
	GetForUpdate(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
	ApplyDelta(ctx context.Context, tenantID, accountID string, delta float64) error
	BalancesByCategory(ctx context.Context, tenantID string) (map[domain.AccountCategory]float64, error)
}

// Service is the only writer of ledger rows and account balances. A
// transaction is posted together with all of its entries or not at all.
type Service struct {
	ledgerRepo  LedgerRepo
	accountRepo AccountRepo
	txManager   pg.TXManager
}

func New(ledgerRepo LedgerRepo, accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

// PostTransaction validates that the entries balance, then atomically writes
// the transaction, its entries and the referenced account balances. When
// called inside an open transaction it joins it, so a caller failure rolls
// the posting back as well.
func (s *Service) PostTransaction(ctx context.Context, tx *domain.LedgerTransaction, entries []domain.LedgerEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ledgerRepo.CreateTransaction(ctx, tx); err != nil {
			return err
		}

		accounts, err := s.lockAccounts(ctx, tx.TenantID, entries)
		if err != nil {
			return err
		}

		for i := range entries {
			entries[i].TransactionID = tx.ID
			if err := s.ledgerRepo.CreateEntry(ctx, &entries[i]); err != nil {
				return err
			}
			acc := accounts[entries[i].AccountID]
			delta := entries[i].Debit - entries[i].Credit
			if !acc.Category.DebitPositive() {
				delta = -delta
			}
			if err := s.accountRepo.ApplyDelta(ctx, tx.TenantID, acc.ID, delta); err != nil {
				return err
			}
		}

		if err := s.ledgerRepo.MarkPosted(ctx, tx.TenantID, tx.ID); err != nil {
			return err
		}
		tx.Posted = true

		zap.L().Info("ledger transaction posted",
			zap.String("transaction_id", tx.ID),
			zap.String("tenant_id", tx.TenantID),
			zap.Float64("amount", tx.Amount),
		)
		return nil
	})
}

func (s *Service) GetTransaction(ctx context.Context, tenantID, transactionID string) (*domain.LedgerTransaction, []domain.LedgerEntry, error) {
	tx, err := s.ledgerRepo.GetTransaction(ctx, tenantID, transactionID)
	if err != nil {
		return nil, nil, err
	}
	if tx == nil {
		return nil, nil, domain.ErrNotFound
	}
	entries, err := s.ledgerRepo.EntriesByTransaction(ctx, transactionID)
	if err != nil {
		return nil, nil, err
	}
	return tx, entries, nil
}

func (s *Service) AccountBalances(ctx context.Context, tenantID string) (map[domain.AccountCategory]float64, error) {
	totals, err := s.accountRepo.BalancesByCategory(ctx, tenantID)
	if err != nil {
		zap.L().Error("failed to get account balances", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

// lockAccounts acquires row locks on every referenced account in ascending
// id order, preventing deadlocks between concurrent postings.
func (s *Service) lockAccounts(ctx context.Context, tenantID string, entries []domain.LedgerEntry) (map[string]*domain.Account, error) {
	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; ok {
			continue
		}
		seen[e.AccountID] = struct{}{}
		ids = append(ids, e.AccountID)
	}
	sort.Strings(ids)

	accounts := make(map[string]*domain.Account, len(ids))
	for _, id := range ids {
		acc, err := s.accountRepo.GetForUpdate(ctx, tenantID, id)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			return nil, domain.ErrUnknownReference
		}
		accounts[id] = acc
	}
	return accounts, nil
}

func validateEntries(entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return domain.ErrUnbalancedEntries
	}
	var debits, credits float64
	for _, e := range entries {
		if e.Debit < 0 || e.Credit < 0 {
			return domain.ErrUnbalancedEntries
		}
		if (e.Debit > 0) == (e.Credit > 0) {
			// exactly one side of an entry must carry the amount
			return domain.ErrUnbalancedEntries
		}
		debits += e.Debit
		credits += e.Credit
	}
	if debits != credits {
		return domain.ErrUnbalancedEntries
	}
	return nil
}
