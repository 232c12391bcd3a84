package reconcileservice

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/retailpos/cashledger/internal/domain"
)

// Epsilon is the tolerance for the accounting equation check. The journal
// balance itself must be exactly zero.
const Epsilon = 0.01

type AccountRepo interface {
	BalancesByCategory(ctx context.Context, tenantID string) (map[domain.AccountCategory]float64, error)
	ListTenants(ctx context.Context) ([]string, error)
	Resync(ctx context.Context, tenantID string) error
}

type LedgerRepo interface {
	JournalBalance(ctx context.Context, tenantID string) (float64, error)
}

// Service verifies that the ledger agrees with itself and with the account
// balances. It never mutates state except through the explicit Resync.
type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Check computes the per-category totals, the journal balance and the
// accounting-equation residual for the tenant.
func (s *Service) Check(ctx context.Context, tenantID string) (*domain.ReconcileReport, error) {
	totals, err := s.accountRepo.BalancesByCategory(ctx, tenantID)
	if err != nil {
		zap.L().Error("failed to aggregate account balances", zap.Error(err))
		return nil, err
	}
	journal, err := s.ledgerRepo.JournalBalance(ctx, tenantID)
	if err != nil {
		zap.L().Error("failed to compute journal balance", zap.Error(err))
		return nil, err
	}

	report := &domain.ReconcileReport{
		TenantID:         tenantID,
		AssetsTotal:      totals[domain.CategoryAssets],
		LiabilitiesTotal: totals[domain.CategoryLiabilities],
		EquityTotal:      totals[domain.CategoryEquity],
		RevenueTotal:     totals[domain.CategoryIncome],
		ExpensesTotal:    totals[domain.CategoryExpenses],
		JournalBalance:   journal,
	}
	report.EquationBalance = report.AssetsTotal - report.LiabilitiesTotal - report.EquityTotal +
		report.RevenueTotal - report.ExpensesTotal
	report.Balanced = report.JournalBalance == 0 && math.Abs(report.EquationBalance) < Epsilon

	if !report.Balanced {
		zap.L().Warn("ledger out of balance",
			zap.String("tenant_id", tenantID),
			zap.Float64("journal_balance", report.JournalBalance),
			zap.Float64("equation_balance", report.EquationBalance),
		)
	}
	return report, nil
}

// Resync rebuilds every account balance of the tenant from the posted entry
// history and reports the state afterwards. Safe to run repeatedly.
func (s *Service) Resync(ctx context.Context, tenantID string) (*domain.ReconcileReport, error) {
	if err := s.accountRepo.Resync(ctx, tenantID); err != nil {
		zap.L().Error("failed to resync balances", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("account balances resynced from entry history", zap.String("tenant_id", tenantID))
	return s.Check(ctx, tenantID)
}

func (s *Service) ListTenants(ctx context.Context) ([]string, error) {
	return s.accountRepo.ListTenants(ctx)
}
