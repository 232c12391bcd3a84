package reconciler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/retailpos/cashledger/internal/domain"
)

type Checker interface {
	Check(ctx context.Context, tenantID string) (*domain.ReconcileReport, error)
	ListTenants(ctx context.Context) ([]string, error)
}

// Service periodically sweeps every tenant through the consistency check and
// logs any violation. It is strictly read-only; repair stays behind the
// explicit resync operation.
type Service struct {
	checker       Checker
	sweepInterval time.Duration
	concurrency   int
}

func New(checker Checker, sweepInterval time.Duration) *Service {
	return &Service{
		checker:       checker,
		sweepInterval: sweepInterval,
		concurrency:   4,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("reconciler started", zap.Duration("interval", s.sweepInterval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	tenants, err := s.checker.ListTenants(ctx)
	if err != nil {
		zap.L().Error("failed to list tenants for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, tenant := range tenants {
		tenant := tenant
		g.Go(func() error {
			report, err := s.checker.Check(ctx, tenant)
			if err != nil {
				zap.L().Error("reconciliation check failed", zap.String("tenant_id", tenant), zap.Error(err))
				return nil
			}
			if !report.Balanced {
				zap.L().Error("accounting invariant violated",
					zap.String("tenant_id", tenant),
					zap.Float64("journal_balance", report.JournalBalance),
					zap.Float64("equation_balance", report.EquationBalance),
				)
			}
			return nil
		})
	}
	g.Wait()
}
