package processorservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/pg"
)

type TransferRepo interface {
	MarkApproved(ctx context.Context, tenantID, requestID, responderID string) (*domain.TransferRequest, error)
	MarkCompleted(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error)
	MarkRejected(ctx context.Context, tenantID, requestID, responderID, notes string) (*domain.TransferRequest, error)
}

type DrawerRepo interface {
	GetForUpdate(ctx context.Context, tenantID, drawerID string) (*domain.CashDrawer, error)
	AddBalance(ctx context.Context, tenantID, drawerID string, delta float64) (*domain.CashDrawer, error)
}

type Ledger interface {
	PostTransaction(ctx context.Context, tx *domain.LedgerTransaction, entries []domain.LedgerEntry) error
}

// Service executes approved transfer requests. Balance mutation, ledger
// posting and the status transitions run in one database transaction: a
// failure anywhere rolls everything back and the request is then marked
// rejected with the failure reason, never left half-applied.
type Service struct {
	transferRepo TransferRepo
	drawerRepo   DrawerRepo
	ledger       Ledger
	txManager    pg.TXManager
}

func New(transferRepo TransferRepo, drawerRepo DrawerRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		transferRepo: transferRepo,
		drawerRepo:   drawerRepo,
		ledger:       ledger,
		txManager:    txManager,
	}
}

// Process drives a pending request through approved into completed or
// rejected. The returned record always carries a terminal status. On a
// business failure it is the rejected record and the error explains why; on
// a storage failure the error wraps domain.ErrTransient and the request is
// still pending.
func (s *Service) Process(ctx context.Context, req *domain.TransferRequest, responderID string) (*domain.TransferRequest, error) {
	var completed *domain.TransferRequest

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		approved, err := s.transferRepo.MarkApproved(ctx, req.TenantID, req.ID, responderID)
		if err != nil {
			return err
		}
		if approved == nil {
			return domain.ErrAlreadyResolved
		}

		if err := s.apply(ctx, approved); err != nil {
			return err
		}

		completed, err = s.transferRepo.MarkCompleted(ctx, req.TenantID, req.ID)
		if err != nil {
			return err
		}
		if completed == nil {
			return domain.ErrAlreadyResolved
		}
		return nil
	})
	if err == nil {
		zap.L().Info("transfer completed",
			zap.String("request_id", completed.ID),
			zap.String("tenant_id", completed.TenantID),
			zap.String("type", string(completed.Type)),
			zap.Float64("amount", completed.Amount),
		)
		return completed, nil
	}

	if errors.Is(err, domain.ErrAlreadyResolved) {
		return nil, err
	}
	if isBusinessFailure(err) {
		// the transaction was rolled back, so the request is pending again
		rejected, rerr := s.transferRepo.MarkRejected(ctx, req.TenantID, req.ID, responderID, err.Error())
		if rerr != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrTransient, rerr)
		}
		if rejected == nil {
			return nil, domain.ErrAlreadyResolved
		}
		zap.L().Warn("transfer rejected during processing",
			zap.String("request_id", req.ID),
			zap.Error(err),
		)
		return rejected, err
	}

	zap.L().Error("transfer processing hit storage failure", zap.String("request_id", req.ID), zap.Error(err))
	return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
}

func (s *Service) apply(ctx context.Context, req *domain.TransferRequest) error {
	switch req.Type {
	case domain.TransferCashDrawer, domain.TransferUserToUser:
		return s.moveBetweenDrawers(ctx, req)
	case domain.TransferPaymentMethod:
		return s.moveToPaymentMethod(ctx, req)
	default:
		return fmt.Errorf("%w: unhandled transfer type %q", domain.ErrProcessingFailed, req.Type)
	}
}

// moveBetweenDrawers shifts physical cash from one drawer to another. Drawer
// balances track the cash directly, so no ledger posting is involved.
func (s *Service) moveBetweenDrawers(ctx context.Context, req *domain.TransferRequest) error {
	source, _, err := s.lockDrawerPair(ctx, req.TenantID, req.SourceDrawerID, req.DestDrawerID)
	if err != nil {
		return err
	}
	if source.Balance < req.Amount {
		return domain.ErrInsufficientFunds
	}
	if _, err := s.drawerRepo.AddBalance(ctx, req.TenantID, req.SourceDrawerID, -req.Amount); err != nil {
		return err
	}
	if _, err := s.drawerRepo.AddBalance(ctx, req.TenantID, req.DestDrawerID, req.Amount); err != nil {
		return err
	}
	return nil
}

// moveToPaymentMethod takes cash out of the source drawer and posts the
// balanced pair of entries: credit the drawer's cash account, debit the
// payment-method account.
func (s *Service) moveToPaymentMethod(ctx context.Context, req *domain.TransferRequest) error {
	source, err := s.drawerRepo.GetForUpdate(ctx, req.TenantID, req.SourceDrawerID)
	if err != nil {
		return err
	}
	if source == nil {
		return domain.ErrUnknownReference
	}
	if source.Balance < req.Amount {
		return domain.ErrInsufficientFunds
	}
	if _, err := s.drawerRepo.AddBalance(ctx, req.TenantID, req.SourceDrawerID, -req.Amount); err != nil {
		return err
	}

	description := fmt.Sprintf("cash transfer %s to payment method", req.ReferenceNumber)
	tx := &domain.LedgerTransaction{
		ID:            uuid.NewString(),
		TenantID:      req.TenantID,
		Description:   description,
		Date:          time.Now(),
		Amount:        req.Amount,
		ReferenceType: "transfer_request",
		ReferenceID:   req.ID,
	}
	entries := []domain.LedgerEntry{
		{AccountID: source.LedgerAccountID, Credit: req.Amount, Description: description},
		{AccountID: req.DestAccountID, Debit: req.Amount, Description: description},
	}
	return s.ledger.PostTransaction(ctx, tx, entries)
}

// lockDrawerPair locks both drawers in ascending id order so concurrent
// opposite transfers cannot deadlock.
func (s *Service) lockDrawerPair(ctx context.Context, tenantID, sourceID, destID string) (source, dest *domain.CashDrawer, err error) {
	firstID, secondID := sourceID, destID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}

	first, err := s.drawerRepo.GetForUpdate(ctx, tenantID, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := s.drawerRepo.GetForUpdate(ctx, tenantID, secondID)
	if err != nil {
		return nil, nil, err
	}
	if first == nil || second == nil {
		return nil, nil, domain.ErrUnknownReference
	}

	if first.ID == sourceID {
		return first, second, nil
	}
	return second, first, nil
}

func isBusinessFailure(err error) bool {
	return errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrUnknownReference) ||
		errors.Is(err, domain.ErrUnbalancedEntries) ||
		errors.Is(err, domain.ErrProcessingFailed)
}
