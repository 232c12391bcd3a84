package transferservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/events"
	"github.com/retailpos/cashledger/pkg/validate"
)

type TransferRepo interface {
	Create(ctx context.Context, req *domain.TransferRequest) (*domain.TransferRequest, error)
	GetByID(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error)
	List(ctx context.Context, tenantID string, filter domain.TransferFilter) ([]domain.TransferRequest, error)
	MarkRejected(ctx context.Context, tenantID, requestID, responderID, notes string) (*domain.TransferRequest, error)
	MarkCancelled(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error)
}

type DrawerRepo interface {
	GetByID(ctx context.Context, tenantID, drawerID string) (*domain.CashDrawer, error)
	GetByUser(ctx context.Context, tenantID, userID string) (*domain.CashDrawer, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.CashDrawer, error)
}

type AccountRepo interface {
	GetByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
}

type Processor interface {
	Process(ctx context.Context, req *domain.TransferRequest, responderID string) (*domain.TransferRequest, error)
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// CreateInput carries everything a requester supplies when opening a
// transfer request. Which references are required depends on the type.
type CreateInput struct {
	Type           domain.TransferType
	Amount         float64
	Currency       string
	RequestedBy    string
	SourceDrawerID string
	DestDrawerID   string
	SourceUserID   string
	DestUserID     string
	DestAccountID  string
	ApproverID     string
	Reason         string
}

// Service owns the approval state machine of transfer requests. Every
// transition is published to the change notifier.
type Service struct {
	transferRepo TransferRepo
	drawerRepo   DrawerRepo
	accountRepo  AccountRepo
	processor    Processor
	notifier     events.Notifier
}

func New(transferRepo TransferRepo, drawerRepo DrawerRepo, accountRepo AccountRepo, processor Processor, notifier events.Notifier) *Service {
	return &Service{
		transferRepo: transferRepo,
		drawerRepo:   drawerRepo,
		accountRepo:  accountRepo,
		processor:    processor,
		notifier:     notifier,
	}
}

func (s *Service) Create(ctx context.Context, tenantID string, in CreateInput) (*domain.TransferRequest, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !validate.IsCurrencyCode(in.Currency) {
		return nil, domain.ErrInvalidCurrency
	}
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: transfer type %q", domain.ErrUnknownReference, in.Type)
	}

	req := &domain.TransferRequest{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		Type:            in.Type,
		Amount:          in.Amount,
		Currency:        strings.ToUpper(in.Currency),
		RequestedBy:     in.RequestedBy,
		Reason:          in.Reason,
		ReferenceNumber: newReferenceNumber(),
		Status:          domain.StatusPending,
		RequestedAt:     time.Now(),
	}

	if err := s.resolveParties(ctx, req, in); err != nil {
		return nil, err
	}

	created, err := s.transferRepo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create transfer request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}

	s.notifier.Publish(ctx, events.NewEvent(events.TypeRequestCreated, created))
	return created, nil
}

// Respond records the counterparty's decision. Approval hands the request to
// the processor synchronously: the caller observes completed or rejected,
// never approved.
func (s *Service) Respond(ctx context.Context, tenantID, requestID, responderID string, decision Decision, notes string) (*domain.TransferRequest, error) {
	req, err := s.transferRepo.GetByID(ctx, tenantID, requestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyResolved
	}
	if responderID != req.CounterpartyID {
		return nil, domain.ErrUnauthorized
	}

	switch decision {
	case DecisionRejected:
		rejected, err := s.transferRepo.MarkRejected(ctx, tenantID, requestID, responderID, notes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
		}
		if rejected == nil {
			return nil, domain.ErrAlreadyResolved
		}
		s.notifier.Publish(ctx, events.NewEvent(events.TypeRequestRejected, rejected))
		return rejected, nil

	case DecisionApproved:
		final, err := s.processor.Process(ctx, req, responderID)
		if final != nil {
			eventType := events.TypeRequestCompleted
			if final.Status == domain.StatusRejected {
				eventType = events.TypeRequestRejected
			}
			s.notifier.Publish(ctx, events.NewEvent(eventType, final))
		}
		return final, err

	default:
		return nil, fmt.Errorf("%w: decision %q", domain.ErrUnknownReference, decision)
	}
}

// Cancel withdraws a pending request. Only the requester may cancel, and
// only before the counterparty has responded.
func (s *Service) Cancel(ctx context.Context, tenantID, requestID, requesterID string) (*domain.TransferRequest, error) {
	req, err := s.transferRepo.GetByID(ctx, tenantID, requestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.RequestedBy != requesterID {
		return nil, domain.ErrUnauthorized
	}
	if req.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyResolved
	}

	cancelled, err := s.transferRepo.MarkCancelled(ctx, tenantID, requestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	if cancelled == nil {
		return nil, domain.ErrAlreadyResolved
	}

	s.notifier.Publish(ctx, events.NewEvent(events.TypeRequestCancelled, cancelled))
	return cancelled, nil
}

func (s *Service) Get(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error) {
	req, err := s.transferRepo.GetByID(ctx, tenantID, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	return req, nil
}

func (s *Service) List(ctx context.Context, tenantID string, filter domain.TransferFilter) ([]domain.TransferRequest, error) {
	return s.transferRepo.List(ctx, tenantID, filter)
}

func (s *Service) GetDrawer(ctx context.Context, tenantID, drawerID string) (*domain.CashDrawer, error) {
	drawer, err := s.drawerRepo.GetByID(ctx, tenantID, drawerID)
	if err != nil {
		return nil, err
	}
	if drawer == nil {
		return nil, domain.ErrNotFound
	}
	return drawer, nil
}

func (s *Service) ListDrawers(ctx context.Context, tenantID string) ([]domain.CashDrawer, error) {
	return s.drawerRepo.ListByTenant(ctx, tenantID)
}

// resolveParties checks every referenced drawer and account within the
// tenant, fills the derived drawer ids and picks the designated
// counterparty for the request type.
func (s *Service) resolveParties(ctx context.Context, req *domain.TransferRequest, in CreateInput) error {
	switch in.Type {
	case domain.TransferCashDrawer:
		if in.SourceDrawerID == in.DestDrawerID {
			return domain.ErrInvalidParty
		}
		source, err := s.resolveDrawer(ctx, req.TenantID, in.SourceDrawerID)
		if err != nil {
			return err
		}
		dest, err := s.resolveDrawer(ctx, req.TenantID, in.DestDrawerID)
		if err != nil {
			return err
		}
		counterparty := dest.UserID
		if counterparty == in.RequestedBy {
			// moving cash into own drawer: the source owner approves
			counterparty = source.UserID
		}
		if counterparty == in.RequestedBy {
			return domain.ErrInvalidParty
		}
		req.SourceDrawerID = source.ID
		req.DestDrawerID = dest.ID
		req.CounterpartyID = counterparty

	case domain.TransferUserToUser:
		sourceUser := in.SourceUserID
		if sourceUser == "" {
			sourceUser = in.RequestedBy
		}
		if sourceUser == in.DestUserID {
			return domain.ErrInvalidParty
		}
		source, err := s.resolveUserDrawer(ctx, req.TenantID, sourceUser)
		if err != nil {
			return err
		}
		dest, err := s.resolveUserDrawer(ctx, req.TenantID, in.DestUserID)
		if err != nil {
			return err
		}
		req.SourceDrawerID = source.ID
		req.DestDrawerID = dest.ID
		req.CounterpartyID = in.DestUserID

	case domain.TransferPaymentMethod:
		if in.ApproverID == "" || in.ApproverID == in.RequestedBy {
			return domain.ErrInvalidParty
		}
		source, err := s.resolveDrawer(ctx, req.TenantID, in.SourceDrawerID)
		if err != nil {
			return err
		}
		account, err := s.accountRepo.GetByID(ctx, req.TenantID, in.DestAccountID)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransient, err)
		}
		if account == nil {
			return domain.ErrUnknownReference
		}
		req.SourceDrawerID = source.ID
		req.DestAccountID = account.ID
		req.CounterpartyID = in.ApproverID
	}
	return nil
}

func (s *Service) resolveDrawer(ctx context.Context, tenantID, drawerID string) (*domain.CashDrawer, error) {
	if drawerID == "" {
		return nil, domain.ErrUnknownReference
	}
	drawer, err := s.drawerRepo.GetByID(ctx, tenantID, drawerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	if drawer == nil {
		return nil, domain.ErrUnknownReference
	}
	return drawer, nil
}

func (s *Service) resolveUserDrawer(ctx context.Context, tenantID, userID string) (*domain.CashDrawer, error) {
	if userID == "" {
		return nil, domain.ErrUnknownReference
	}
	drawer, err := s.drawerRepo.GetByUser(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	if drawer == nil {
		return nil, domain.ErrUnknownReference
	}
	return drawer, nil
}

func newReferenceNumber() string {
	return "TRF-" + strings.ToUpper(uuid.NewString()[:8])
}
