package transfers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/dto"
	transferservice "github.com/retailpos/cashledger/internal/service/transferservice"
	"github.com/retailpos/cashledger/pkg/auth"
	"github.com/retailpos/cashledger/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, tenantID string, in transferservice.CreateInput) (*domain.TransferRequest, error)
	Respond(ctx context.Context, tenantID, requestID, responderID string, decision transferservice.Decision, notes string) (*domain.TransferRequest, error)
	Cancel(ctx context.Context, tenantID, requestID, requesterID string) (*domain.TransferRequest, error)
	Get(ctx context.Context, tenantID, requestID string) (*domain.TransferRequest, error)
	List(ctx context.Context, tenantID string, filter domain.TransferFilter) ([]domain.TransferRequest, error)
	GetDrawer(ctx context.Context, tenantID, drawerID string) (*domain.CashDrawer, error)
	ListDrawers(ctx context.Context, tenantID string) ([]domain.CashDrawer, error)
}

type TransferHandler struct {
	transferService Service
}

func New(transferService Service) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// Create godoc
//
//	@Summary		Create a transfer request
//	@Description	Open a pending transfer request awaiting the counterparty's decision.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTransferRequestDTO	true	"Transfer request payload"
//	@Success		201		{object}	dto.TransferResponseDTO			"Created transfer request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		422		{object}	utils.Response					"Validation failed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/transfers [post]
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.transferService.Create(r.Context(), auth.TenantID(r.Context()), transferservice.CreateInput{
		Type:           domain.TransferType(req.Type),
		Amount:         req.Amount,
		Currency:       req.Currency,
		RequestedBy:    auth.UserID(r.Context()),
		SourceDrawerID: req.SourceDrawerID,
		DestDrawerID:   req.DestDrawerID,
		SourceUserID:   req.SourceUserID,
		DestUserID:     req.DestUserID,
		DestAccountID:  req.DestAccountID,
		ApproverID:     req.ApproverID,
		Reason:         req.Reason,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(created))
}

// Respond godoc
//
//	@Summary		Approve or reject a transfer request
//	@Description	Record the counterparty decision. Approval executes the transfer synchronously; the response always carries a terminal status.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Transfer request id"
//	@Param			request	body		dto.RespondTransferRequestDTO	true	"Decision payload"
//	@Success		200		{object}	dto.TransferResponseDTO		"Final transfer request state"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Not the designated counterparty"
//	@Failure		404		{object}	utils.Response				"Request not found"
//	@Failure		409		{object}	utils.Response				"Request already resolved"
//	@Failure		503		{object}	utils.Response				"Storage unavailable, retry"
//	@Router			/api/transfers/{id}/respond [post]
func (h *TransferHandler) Respond(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req dto.RespondTransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	final, err := h.transferService.Respond(r.Context(), auth.TenantID(r.Context()), requestID,
		auth.UserID(r.Context()), transferservice.Decision(req.Decision), req.Notes)
	if final != nil {
		// a terminal record is an answer even when processing rejected it;
		// the rejection reason is recorded in notes
		utils.RespondWithJSON(w, http.StatusOK, toDTO(final))
		return
	}
	respondServiceError(w, err)
}

// Cancel godoc
//
//	@Summary		Cancel a pending transfer request
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Transfer request id"
//	@Success		200	{object}	dto.TransferResponseDTO	"Cancelled transfer request"
//	@Failure		403	{object}	utils.Response			"Only the requester may cancel"
//	@Failure		404	{object}	utils.Response			"Request not found"
//	@Failure		409	{object}	utils.Response			"Request already resolved"
//	@Router			/api/transfers/{id}/cancel [post]
func (h *TransferHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	cancelled, err := h.transferService.Cancel(r.Context(), auth.TenantID(r.Context()), requestID, auth.UserID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(cancelled))
}

// Get godoc
//
//	@Summary		Get a transfer request
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Transfer request id"
//	@Success		200	{object}	dto.TransferResponseDTO	"Transfer request"
//	@Failure		404	{object}	utils.Response			"Request not found"
//	@Router			/api/transfers/{id} [get]
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	req, err := h.transferService.Get(r.Context(), auth.TenantID(r.Context()), requestID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(req))
}

// List godoc
//
//	@Summary		List transfer requests
//	@Description	List the tenant's transfer requests, optionally filtered by status and type.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Param			type	query		string	false	"Filter by transfer type"
//	@Param			limit	query		int		false	"Maximum number of rows"
//	@Success		200		{array}		dto.TransferResponseDTO	"Transfer requests"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/transfers [get]
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	filter := domain.TransferFilter{
		Status: domain.TransferStatus(r.URL.Query().Get("status")),
		Type:   domain.TransferType(r.URL.Query().Get("type")),
		Limit:  limit,
	}

	requests, err := h.transferService.List(r.Context(), auth.TenantID(r.Context()), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.TransferResponseDTO, len(requests))
	for i := range requests {
		response[i] = *toDTO(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetDrawer godoc
//
//	@Summary		Get a cash drawer
//	@Tags			Drawers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Drawer id"
//	@Success		200	{object}	dto.DrawerResponseDTO	"Cash drawer"
//	@Failure		404	{object}	utils.Response			"Drawer not found"
//	@Router			/api/drawers/{id} [get]
func (h *TransferHandler) GetDrawer(w http.ResponseWriter, r *http.Request) {
	drawerID := chi.URLParam(r, "id")

	drawer, err := h.transferService.GetDrawer(r.Context(), auth.TenantID(r.Context()), drawerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, drawerDTO(drawer))
}

// ListDrawers godoc
//
//	@Summary		List cash drawers
//	@Tags			Drawers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DrawerResponseDTO	"Cash drawers"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/drawers [get]
func (h *TransferHandler) ListDrawers(w http.ResponseWriter, r *http.Request) {
	drawers, err := h.transferService.ListDrawers(r.Context(), auth.TenantID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.DrawerResponseDTO, len(drawers))
	for i := range drawers {
		response[i] = *drawerDTO(&drawers[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidParty),
		errors.Is(err, domain.ErrUnknownReference):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrAlreadyResolved):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrTransient):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(req *domain.TransferRequest) *dto.TransferResponseDTO {
	return &dto.TransferResponseDTO{
		ID:              req.ID,
		Type:            string(req.Type),
		Amount:          req.Amount,
		Currency:        req.Currency,
		RequestedBy:     req.RequestedBy,
		CounterpartyID:  req.CounterpartyID,
		SourceDrawerID:  req.SourceDrawerID,
		DestDrawerID:    req.DestDrawerID,
		DestAccountID:   req.DestAccountID,
		Reason:          req.Reason,
		Notes:           req.Notes,
		ReferenceNumber: req.ReferenceNumber,
		Status:          string(req.Status),
		RequestedAt:     req.RequestedAt,
		RespondedAt:     req.RespondedAt,
		RespondedBy:     req.RespondedBy,
		CompletedAt:     req.CompletedAt,
	}
}

func drawerDTO(d *domain.CashDrawer) *dto.DrawerResponseDTO {
	return &dto.DrawerResponseDTO{
		ID:              d.ID,
		UserID:          d.UserID,
		LedgerAccountID: d.LedgerAccountID,
		Balance:         d.Balance,
		Status:          string(d.Status),
		CreatedAt:       d.CreatedAt,
	}
}
