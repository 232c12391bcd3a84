package ledger

import (
	"context"
	"net/http"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/dto"
	"github.com/retailpos/cashledger/pkg/auth"
	"github.com/retailpos/cashledger/pkg/utils"
)

type Service interface {
	AccountBalances(ctx context.Context, tenantID string) (map[domain.AccountCategory]float64, error)
}

type Reconciler interface {
	Check(ctx context.Context, tenantID string) (*domain.ReconcileReport, error)
	Resync(ctx context.Context, tenantID string) (*domain.ReconcileReport, error)
}

type LedgerHandler struct {
	ledgerService Service
	reconciler    Reconciler
}

func New(ledgerService Service, reconciler Reconciler) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		reconciler:    reconciler,
	}
}

// GetBalances godoc
//
//	@Summary		Get account balances by category
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountBalancesResponseDTO	"Balances grouped by category"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/ledger/balances [get]
func (h *LedgerHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ledgerService.AccountBalances(r.Context(), auth.TenantID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountBalancesResponseDTO{
		Assets:      totals[domain.CategoryAssets],
		Liabilities: totals[domain.CategoryLiabilities],
		Equity:      totals[domain.CategoryEquity],
		Income:      totals[domain.CategoryIncome],
		Expenses:    totals[domain.CategoryExpenses],
	})
}

// Check godoc
//
//	@Summary		Run the accounting consistency check
//	@Description	Verify the journal balance and the accounting equation for the tenant. Read-only.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReconcileReportDTO	"Reconciliation report"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/check [get]
func (h *LedgerHandler) Check(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciler.Check(r.Context(), auth.TenantID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reportDTO(report))
}

// Resync godoc
//
//	@Summary		Rebuild account balances from the entry history
//	@Description	Recompute every account balance of the tenant from posted entries. Idempotent.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReconcileReportDTO	"Reconciliation report after resync"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/resync [post]
func (h *LedgerHandler) Resync(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciler.Resync(r.Context(), auth.TenantID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reportDTO(report))
}

func reportDTO(report *domain.ReconcileReport) *dto.ReconcileReportDTO {
	return &dto.ReconcileReportDTO{
		TenantID:         report.TenantID,
		AssetsTotal:      report.AssetsTotal,
		LiabilitiesTotal: report.LiabilitiesTotal,
		EquityTotal:      report.EquityTotal,
		RevenueTotal:     report.RevenueTotal,
		ExpensesTotal:    report.ExpensesTotal,
		JournalBalance:   report.JournalBalance,
		EquationBalance:  report.EquationBalance,
		Balanced:         report.Balanced,
	}
}
