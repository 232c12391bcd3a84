package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/retailpos/cashledger/docs"
	ledgerhandlers "github.com/retailpos/cashledger/internal/handlers/ledger"
	transferhandlers "github.com/retailpos/cashledger/internal/handlers/transfers"
	"github.com/retailpos/cashledger/internal/service"
	"github.com/retailpos/cashledger/pkg/auth"
)

type TransferHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetDrawer(w http.ResponseWriter, r *http.Request)
	ListDrawers(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalances(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	Resync(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TransferHandler TransferHandler
	LedgerHandler   LedgerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		TransferHandler: transferhandlers.New(s.TransferService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService, s.ReconcileService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService *auth.JWTService) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(jwtService))
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", h.TransferHandler.Create)
			r.Get("/", h.TransferHandler.List)
			r.Get("/{id}", h.TransferHandler.Get)
			r.Post("/{id}/respond", h.TransferHandler.Respond)
			r.Post("/{id}/cancel", h.TransferHandler.Cancel)
		})
		r.Route("/drawers", func(r chi.Router) {
			r.Get("/", h.TransferHandler.ListDrawers)
			r.Get("/{id}", h.TransferHandler.GetDrawer)
		})
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/balances", h.LedgerHandler.GetBalances)
			r.Get("/check", h.LedgerHandler.Check)
			r.Post("/resync", h.LedgerHandler.Resync)
		})
	})

	return r
}
