package transfers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/dto"
	transferservice "github.com/retailpos/cashledger/internal/service/transferservice"
	"github.com/retailpos/cashledger/pkg/auth"
)

func NewMock(t *testing.T) (*TransferHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.TenantIDKey, "tenant-1")
	ctx = context.WithValue(ctx, auth.UserIDKey, "user-1")
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	requestedAt := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"type":"cash_drawer","amount":250,"currency":"USD","source_drawer_id":"drawer-a","dest_drawer_id":"drawer-b"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "tenant-1", transferservice.CreateInput{
						Type: domain.TransferCashDrawer, Amount: 250, Currency: "USD",
						RequestedBy: "user-1", SourceDrawerID: "drawer-a", DestDrawerID: "drawer-b",
					}).
					Return(&domain.TransferRequest{
						ID: "req-1", Type: domain.TransferCashDrawer, Amount: 250, Currency: "USD",
						RequestedBy: "user-1", CounterpartyID: "user-2",
						SourceDrawerID: "drawer-a", DestDrawerID: "drawer-b",
						Status: domain.StatusPending, RequestedAt: requestedAt,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         `{"amount":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid amount",
			body: `{"type":"cash_drawer","amount":-5,"currency":"USD"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "tenant-1", gomock.Any()).
					Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown drawer",
			body: `{"type":"cash_drawer","amount":100,"currency":"USD","source_drawer_id":"missing","dest_drawer_id":"drawer-b"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "tenant-1", gomock.Any()).
					Return(nil, domain.ErrUnknownReference)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Storage unavailable",
			body: `{"type":"cash_drawer","amount":100,"currency":"USD","source_drawer_id":"drawer-a","dest_drawer_id":"drawer-b"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "tenant-1", gomock.Any()).
					Return(nil, domain.ErrTransient)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodPost, "/api/transfers", []byte(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp dto.TransferResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "req-1", resp.ID)
				assert.Equal(t, "pending", resp.Status)
			}
		})
	}
}

func TestRespondHandler(t *testing.T) {
	handler, service := NewMock(t)

	completed := &domain.TransferRequest{ID: "req-1", Status: domain.StatusCompleted}
	rejected := &domain.TransferRequest{
		ID: "req-1", Status: domain.StatusRejected, Notes: domain.ErrInsufficientFunds.Error(),
	}

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedStatus string
	}{
		{
			name: "Approved and completed",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), "tenant-1", "req-1", "user-1", transferservice.DecisionApproved, "").
					Return(completed, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "completed",
		},
		{
			name: "Rejected by counterparty",
			body: `{"decision":"rejected","notes":"not today"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), "tenant-1", "req-1", "user-1", transferservice.DecisionRejected, "not today").
					Return(&domain.TransferRequest{ID: "req-1", Status: domain.StatusRejected, Notes: "not today"}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "rejected",
		},
		{
			name: "Insufficient funds still yields the terminal record",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), "tenant-1", "req-1", "user-1", transferservice.DecisionApproved, "").
					Return(rejected, domain.ErrInsufficientFunds)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "rejected",
		},
		{
			name: "Not found",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), "tenant-1", "req-1", "user-1", transferservice.DecisionApproved, "").
					Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already resolved",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), "tenant-1", "req-1", "user-1", transferservice.DecisionApproved, "").
					Return(nil, domain.ErrAlreadyResolved)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Not the counterparty",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), "tenant-1", "req-1", "user-1", transferservice.DecisionApproved, "").
					Return(nil, domain.ErrUnauthorized)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Transient failure leaves it pending",
			body: `{"decision":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), "tenant-1", "req-1", "user-1", transferservice.DecisionApproved, "").
					Return(nil, domain.ErrTransient)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodPost, "/api/transfers/req-1/respond", []byte(tt.body))
			req = withURLParam(req, "id", "req-1")
			w := httptest.NewRecorder()

			handler.Respond(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedStatus != "" {
				var resp dto.TransferResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStatus, resp.Status)
			}
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Cancelled",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), "tenant-1", "req-1", "user-1").
					Return(&domain.TransferRequest{ID: "req-1", Status: domain.StatusCancelled}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Only the requester may cancel",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), "tenant-1", "req-1", "user-1").
					Return(nil, domain.ErrUnauthorized)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Already resolved",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), "tenant-1", "req-1", "user-1").
					Return(nil, domain.ErrAlreadyResolved)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodPost, "/api/transfers/req-1/cancel", nil)
			req = withURLParam(req, "id", "req-1")
			w := httptest.NewRecorder()

			handler.Cancel(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "tenant-1", "req-1").
					Return(&domain.TransferRequest{ID: "req-1", Status: domain.StatusPending}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "tenant-1", "req-1").
					Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodGet, "/api/transfers/req-1", nil)
			req = withURLParam(req, "id", "req-1")
			w := httptest.NewRecorder()

			handler.Get(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		List(gomock.Any(), "tenant-1", domain.TransferFilter{Status: domain.StatusPending, Limit: 10}).
		Return([]domain.TransferRequest{
			{ID: "req-1", Status: domain.StatusPending},
			{ID: "req-2", Status: domain.StatusPending},
		}, nil)

	req := authedRequest(http.MethodGet, "/api/transfers?status=pending&limit=10", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TransferResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestGetDrawerHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			prepareMock: func() {
				service.EXPECT().
					GetDrawer(gomock.Any(), "tenant-1", "drawer-a").
					Return(&domain.CashDrawer{ID: "drawer-a", Balance: 600, Status: domain.DrawerOpen}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			prepareMock: func() {
				service.EXPECT().
					GetDrawer(gomock.Any(), "tenant-1", "drawer-a").
					Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodGet, "/api/drawers/drawer-a", nil)
			req = withURLParam(req, "id", "drawer-a")
			w := httptest.NewRecorder()

			handler.GetDrawer(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListDrawersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ListDrawers(gomock.Any(), "tenant-1").
		Return([]domain.CashDrawer{
			{ID: "drawer-a", Balance: 600, Status: domain.DrawerOpen},
			{ID: "drawer-b", Balance: 400, Status: domain.DrawerOpen},
		}, nil)

	req := authedRequest(http.MethodGet, "/api/drawers", nil)
	w := httptest.NewRecorder()

	handler.ListDrawers(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.DrawerResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, 600.0, resp[0].Balance)
}
