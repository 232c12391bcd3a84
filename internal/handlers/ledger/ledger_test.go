package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/retailpos/cashledger/internal/domain"
	"github.com/retailpos/cashledger/internal/dto"
	"github.com/retailpos/cashledger/pkg/auth"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService, *MockReconciler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	reconciler := NewMockReconciler(ctrl)
	handler := New(service, reconciler)
	defer ctrl.Finish()
	return handler, service, reconciler
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.TenantIDKey, "tenant-1")
	ctx = context.WithValue(ctx, auth.UserIDKey, "user-1")
	return req.WithContext(ctx)
}

func TestGetBalancesHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Balances returned",
			prepareMock: func() {
				service.EXPECT().
					AccountBalances(gomock.Any(), "tenant-1").
					Return(map[domain.AccountCategory]float64{
						domain.CategoryAssets:      1500,
						domain.CategoryLiabilities: 1000,
						domain.CategoryEquity:      500,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Database error",
			prepareMock: func() {
				service.EXPECT().
					AccountBalances(gomock.Any(), "tenant-1").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodGet, "/api/ledger/balances")
			w := httptest.NewRecorder()

			handler.GetBalances(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp dto.AccountBalancesResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 1500.0, resp.Assets)
				assert.Equal(t, 500.0, resp.Equity)
			}
		})
	}
}

func TestCheckHandler(t *testing.T) {
	handler, _, reconciler := NewMock(t)

	reconciler.EXPECT().
		Check(gomock.Any(), "tenant-1").
		Return(&domain.ReconcileReport{
			TenantID: "tenant-1", AssetsTotal: 1000, LiabilitiesTotal: 1000, Balanced: true,
		}, nil)

	req := authedRequest(http.MethodGet, "/api/ledger/check")
	w := httptest.NewRecorder()

	handler.Check(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReconcileReportDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Balanced)
	assert.Equal(t, "tenant-1", resp.TenantID)
}

func TestResyncHandler(t *testing.T) {
	handler, _, reconciler := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Resync succeeds",
			prepareMock: func() {
				reconciler.EXPECT().
					Resync(gomock.Any(), "tenant-1").
					Return(&domain.ReconcileReport{TenantID: "tenant-1", Balanced: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Resync fails",
			prepareMock: func() {
				reconciler.EXPECT().
					Resync(gomock.Any(), "tenant-1").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodPost, "/api/ledger/resync")
			w := httptest.NewRecorder()

			handler.Resync(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
