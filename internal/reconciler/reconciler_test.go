package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/retailpos/cashledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockChecker) {
	ctrl := gomock.NewController(t)
	checker := NewMockChecker(ctrl)
	service := New(checker, 10*time.Millisecond)
	defer ctrl.Finish()
	return service, checker
}

func TestSweep(t *testing.T) {
	service, checker := NewMock(t)
	ctx := context.Background()

	checker.EXPECT().ListTenants(ctx).Return([]string{"tenant-1", "tenant-2"}, nil)
	checker.EXPECT().Check(ctx, "tenant-1").
		Return(&domain.ReconcileReport{TenantID: "tenant-1", Balanced: true}, nil)
	checker.EXPECT().Check(ctx, "tenant-2").
		Return(&domain.ReconcileReport{TenantID: "tenant-2", JournalBalance: 25, Balanced: false}, nil)

	service.sweep(ctx)
}

func TestSweep_ListTenantsFails(t *testing.T) {
	service, checker := NewMock(t)
	ctx := context.Background()

	checker.EXPECT().ListTenants(ctx).Return(nil, errors.New("connection refused"))

	service.sweep(ctx)
}

func TestSweep_CheckFailureDoesNotStopOthers(t *testing.T) {
	service, checker := NewMock(t)
	ctx := context.Background()

	checker.EXPECT().ListTenants(ctx).Return([]string{"tenant-1", "tenant-2"}, nil)
	checker.EXPECT().Check(ctx, "tenant-1").Return(nil, errors.New("database error"))
	checker.EXPECT().Check(ctx, "tenant-2").
		Return(&domain.ReconcileReport{TenantID: "tenant-2", Balanced: true}, nil)

	service.sweep(ctx)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	service, checker := NewMock(t)

	checker.EXPECT().ListTenants(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop after context cancellation")
	}
}
