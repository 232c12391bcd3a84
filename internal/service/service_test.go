package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/retailpos/cashledger/internal/events"
	"github.com/retailpos/cashledger/internal/pg"
	"github.com/retailpos/cashledger/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, txManager, events.NopNotifier{})

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.ProcessorService)
	assert.NotNil(t, services.TransferService)
	assert.NotNil(t, services.ReconcileService)
}
