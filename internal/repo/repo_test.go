package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	accountrepo "github.com/retailpos/cashledger/internal/repo/account-repo"
	drawerrepo "github.com/retailpos/cashledger/internal/repo/drawer-repo"
	ledgerrepo "github.com/retailpos/cashledger/internal/repo/ledger-repo"
	transferrepo "github.com/retailpos/cashledger/internal/repo/transfer-repo"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.DrawerRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.TransferRepo)

	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &drawerrepo.Repository{}, repo.DrawerRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &transferrepo.Repository{}, repo.TransferRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
