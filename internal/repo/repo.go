package repo

import (
	"github.com/retailpos/cashledger/internal/pg"
	accountrepo "github.com/retailpos/cashledger/internal/repo/account-repo"
	drawerrepo "github.com/retailpos/cashledger/internal/repo/drawer-repo"
	ledgerrepo "github.com/retailpos/cashledger/internal/repo/ledger-repo"
	transferrepo "github.com/retailpos/cashledger/internal/repo/transfer-repo"
)

type Repositories struct {
	AccountRepo  *accountrepo.Repository
	DrawerRepo   *drawerrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	TransferRepo *transferrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:  accountrepo.New(conn),
		DrawerRepo:   drawerrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		TransferRepo: transferrepo.New(conn),
	}
}
