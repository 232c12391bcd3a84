package service

import (
	"github.com/retailpos/cashledger/internal/events"
	"github.com/retailpos/cashledger/internal/pg"
	"github.com/retailpos/cashledger/internal/repo"
	ledgerservice "github.com/retailpos/cashledger/internal/service/ledgerservice"
	processorservice "github.com/retailpos/cashledger/internal/service/processorservice"
	reconcileservice "github.com/retailpos/cashledger/internal/service/reconcileservice"
	transferservice "github.com/retailpos/cashledger/internal/service/transferservice"
)

type Services struct {
	LedgerService    *ledgerservice.Service
	ProcessorService *processorservice.Service
	TransferService  *transferservice.Service
	ReconcileService *reconcileservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier events.Notifier) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.AccountRepo, txManager)
	processorService := processorservice.New(repo.TransferRepo, repo.DrawerRepo, ledgerService, txManager)
	transferService := transferservice.New(repo.TransferRepo, repo.DrawerRepo, repo.AccountRepo, processorService, notifier)
	reconcileService := reconcileservice.New(repo.AccountRepo, repo.LedgerRepo)

	return &Services{
		LedgerService:    ledgerService,
		ProcessorService: processorService,
		TransferService:  transferService,
		ReconcileService: reconcileService,
	}
}
