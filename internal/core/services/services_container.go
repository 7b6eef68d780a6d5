package services

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/SscSPs/erp_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Groups first: company creation seeds them
	container.Group = NewGroupService(repos.GroupRepo, repos.LedgerRepo)
	container.Company = NewCompanyService(
		repos.CompanyRepo,
		repos.TxManager,
		container.Group,
		WithCompanyDefaultPageSize(cfg.DefaultPageSize),
	)

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.GroupRepo,
		repos.CompanyRepo,
		repos.VoucherRepo,
		repos.TxManager,
	)

	// Posting refreshes ledger balances through the ledger service
	container.Voucher = NewVoucherService(
		repos.VoucherRepo,
		repos.LedgerRepo,
		repos.InventoryRepo,
		repos.GSTRepo,
		container.Ledger,
		repos.TxManager,
		WithVoucherDefaultPageSize(cfg.DefaultPageSize),
		WithVoucherObserver(func(action string, t domain.VoucherType) {
			middleware.RecordVoucherEvent(action, string(t))
		}),
	)

	container.Inventory = NewInventoryService(repos.InventoryRepo, repos.GSTRepo)
	container.Reporting = NewReportingService(repos.LedgerRepo, repos.GroupRepo, repos.VoucherRepo)

	return container
}
