package services

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
)

// GroupReaderSvc defines read operations for the chart of accounts
type GroupReaderSvc interface {
	GetGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error)
	ListGroups(ctx context.Context, companyID string) ([]domain.Group, error)
}

// GroupWriterSvc defines write operations for the chart of accounts
type GroupWriterSvc interface {
	CreateGroup(ctx context.Context, companyID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error)
	UpdateGroup(ctx context.Context, companyID string, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error)
	// DeleteGroup fails with ErrReferentialIntegrity for primary groups and groups that still have children or ledgers.
	DeleteGroup(ctx context.Context, companyID string, groupID string) error
}

// GroupSeederSvc seeds the default chart of accounts
type GroupSeederSvc interface {
	// SeedDefaultGroups inserts the default groups for company, resolving parent names to IDs.
	SeedDefaultGroups(ctx context.Context, company domain.Company, userID string) ([]domain.Group, error)
}

// GroupSvcFacade combines all group-related service interfaces
type GroupSvcFacade interface {
	GroupReaderSvc
	GroupWriterSvc
	GroupSeederSvc
}
