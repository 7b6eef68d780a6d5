package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// GroupReader defines read operations for the chart of accounts
type GroupReader interface {
	// FindGroupByID retrieves a group of the company.
	FindGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error)

	// ListGroups retrieves every group of the company.
	ListGroups(ctx context.Context, companyID string) ([]domain.Group, error)

	// CountChildGroups counts the groups whose parent is groupID.
	CountChildGroups(ctx context.Context, groupID string) (int, error)
}

// GroupWriter defines write operations for the chart of accounts
type GroupWriter interface {
	// SaveGroups persists new groups in order.
	SaveGroups(ctx context.Context, groups []domain.Group) error

	// UpdateGroup updates an existing group.
	UpdateGroup(ctx context.Context, group domain.Group) error

	// DeleteGroup removes a group.
	DeleteGroup(ctx context.Context, companyID string, groupID string) error
}

// GroupRepositoryFacade combines all group-related repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
