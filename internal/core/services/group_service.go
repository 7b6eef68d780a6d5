package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type groupService struct {
	BaseService
	groupRepo  portsrepo.GroupRepositoryFacade
	ledgerRepo portsrepo.LedgerReader
}

// NewGroupService creates the chart of accounts service.
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade, ledgerRepo portsrepo.LedgerReader) portssvc.GroupSvcFacade {
	return &groupService{
		groupRepo:  groupRepo,
		ledgerRepo: ledgerRepo,
	}
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

// SeedDefaultGroups inserts the default chart of accounts for a new company.
func (s *groupService) SeedDefaultGroups(ctx context.Context, company domain.Company, userID string) ([]domain.Group, error) {
	now := time.Now().UTC()
	defaults := domain.DefaultGroups()
	idByName := make(map[string]string, len(defaults))
	groups := make([]domain.Group, 0, len(defaults))

	for _, dg := range defaults {
		g := domain.Group{
			GroupID:            uuid.NewString(),
			CompanyID:          company.CompanyID,
			Name:               dg.Name,
			Nature:             dg.Nature,
			IsPrimary:          dg.IsPrimary(),
			AffectsGrossProfit: dg.AffectsGrossProfit,
			AuditFields:        newAuditFields(now, userID),
		}
		if !dg.IsPrimary() {
			parentID, ok := idByName[dg.ParentName]
			if !ok {
				return nil, fmt.Errorf("default group %q references unknown parent %q: %w", dg.Name, dg.ParentName, apperrors.ErrInternal)
			}
			g.ParentGroupID = &parentID
		}
		idByName[g.Name] = g.GroupID
		groups = append(groups, g)
	}

	if err := s.groupRepo.SaveGroups(ctx, groups); err != nil {
		s.LogError(ctx, err, "Failed to seed default groups", slog.String("company_id", company.CompanyID))
		return nil, fmt.Errorf("failed to seed default groups: %w", err)
	}
	s.LogInfo(ctx, "Seeded default groups",
		slog.String("company_id", company.CompanyID),
		slog.Int("count", len(groups)))
	return groups, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, companyID, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("group " + groupID)
		}
		s.LogError(ctx, err, "Failed to get group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context, companyID string) ([]domain.Group, error) {
	groups, err := s.groupRepo.ListGroups(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if groups == nil {
		groups = []domain.Group{}
	}
	return groups, nil
}

// CreateGroup adds a group under an existing parent of the same company, or a new primary group.
// Nature and affectsGrossProfit default to the parent's.
func (s *groupService) CreateGroup(ctx context.Context, companyID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error) {
	group := domain.Group{
		GroupID:     uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		AuditFields: newAuditFields(time.Now().UTC(), userID),
	}

	if req.ParentGroupID != nil && *req.ParentGroupID != "" {
		parent, err := s.groupRepo.FindGroupByID(ctx, companyID, *req.ParentGroupID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent group %s not found in company", apperrors.ErrValidation, *req.ParentGroupID)
			}
			return nil, fmt.Errorf("failed to find parent group: %w", err)
		}
		parentID := parent.GroupID
		group.ParentGroupID = &parentID
		group.Nature = parent.Nature
		group.AffectsGrossProfit = parent.AffectsGrossProfit
	} else {
		group.IsPrimary = true
		if req.Nature == nil {
			return nil, fmt.Errorf("%w: nature is required for a primary group", apperrors.ErrValidation)
		}
	}

	if req.Nature != nil {
		if !req.Nature.IsValid() {
			return nil, fmt.Errorf("%w: invalid nature %q", apperrors.ErrValidation, *req.Nature)
		}
		group.Nature = *req.Nature
	}
	if req.AffectsGrossProfit != nil {
		group.AffectsGrossProfit = *req.AffectsGrossProfit
	}

	if err := s.groupRepo.SaveGroups(ctx, []domain.Group{group}); err != nil {
		s.LogError(ctx, err, "Failed to save group", slog.String("name", group.Name))
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	s.LogInfo(ctx, "Group created", slog.String("group_id", group.GroupID), slog.String("company_id", companyID))
	return &group, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, companyID string, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error) {
	group, err := s.GetGroupByID(ctx, companyID, groupID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.AffectsGrossProfit != nil {
		group.AffectsGrossProfit = *req.AffectsGrossProfit
	}
	touch(&group.AuditFields, time.Now().UTC(), userID)

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to update group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes a user-created leaf group with no ledgers.
func (s *groupService) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	group, err := s.GetGroupByID(ctx, companyID, groupID)
	if err != nil {
		return err
	}
	if group.IsPrimary {
		return fmt.Errorf("%w: primary group %q cannot be deleted", apperrors.ErrReferentialIntegrity, group.Name)
	}

	children, err := s.groupRepo.CountChildGroups(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to count child groups: %w", err)
	}
	if children > 0 {
		return fmt.Errorf("%w: group %q has %d sub-groups", apperrors.ErrReferentialIntegrity, group.Name, children)
	}

	ledgers, err := s.ledgerRepo.CountLedgersInGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to count ledgers in group: %w", err)
	}
	if ledgers > 0 {
		return fmt.Errorf("%w: group %q has %d ledgers", apperrors.ErrReferentialIntegrity, group.Name, ledgers)
	}

	if err := s.groupRepo.DeleteGroup(ctx, companyID, groupID); err != nil {
		s.LogError(ctx, err, "Failed to delete group", slog.String("group_id", groupID))
		return fmt.Errorf("failed to delete group: %w", err)
	}
	s.LogInfo(ctx, "Group deleted", slog.String("group_id", groupID))
	return nil
}
