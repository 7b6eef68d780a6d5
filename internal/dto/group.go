package dto

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// CreateGroupRequest defines the data needed to create a group.
// Nature and AffectsGrossProfit are taken from the parent when omitted.
type CreateGroupRequest struct {
	Name               string              `json:"name" binding:"required"`
	ParentGroupID      *string             `json:"parentGroupID"`
	Nature             *domain.GroupNature `json:"nature" binding:"omitempty,nature"`
	AffectsGrossProfit *bool               `json:"affectsGrossProfit"`
}

// UpdateGroupRequest defines the data allowed for updating a group.
type UpdateGroupRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=1"`
	AffectsGrossProfit *bool   `json:"affectsGrossProfit"`
}

// GroupResponse defines the data returned for a group.
type GroupResponse struct {
	GroupID            string             `json:"groupID"`
	CompanyID          string             `json:"companyID"`
	Name               string             `json:"name"`
	ParentGroupID      *string            `json:"parentGroupID,omitempty"`
	Nature             domain.GroupNature `json:"nature"`
	IsPrimary          bool               `json:"isPrimary"`
	AffectsGrossProfit bool               `json:"affectsGrossProfit"`
}

// ToGroupResponse converts a domain.Group to GroupResponse DTO
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:            g.GroupID,
		CompanyID:          g.CompanyID,
		Name:               g.Name,
		ParentGroupID:      g.ParentGroupID,
		Nature:             g.Nature,
		IsPrimary:          g.IsPrimary,
		AffectsGrossProfit: g.AffectsGrossProfit,
	}
}

// ToListGroupResponse converts a slice of groups.
func ToListGroupResponse(groups []domain.Group) []GroupResponse {
	out := make([]GroupResponse, len(groups))
	for i := range groups {
		out[i] = ToGroupResponse(&groups[i])
	}
	return out
}
