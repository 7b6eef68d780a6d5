package mapping

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/models"
)

// ToModelGroup converts a domain Group to a model Group
func ToModelGroup(d domain.Group) models.Group {
	return models.Group{
		GroupID:            d.GroupID,
		CompanyID:          d.CompanyID,
		Name:               d.Name,
		ParentGroupID:      d.ParentGroupID,
		Nature:             string(d.Nature),
		IsPrimary:          d.IsPrimary,
		AffectsGrossProfit: d.AffectsGrossProfit,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroup converts a model Group to a domain Group
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:            m.GroupID,
		CompanyID:          m.CompanyID,
		Name:               m.Name,
		ParentGroupID:      m.ParentGroupID,
		Nature:             domain.GroupNature(m.Nature),
		IsPrimary:          m.IsPrimary,
		AffectsGrossProfit: m.AffectsGrossProfit,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainGroupSlice(ms []models.Group) []domain.Group {
	ds := make([]domain.Group, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroup(m)
	}
	return ds
}
