package models

// Group represents a row in the groups table.
type Group struct {
	GroupID            string  `db:"group_id"`
	CompanyID          string  `db:"company_id"`
	Name               string  `db:"name"`
	ParentGroupID      *string `db:"parent_group_id"` // Nullable for primary groups
	Nature             string  `db:"nature"`
	IsPrimary          bool    `db:"is_primary"`
	AffectsGrossProfit bool    `db:"affects_gross_profit"`
	AuditFields
}
