package domain

// GroupNature is the top-level classification of a group.
type GroupNature string

const (
	NatureAssets      GroupNature = "Assets"
	NatureLiabilities GroupNature = "Liabilities"
	NatureIncome      GroupNature = "Income"
	NatureExpenses    GroupNature = "Expenses"
)

// IsValid reports whether n is one of the four known natures.
func (n GroupNature) IsValid() bool {
	switch n {
	case NatureAssets, NatureLiabilities, NatureIncome, NatureExpenses:
		return true
	}
	return false
}

// Group is a node in a company's chart of accounts.
type Group struct {
	GroupID            string      `json:"groupID"`
	CompanyID          string      `json:"companyID"`
	Name               string      `json:"name"`
	ParentGroupID      *string     `json:"parentGroupID,omitempty"`
	Nature             GroupNature `json:"nature"`
	IsPrimary          bool        `json:"isPrimary"`
	AffectsGrossProfit bool        `json:"affectsGrossProfit"`
	AuditFields
}

// GroupTree indexes a company's groups for parent walks.
type GroupTree map[string]Group

// NewGroupTree builds a GroupTree keyed by group ID.
func NewGroupTree(groups []Group) GroupTree {
	tree := make(GroupTree, len(groups))
	for _, g := range groups {
		tree[g.GroupID] = g
	}
	return tree
}

// Name returns the name of the group, or "" when it is unknown.
func (t GroupTree) Name(groupID string) string {
	return t[groupID].Name
}

// Lineage returns the group followed by its ancestors up to the primary group.
func (t GroupTree) Lineage(groupID string) []Group {
	var out []Group
	seen := make(map[string]bool)
	for groupID != "" && !seen[groupID] {
		seen[groupID] = true
		g, ok := t[groupID]
		if !ok {
			break
		}
		out = append(out, g)
		if g.ParentGroupID == nil {
			break
		}
		groupID = *g.ParentGroupID
	}
	return out
}

// IsUnder reports whether groupID is the group named ancestorName or one of its descendants.
func (t GroupTree) IsUnder(groupID, ancestorName string) bool {
	seen := make(map[string]bool)
	for groupID != "" && !seen[groupID] {
		seen[groupID] = true
		g, ok := t[groupID]
		if !ok {
			return false
		}
		if g.Name == ancestorName {
			return true
		}
		if g.ParentGroupID == nil {
			return false
		}
		groupID = *g.ParentGroupID
	}
	return false
}
