package domain

// DefaultGroup describes one entry of the chart of accounts seeded for a new company.
// Sub-groups reference their parent by name and take its nature.
type DefaultGroup struct {
	Name               string
	ParentName         string
	Nature             GroupNature
	AffectsGrossProfit bool
}

// IsPrimary reports whether the group sits at the top of the tree.
func (g DefaultGroup) IsPrimary() bool {
	return g.ParentName == ""
}

// Primary group names referenced by reports.
const (
	GroupCapitalAccount     = "Capital Account"
	GroupCurrentAssets      = "Current Assets"
	GroupCurrentLiabilities = "Current Liabilities"
	GroupFixedAssets        = "Fixed Assets"
	GroupInvestments        = "Investments"
	GroupLoansLiability     = "Loans (Liability)"
	GroupSalesAccounts      = "Sales Accounts"
	GroupPurchaseAccounts   = "Purchase Accounts"
	GroupDirectIncomes      = "Direct Incomes"
	GroupDirectExpenses     = "Direct Expenses"
	GroupIndirectIncomes    = "Indirect Incomes"
	GroupIndirectExpenses   = "Indirect Expenses"
	GroupBankAccounts       = "Bank Accounts"
	GroupCashInHand         = "Cash-in-Hand"
	GroupSundryDebtors      = "Sundry Debtors"
	GroupSundryCreditors    = "Sundry Creditors"
	GroupDutiesAndTaxes     = "Duties & Taxes"
	GroupStockInHand        = "Stock-in-Hand"
)

// primaries carry their own nature; everything else resolves it from the parent.
var defaultGroupTable = []DefaultGroup{
	{Name: "Branch / Divisions", Nature: NatureLiabilities},
	{Name: GroupCapitalAccount, Nature: NatureLiabilities},
	{Name: GroupCurrentAssets, Nature: NatureAssets},
	{Name: GroupCurrentLiabilities, Nature: NatureLiabilities},
	{Name: GroupDirectExpenses, Nature: NatureExpenses, AffectsGrossProfit: true},
	{Name: GroupDirectIncomes, Nature: NatureIncome, AffectsGrossProfit: true},
	{Name: GroupFixedAssets, Nature: NatureAssets},
	{Name: GroupIndirectExpenses, Nature: NatureExpenses},
	{Name: GroupIndirectIncomes, Nature: NatureIncome},
	{Name: GroupInvestments, Nature: NatureAssets},
	{Name: GroupLoansLiability, Nature: NatureLiabilities},
	{Name: "Misc. Expenses (ASSET)", Nature: NatureAssets},
	{Name: GroupPurchaseAccounts, Nature: NatureExpenses, AffectsGrossProfit: true},
	{Name: GroupSalesAccounts, Nature: NatureIncome, AffectsGrossProfit: true},
	{Name: "Suspense A/c", Nature: NatureLiabilities},

	{Name: "Reserves & Surplus", ParentName: GroupCapitalAccount},
	{Name: "Partners' Capital", ParentName: GroupCapitalAccount},
	{Name: "Proprietor's Capital", ParentName: GroupCapitalAccount},
	{Name: "Drawings", ParentName: GroupCapitalAccount},

	{Name: GroupBankAccounts, ParentName: GroupCurrentAssets},
	{Name: GroupCashInHand, ParentName: GroupCurrentAssets},
	{Name: "Deposits (Asset)", ParentName: GroupCurrentAssets},
	{Name: "Loans & Advances (Asset)", ParentName: GroupCurrentAssets},
	{Name: GroupStockInHand, ParentName: GroupCurrentAssets},
	{Name: GroupSundryDebtors, ParentName: GroupCurrentAssets},
	{Name: "Input Tax Credit", ParentName: GroupCurrentAssets},
	{Name: "Prepaid Expenses", ParentName: "Loans & Advances (Asset)"},
	{Name: "Advance to Suppliers", ParentName: "Loans & Advances (Asset)"},
	{Name: "Staff Advances", ParentName: "Loans & Advances (Asset)"},
	{Name: "Security Deposits", ParentName: "Deposits (Asset)"},
	{Name: "Fixed Deposits", ParentName: "Deposits (Asset)"},
	{Name: "Petty Cash", ParentName: GroupCashInHand},

	{Name: GroupDutiesAndTaxes, ParentName: GroupCurrentLiabilities},
	{Name: "Provisions", ParentName: GroupCurrentLiabilities},
	{Name: GroupSundryCreditors, ParentName: GroupCurrentLiabilities},
	{Name: "Outstanding Expenses", ParentName: GroupCurrentLiabilities},
	{Name: "Advance from Customers", ParentName: GroupCurrentLiabilities},
	{Name: "Salary Payable", ParentName: GroupCurrentLiabilities},
	{Name: "CGST Payable", ParentName: GroupDutiesAndTaxes},
	{Name: "SGST Payable", ParentName: GroupDutiesAndTaxes},
	{Name: "IGST Payable", ParentName: GroupDutiesAndTaxes},
	{Name: "Cess Payable", ParentName: GroupDutiesAndTaxes},
	{Name: "TDS Payable", ParentName: GroupDutiesAndTaxes},
	{Name: "TCS Payable", ParentName: GroupDutiesAndTaxes},
	{Name: "Professional Tax Payable", ParentName: GroupDutiesAndTaxes},
	{Name: "Provision for Tax", ParentName: "Provisions"},
	{Name: "Provision for Expenses", ParentName: "Provisions"},

	{Name: "Bank OD A/c", ParentName: GroupLoansLiability},
	{Name: "Secured Loans", ParentName: GroupLoansLiability},
	{Name: "Unsecured Loans", ParentName: GroupLoansLiability},

	{Name: "Land & Building", ParentName: GroupFixedAssets},
	{Name: "Plant & Machinery", ParentName: GroupFixedAssets},
	{Name: "Furniture & Fixtures", ParentName: GroupFixedAssets},
	{Name: "Computers", ParentName: GroupFixedAssets},
	{Name: "Vehicles", ParentName: GroupFixedAssets},
	{Name: "Office Equipment", ParentName: GroupFixedAssets},
	{Name: "Accumulated Depreciation", ParentName: GroupFixedAssets},

	{Name: "Shares", ParentName: GroupInvestments},
	{Name: "Mutual Funds", ParentName: GroupInvestments},

	{Name: "Local Sales", ParentName: GroupSalesAccounts},
	{Name: "Interstate Sales", ParentName: GroupSalesAccounts},
	{Name: "Export Sales", ParentName: GroupSalesAccounts},
	{Name: "Local Purchases", ParentName: GroupPurchaseAccounts},
	{Name: "Interstate Purchases", ParentName: GroupPurchaseAccounts},
	{Name: "Import Purchases", ParentName: GroupPurchaseAccounts},

	{Name: "Wages", ParentName: GroupDirectExpenses},
	{Name: "Freight Inward", ParentName: GroupDirectExpenses},
	{Name: "Power & Fuel", ParentName: GroupDirectExpenses},
	{Name: "Factory Expenses", ParentName: GroupDirectExpenses},
	{Name: "Custom Duty", ParentName: GroupDirectExpenses},

	{Name: "Job Work Income", ParentName: GroupDirectIncomes},
	{Name: "Service Charges Received", ParentName: GroupDirectIncomes},

	{Name: "Salaries", ParentName: GroupIndirectExpenses},
	{Name: "Rent", ParentName: GroupIndirectExpenses},
	{Name: "Electricity", ParentName: GroupIndirectExpenses},
	{Name: "Telephone & Internet", ParentName: GroupIndirectExpenses},
	{Name: "Office Expenses", ParentName: GroupIndirectExpenses},
	{Name: "Printing & Stationery", ParentName: GroupIndirectExpenses},
	{Name: "Travelling Expenses", ParentName: GroupIndirectExpenses},
	{Name: "Conveyance", ParentName: GroupIndirectExpenses},
	{Name: "Advertisement", ParentName: GroupIndirectExpenses},
	{Name: "Repairs & Maintenance", ParentName: GroupIndirectExpenses},
	{Name: "Bank Charges", ParentName: GroupIndirectExpenses},
	{Name: "Depreciation", ParentName: GroupIndirectExpenses},
	{Name: "Insurance", ParentName: GroupIndirectExpenses},
	{Name: "Legal & Professional Fees", ParentName: GroupIndirectExpenses},
	{Name: "Audit Fees", ParentName: GroupIndirectExpenses},
	{Name: "Postage & Courier", ParentName: GroupIndirectExpenses},
	{Name: "Staff Welfare", ParentName: GroupIndirectExpenses},
	{Name: "Interest Paid", ParentName: GroupIndirectExpenses},
	{Name: "Commission Paid", ParentName: GroupIndirectExpenses},
	{Name: "Discount Allowed", ParentName: GroupIndirectExpenses},
	{Name: "Bad Debts", ParentName: GroupIndirectExpenses},

	{Name: "Interest Received", ParentName: GroupIndirectIncomes},
	{Name: "Commission Received", ParentName: GroupIndirectIncomes},
	{Name: "Discount Received", ParentName: GroupIndirectIncomes},
	{Name: "Rent Received", ParentName: GroupIndirectIncomes},
	{Name: "Dividend Received", ParentName: GroupIndirectIncomes},
	{Name: "Miscellaneous Income", ParentName: GroupIndirectIncomes},
}

// DefaultGroups returns the default chart of accounts with natures and
// gross-profit flags resolved from the parents. Parents always precede their children.
func DefaultGroups() []DefaultGroup {
	byName := make(map[string]DefaultGroup, len(defaultGroupTable))
	groups := make([]DefaultGroup, 0, len(defaultGroupTable))
	for _, g := range defaultGroupTable {
		if parent, ok := byName[g.ParentName]; ok {
			g.Nature = parent.Nature
			g.AffectsGrossProfit = parent.AffectsGrossProfit
		}
		byName[g.Name] = g
		groups = append(groups, g)
	}
	return groups
}
