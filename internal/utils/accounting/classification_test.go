package accounting

import (
	"testing"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyGroup(t *testing.T) {
	tests := []struct {
		nature domain.GroupNature
		name   string
		want   domain.BalanceSheetBucket
	}{
		{domain.NatureAssets, "Fixed Assets", domain.BucketFixedAssets},
		{domain.NatureAssets, "Bank Accounts", domain.BucketCurrentAssets},
		{domain.NatureAssets, "Cash-in-Hand", domain.BucketCurrentAssets},
		{domain.NatureAssets, "Current Assets", domain.BucketCurrentAssets},
		{domain.NatureAssets, "Investments", domain.BucketInvestments},
		{domain.NatureAssets, "Sundry Debtors", domain.BucketCurrentAssets},
		{domain.NatureAssets, "", domain.BucketCurrentAssets},
		{domain.NatureLiabilities, "Capital Account", domain.BucketCapital},
		{domain.NatureLiabilities, "Loans (Liability)", domain.BucketLoans},
		{domain.NatureLiabilities, "Duties & Taxes", domain.BucketLoans},
		{domain.NatureLiabilities, "Sundry Creditors", domain.BucketCurrentLiabilities},
		{domain.NatureLiabilities, "Current Liabilities", domain.BucketCurrentLiabilities},
		{domain.NatureLiabilities, "Reserves & Surplus", domain.BucketReserves},
		{domain.NatureLiabilities, "Suspense A/c", domain.BucketCurrentLiabilities},
	}
	for _, tt := range tests {
		t.Run(string(tt.nature)+"/"+tt.name, func(t *testing.T) {
			got, ok := ClassifyGroup(tt.nature, tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := ClassifyGroup(domain.NatureIncome, "Sales Accounts")
	assert.False(t, ok)
}

func TestClassifyLedgerGroup_WalksUpToMatchingParent(t *testing.T) {
	groups := domain.NewGroupTree([]domain.Group{
		{GroupID: "fa", Name: domain.GroupFixedAssets, Nature: domain.NatureAssets, IsPrimary: true},
		{GroupID: "computers", Name: "Computers", ParentGroupID: strPtr("fa"), Nature: domain.NatureAssets},
		{GroupID: "inv", Name: domain.GroupInvestments, Nature: domain.NatureAssets, IsPrimary: true},
		{GroupID: "mf", Name: "Mutual Funds", ParentGroupID: strPtr("inv"), Nature: domain.NatureAssets},
		{GroupID: "loans", Name: domain.GroupLoansLiability, Nature: domain.NatureLiabilities, IsPrimary: true},
		{GroupID: "od", Name: "Bank OD A/c", ParentGroupID: strPtr("loans"), Nature: domain.NatureLiabilities},
		{GroupID: "cap", Name: domain.GroupCapitalAccount, Nature: domain.NatureLiabilities, IsPrimary: true},
		{GroupID: "drawings", Name: "Drawings", ParentGroupID: strPtr("cap"), Nature: domain.NatureLiabilities},
		{GroupID: "misc", Name: "Misc. Payables", Nature: domain.NatureLiabilities, IsPrimary: true},
	})

	tests := []struct {
		groupID string
		want    domain.BalanceSheetBucket
	}{
		{"computers", domain.BucketFixedAssets},
		{"mf", domain.BucketInvestments},
		{"od", domain.BucketLoans},
		{"drawings", domain.BucketCapital},
		{"fa", domain.BucketFixedAssets},
		{"misc", domain.BucketCurrentLiabilities},
	}
	for _, tt := range tests {
		t.Run(tt.groupID, func(t *testing.T) {
			got, ok := ClassifyLedgerGroup(groups, tt.groupID)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
