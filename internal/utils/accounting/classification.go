package accounting

import (
	"strings"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

type bucketRule struct {
	nature   domain.GroupNature
	contains []string // empty matches any name
	bucket   domain.BalanceSheetBucket
}

// Rules are checked in order; the first match wins.
var balanceSheetRules = []bucketRule{
	{domain.NatureAssets, []string{"Fixed Assets"}, domain.BucketFixedAssets},
	{domain.NatureAssets, []string{"Current Assets", "Bank", "Cash"}, domain.BucketCurrentAssets},
	{domain.NatureAssets, []string{"Investment"}, domain.BucketInvestments},
	{domain.NatureAssets, nil, domain.BucketCurrentAssets},
	{domain.NatureLiabilities, []string{"Capital"}, domain.BucketCapital},
	{domain.NatureLiabilities, []string{"Loan", "Duties & Taxes"}, domain.BucketLoans},
	{domain.NatureLiabilities, []string{"Current Liabilities", "Creditors"}, domain.BucketCurrentLiabilities},
	{domain.NatureLiabilities, []string{"Reserves"}, domain.BucketReserves},
	{domain.NatureLiabilities, nil, domain.BucketCurrentLiabilities},
}

func matchNamedRule(nature domain.GroupNature, groupName string) (domain.BalanceSheetBucket, bool) {
	for _, r := range balanceSheetRules {
		if r.nature != nature {
			continue
		}
		for _, s := range r.contains {
			if strings.Contains(groupName, s) {
				return r.bucket, true
			}
		}
	}
	return "", false
}

func fallbackBucket(nature domain.GroupNature) (domain.BalanceSheetBucket, bool) {
	for _, r := range balanceSheetRules {
		if r.nature == nature && len(r.contains) == 0 {
			return r.bucket, true
		}
	}
	return "", false
}

// ClassifyGroup maps a group's nature and name onto a balance sheet bucket.
// Income and expense groups have no bucket.
func ClassifyGroup(nature domain.GroupNature, groupName string) (domain.BalanceSheetBucket, bool) {
	if bucket, ok := matchNamedRule(nature, groupName); ok {
		return bucket, true
	}
	return fallbackBucket(nature)
}

// ClassifyLedgerGroup classifies by the nearest group, starting at groupID and walking
// up its parents, whose name matches a rule. A ledger in "Computers" under
// "Fixed Assets" lands in fixed assets.
func ClassifyLedgerGroup(groups domain.GroupTree, groupID string) (domain.BalanceSheetBucket, bool) {
	nature := groups[groupID].Nature
	for _, g := range groups.Lineage(groupID) {
		if bucket, ok := matchNamedRule(nature, g.Name); ok {
			return bucket, true
		}
	}
	return fallbackBucket(nature)
}
