// Package report computes display aggregates over transaction records.
// Everything here is a pure reduction; the records are never mutated.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// CategoryTotal is total spend for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthTotal is total spend for one YYYY-MM bucket.
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}

// Total sums all amounts.
func Total(txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(txn.Amount)
	}
	return sum
}

// ByCategory sums amounts per category. Categories appear in the order
// given (normally the ruleset order); labels outside that order are
// appended in first-seen order. Zero categories are omitted.
func ByCategory(txns []model.Transaction, order []string) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var extras []string
	known := make(map[string]bool, len(order))
	for _, c := range order {
		known[c] = true
	}

	for _, txn := range txns {
		if _, seen := sums[txn.Category]; !seen && !known[txn.Category] {
			extras = append(extras, txn.Category)
		}
		sums[txn.Category] = sums[txn.Category].Add(txn.Amount)
	}

	var totals []CategoryTotal
	for _, c := range append(append([]string{}, order...), extras...) {
		if sum, ok := sums[c]; ok && !sum.IsZero() {
			totals = append(totals, CategoryTotal{Category: c, Total: sum})
		}
	}
	return totals
}

// ByMonth sums amounts per calendar month, ascending.
func ByMonth(txns []model.Transaction) []MonthTotal {
	sums := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		m := txn.Month()
		sums[m] = sums[m].Add(txn.Amount)
	}

	months := make([]string, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Strings(months)

	totals := make([]MonthTotal, len(months))
	for i, m := range months {
		totals[i] = MonthTotal{Month: m, Total: sums[m]}
	}
	return totals
}
