package ingest

import "strings"

// unresolved marks a semantic column the header gave no answer for.
const unresolved = -1

// ColumnLayout holds the resolved column index for each semantic field
// of a delimited document. Unresolved fields are -1; later stages fall
// back to content-shape heuristics, so a header that matches nothing is
// not an error.
type ColumnLayout struct {
	Date        int
	Amount      int
	Description int
}

var (
	dateHeaderKeys        = []string{"date", "posting", "trans"}
	amountHeaderKeys      = []string{"amount", "debit", "transaction", "amt"}
	descriptionHeaderKeys = []string{"description", "merchant", "name", "detail", "memo"}
)

// DetectColumns resolves the date, amount, and description columns from
// header field names by substring matching against known bank-export
// header vocabulary.
func DetectColumns(headers []string) ColumnLayout {
	return ColumnLayout{
		Date:        findColumn(headers, dateHeaderKeys),
		Amount:      findColumn(headers, amountHeaderKeys),
		Description: findColumn(headers, descriptionHeaderKeys),
	}
}

// findColumn returns the index of the first header containing any key,
// or -1 if none match.
func findColumn(headers, keys []string) int {
	for i, h := range headers {
		lower := strings.ToLower(h)
		for _, k := range keys {
			if strings.Contains(lower, k) {
				return i
			}
		}
	}
	return unresolved
}
