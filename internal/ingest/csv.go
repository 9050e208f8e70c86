package ingest

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/categorize"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// Parser turns raw uploaded or pasted text into Transactions. It holds
// no mutable state, so one Parser may be shared across concurrent calls
// on independent inputs.
type Parser struct {
	rules *categorize.Ruleset
	now   func() time.Time
}

// NewParser creates a Parser using the given categorization rules.
func NewParser(rules *categorize.Ruleset) *Parser {
	return &Parser{rules: rules, now: time.Now}
}

// moneyTokenRE recognizes a bare monetary field value: optional dollar
// sign, digits with optional comma grouping, optional decimal part.
var moneyTokenRE = regexp.MustCompile(`^\$?[\d,]+\.?\d*$`)

var (
	errShortRow = errors.New("row shorter than detected layout")
	errNoAmount = errors.New("no money-shaped token in row")
)

// ParseDelimitedDocument parses CSV (or tab-delimited) document text into
// transaction records. Line 0 is the header row; semantic columns are
// resolved from it, with content-shape fallbacks when the header gives no
// answer. Rows without a positive amount are dropped silently; they are
// assumed to be blank or footer lines. The function is total: malformed
// input yields fewer records, never an error.
func (p *Parser) ParseDelimitedDocument(text string, accountID int, accountName string) []model.Transaction {
	lines := splitLines(strings.TrimSpace(text))
	if len(lines) < 2 {
		return nil
	}

	layout := DetectColumns(SplitRow(lines[0]))

	var txns []model.Transaction
	for _, line := range lines[1:] {
		row := SplitRow(line)

		amount, err := rowAmount(row, layout.Amount)
		if err != nil || !amount.IsPositive() {
			continue
		}

		desc := rowDescription(row, layout.Description)

		txns = append(txns, model.Transaction{
			Date:        p.rowDate(row, layout.Date),
			Amount:      amount,
			Description: orUnknown(strings.TrimSpace(desc)),
			AccountID:   accountID,
			AccountName: accountName,
			Category:    p.rules.Categorize(desc),
		})
	}
	return txns
}

// rowDate reads and normalizes the detected date column. Fallback chain:
// resolved-by-header, else today.
func (p *Parser) rowDate(row []string, idx int) time.Time {
	if idx >= 0 && idx < len(row) {
		if d, err := NormalizeDate(row[idx]); err == nil {
			return d
		}
	}
	return p.today()
}

// rowAmount reads the detected amount column, or scans the row for the
// first money-shaped token when the header left the column unresolved.
func rowAmount(row []string, idx int) (decimal.Decimal, error) {
	if idx >= 0 {
		if idx >= len(row) {
			return decimal.Decimal{}, errShortRow
		}
		return NormalizeAmount(row[idx])
	}
	for _, field := range row {
		if moneyTokenRE.MatchString(field) {
			return NormalizeAmount(field)
		}
	}
	return decimal.Decimal{}, errNoAmount
}

// rowDescription reads the detected description column, or joins the
// whole row as a last resort.
func rowDescription(row []string, idx int) string {
	if idx >= 0 {
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}
	return strings.Join(row, " ")
}

func (p *Parser) today() time.Time {
	t := p.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// splitLines splits document text on CR/LF boundaries.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// orUnknown substitutes the placeholder description for empty text.
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
