package ingest

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/categorize"
)

// fixedParser returns a Parser whose clock is pinned, so today-fallbacks
// are assertable.
func fixedParser(today time.Time) *Parser {
	p := NewParser(categorize.DefaultRuleset())
	p.now = func() time.Time { return today }
	return p
}

var testToday = time.Date(2025, time.March, 1, 10, 30, 0, 0, time.UTC)

func TestParseDelimitedDocument_SingleRow(t *testing.T) {
	p := fixedParser(testToday)
	txns := p.ParseDelimitedDocument("Date,Amount,Description\n2024-01-15,42.50,AMAZON\n", 0, "Chase Card")

	require.Len(t, txns, 1)
	assert.Equal(t, "2024-01-15", txns[0].DateString())
	assert.Equal(t, "42.50", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "AMAZON", txns[0].Description)
	assert.Equal(t, "Shopping", txns[0].Category)
	assert.Equal(t, 0, txns[0].AccountID)
	assert.Equal(t, "Chase Card", txns[0].AccountName)
}

func TestParseDelimitedDocument_File(t *testing.T) {
	data, err := os.ReadFile("../../testdata/bank_checking.csv")
	require.NoError(t, err)

	p := fixedParser(testToday)
	txns := p.ParseDelimitedDocument(string(data), 3, "Checking")
	require.Len(t, txns, 4)

	// Quoted amount with a thousands comma survives tokenization.
	assert.Equal(t, "1234.56", txns[1].Amount.StringFixed(2))
	assert.Equal(t, "2024-01-16", txns[1].DateString())
	assert.Equal(t, "Groceries", txns[1].Category)

	// Negative amounts are stored as magnitudes.
	assert.Equal(t, "8.75", txns[2].Amount.StringFixed(2))
	assert.Equal(t, "Food & Dining", txns[2].Category)

	// Order preserved relative to input.
	assert.Equal(t, "AMAZON MARKETPLACE", txns[0].Description)
	assert.Equal(t, "NETFLIX.COM", txns[3].Description)

	for _, txn := range txns {
		assert.Equal(t, 3, txn.AccountID)
		assert.Equal(t, "Checking", txn.AccountName)
	}
}

func TestParseDelimitedDocument_HeaderOnly(t *testing.T) {
	p := fixedParser(testToday)
	assert.Nil(t, p.ParseDelimitedDocument("Date,Amount,Description\n", 0, "X"))
	assert.Nil(t, p.ParseDelimitedDocument("", 0, "X"))
	assert.Nil(t, p.ParseDelimitedDocument("   \n   ", 0, "X"))
}

func TestParseDelimitedDocument_DropsBadRows(t *testing.T) {
	doc := "Date,Amount,Description\n" +
		"2024-01-15,0.00,ZERO\n" +
		"2024-01-15,-0.00,NEGATIVE ZERO\n" +
		"2024-01-15,nope,NOT A NUMBER\n" +
		"\n" +
		"2024-01-15,5.00,KEPT\n"

	p := fixedParser(testToday)
	txns := p.ParseDelimitedDocument(doc, 0, "X")
	require.Len(t, txns, 1)
	assert.Equal(t, "KEPT", txns[0].Description)
}

func TestParseDelimitedDocument_BadDateFallsBackToToday(t *testing.T) {
	p := fixedParser(testToday)
	txns := p.ParseDelimitedDocument("Date,Amount,Description\nsometime,9.99,MYSTERY\n", 0, "X")
	require.Len(t, txns, 1)
	assert.Equal(t, "2025-03-01", txns[0].DateString())
}

func TestParseDelimitedDocument_UnresolvedColumns(t *testing.T) {
	// No header matches anything: the amount is found by shape, the
	// description is the whole row, the date defaults to today.
	p := fixedParser(testToday)
	txns := p.ParseDelimitedDocument("Alpha,Beta,Gamma\nfoo,12.34,bar\n", 0, "X")

	require.Len(t, txns, 1)
	assert.Equal(t, "12.34", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "foo 12.34 bar", txns[0].Description)
	assert.Equal(t, "2025-03-01", txns[0].DateString())
}

func TestParseDelimitedDocument_ShortRow(t *testing.T) {
	// Row shorter than the detected amount column is dropped, not an error.
	p := fixedParser(testToday)
	txns := p.ParseDelimitedDocument("Description,Date,Amount\nonly-one-field\n", 0, "X")
	assert.Nil(t, txns)
}

func TestParseDelimitedDocument_CRLF(t *testing.T) {
	p := fixedParser(testToday)
	txns := p.ParseDelimitedDocument("Date,Amount,Description\r\n2024-01-15,1.00,A\r\n2024-01-16,2.00,B\r\n", 0, "X")
	require.Len(t, txns, 2)
	assert.Equal(t, "2024-01-16", txns[1].DateString())
}

func TestParseDelimitedDocument_Idempotent(t *testing.T) {
	data, err := os.ReadFile("../../testdata/bank_checking.csv")
	require.NoError(t, err)

	p := fixedParser(testToday)
	first := p.ParseDelimitedDocument(string(data), 0, "X")
	second := p.ParseDelimitedDocument(string(data), 0, "X")
	assert.Equal(t, first, second)
}
