package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the canonical date form used everywhere records are
// written or displayed.
const DateFormat = "2006-01-02"

// Transaction is one normalized expense record produced by ingestion.
// Records are value objects: built once by a parser, then only read.
// ID is zero until the store assigns one on persistence.
type Transaction struct {
	ID          int
	Date        time.Time       // UTC midnight, date-only
	Amount      decimal.Decimal // positive magnitude; expenses only
	Description string
	AccountID   int // 0 = no owning account
	AccountName string
	Category    string
}

// DateString returns the date in canonical YYYY-MM-DD form.
func (t Transaction) DateString() string {
	return t.Date.Format(DateFormat)
}

// Month returns the YYYY-MM bucket the transaction falls in.
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}
