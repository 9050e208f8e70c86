package model

// AccountKind classifies a tracked account.
type AccountKind string

const (
	AccountKindChecking AccountKind = "checking"
	AccountKindSavings  AccountKind = "savings"
	AccountKindCredit   AccountKind = "credit"
	AccountKindOther    AccountKind = "other"
)

// Account represents a row in accounts.csv.
type Account struct {
	ID   int
	Name string
	Kind AccountKind
}
