package store

import (
	"fmt"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// ValidationError describes one invalid record in a batch.
type ValidationError struct {
	Record      int // 1-based position in the batch
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Record, e.Description)
}

// ValidateBatch checks records before they become durable. Parsers drop
// bad rows themselves, so a violation here means a caller constructed a
// record by hand; the whole batch is rejected rather than partially
// applied.
func ValidateBatch(txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	for i, txn := range txns {
		if txn.Date.IsZero() {
			errs = append(errs, ValidationError{Record: i + 1, Description: "missing date"})
		}
		if !txn.Amount.IsPositive() {
			errs = append(errs, ValidationError{Record: i + 1, Description: fmt.Sprintf("amount %s is not positive", txn.Amount)})
		}
		if txn.Description == "" {
			errs = append(errs, ValidationError{Record: i + 1, Description: "empty description"})
		}
	}
	return errs
}
