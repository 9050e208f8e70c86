package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,amount,description,account_id,account_name,category"

const (
	numFields      = 7
	colID          = 0
	colDate        = 1
	colAmount      = 2
	colDescription = 3
	colAccountID   = 4
	colAccountName = 5
	colCategory    = 6
)

// ReadTransactions reads all records from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes records to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(txn.ID)
	row[colDate] = txn.DateString()
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colDescription] = txn.Description

	if txn.AccountID != 0 {
		row[colAccountID] = strconv.Itoa(txn.AccountID)
	}

	row[colAccountName] = txn.AccountName
	row[colCategory] = txn.Category
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	date, err := time.Parse(model.DateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var accountID int
	if record[colAccountID] != "" {
		accountID, err = strconv.Atoi(record[colAccountID])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing account_id %q: %w", record[colAccountID], err)
		}
	}

	return model.Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Description: record[colDescription],
		AccountID:   accountID,
		AccountName: record[colAccountName],
		Category:    record[colCategory],
	}, nil
}
