package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// dataFile is the ledger file, relative to the root.
const dataFile = "data/transactions.csv"

// Service is the local record store. Records are kept in a single CSV
// file under the ledger root; ids are auto-incrementing integers
// assigned at persistence time.
type Service struct {
	root string
}

// NewService creates a store Service over a ledger root directory.
func NewService(root string) *Service {
	return &Service{root: root}
}

// AddBatch validates and persists a batch of records, assigning each a
// unique id. The write is all-or-nothing: the updated ledger is written
// to a temp file and renamed over the old one, so a failure leaves the
// previous contents intact. Returns the stored records with ids set.
func (s *Service) AddBatch(txns []model.Transaction) ([]model.Transaction, error) {
	if len(txns) == 0 {
		return nil, nil
	}

	if verrs := ValidateBatch(txns); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	existing, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	nextID := 1
	for _, txn := range existing {
		if txn.ID >= nextID {
			nextID = txn.ID + 1
		}
	}

	stored := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		txn.ID = nextID
		nextID++
		stored[i] = txn
	}

	if err := s.writeAll(append(existing, stored...)); err != nil {
		return nil, err
	}
	return stored, nil
}

// GetAll returns all persisted records in file order.
func (s *Service) GetAll() ([]model.Transaction, error) {
	path := filepath.Join(s.root, dataFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

// GetRecent returns up to n records sorted by date descending. Ties on
// date break by id descending, so the newest insertion lists first.
func (s *Service) GetRecent(n int) ([]model.Transaction, error) {
	txns, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].ID > txns[j].ID
	})
	if n > 0 && len(txns) > n {
		txns = txns[:n]
	}
	return txns, nil
}

// ByDateRange returns records with from <= date <= to.
func (s *Service) ByDateRange(from, to time.Time) ([]model.Transaction, error) {
	return s.filter(func(txn model.Transaction) bool {
		return !txn.Date.Before(from) && !txn.Date.After(to)
	})
}

// ByAccount returns records owned by the given account id.
func (s *Service) ByAccount(accountID int) ([]model.Transaction, error) {
	return s.filter(func(txn model.Transaction) bool {
		return txn.AccountID == accountID
	})
}

// ByCategory returns records with the given category label.
func (s *Service) ByCategory(category string) ([]model.Transaction, error) {
	return s.filter(func(txn model.Transaction) bool {
		return txn.Category == category
	})
}

func (s *Service) filter(keep func(model.Transaction) bool) ([]model.Transaction, error) {
	txns, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	var result []model.Transaction
	for _, txn := range txns {
		if keep(txn) {
			result = append(result, txn)
		}
	}
	return result, nil
}

// writeAll replaces the ledger file atomically via temp file + rename.
func (s *Service) writeAll(txns []model.Transaction) error {
	path := filepath.Join(s.root, dataFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "transactions-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteTransactions(tmp, txns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp ledger: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}
