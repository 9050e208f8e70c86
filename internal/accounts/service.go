package accounts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// Service provides in-memory lookup over the tracked accounts.
type Service struct {
	accounts []model.Account
	byID     map[int]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[int]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads accounts.csv from a ledger root and returns a Service.
// A missing file means no accounts yet, not an error.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, "accounts", "accounts.csv")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id int) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// NextID returns the next free account id, starting at 1.
func (s *Service) NextID() int {
	next := 1
	for _, a := range s.accounts {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}

// Add appends an account to the in-memory set.
func (s *Service) Add(acct model.Account) {
	s.accounts = append(s.accounts, acct)
	s.byID[acct.ID] = acct
}

// Save writes the accounts to <root>/accounts/accounts.csv.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "accounts.csv"))
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}
