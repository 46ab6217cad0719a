// Package memstore keeps ledger records in process memory.
// It backs banks that do not need to survive a restart.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/go-petr/private-bank/internal/domain"
)

// Store is a concurrency safe in-memory ledger repo.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

// List returns the records sorted by account name.
func (s *Store) List(ctx context.Context) ([]domain.LedgerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LedgerRecord, 0, len(s.records))
	for name, data := range s.records {
		out = append(out, domain.LedgerRecord{Account: name, Data: append([]byte(nil), data...)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })

	return out, nil
}

// Save replaces the record of the account.
func (s *Store) Save(ctx context.Context, account string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[account] = append([]byte(nil), data...)

	return nil
}

// Delete removes the record of the account. Missing records are ignored.
func (s *Store) Delete(ctx context.Context, account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, account)

	return nil
}
