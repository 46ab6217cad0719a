// Package bankservice manages business logic layer of the bank: account
// lifecycle, ledger mutations and write-through persistence.
package bankservice

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-petr/private-bank/internal/codec"
	"github.com/go-petr/private-bank/internal/domain"
	"github.com/go-petr/private-bank/internal/ledger"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by bank service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bankservice
type Repo interface {
	// List returns every persisted ledger record.
	List(ctx context.Context) ([]domain.LedgerRecord, error)
	// Save durably replaces the record of the account.
	Save(ctx context.Context, account string, data []byte) error
	// Delete removes the record of the account.
	Delete(ctx context.Context, account string) error
}

type account struct {
	mu      sync.RWMutex
	ledger  *ledger.Ledger
	deleted bool
}

// Service facilitates bank service layer logic.
//
// Mutations of one account are serialized and written through to the repo
// before they return. Different accounts do not block each other.
type Service struct {
	repo Repo

	mu       sync.RWMutex
	name     string
	rate     domain.InterestRate
	accounts map[string]*account
	// pending holds names reserved by CreateAccount while their first
	// record is written.
	pending map[string]struct{}
}

// New returns a bank holding every account found in the repo.
func New(ctx context.Context, name string, rate domain.InterestRate, repo Repo) (*Service, error) {
	l := zerolog.Ctx(ctx)

	records, err := repo.List(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, fmt.Errorf("%w: list ledgers: %w", domain.ErrStorage, err)
	}

	s := &Service{
		repo:     repo,
		name:     name,
		rate:     rate,
		accounts: make(map[string]*account, len(records)),
		pending:  make(map[string]struct{}),
	}

	for _, r := range records {
		if _, ok := s.accounts[r.Account]; ok {
			err := fmt.Errorf("%w: duplicate record for account %q", domain.ErrStorage, r.Account)
			l.Error().Err(err).Send()

			return nil, err
		}

		txs, err := codec.Unmarshal(r.Data)
		if err != nil {
			l.Error().Err(err).Str("account", r.Account).Send()
			return nil, fmt.Errorf("load account %q: %w", r.Account, err)
		}

		lg, err := ledger.Restore(txs)
		if err != nil {
			l.Error().Err(err).Str("account", r.Account).Send()
			return nil, fmt.Errorf("load account %q: %w", r.Account, err)
		}

		s.accounts[r.Account] = &account{ledger: lg}
	}

	l.Info().Str("bank", name).Int("accounts", len(s.accounts)).Msg("bank loaded")

	return s, nil
}

// Name returns the bank name.
func (s *Service) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.name
}

// SetName replaces the bank name.
func (s *Service) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.name = name
}

// InterestRate returns the rate applied to payments on insertion.
func (s *Service) InterestRate() domain.InterestRate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rate
}

// SetInterestRate replaces the bank-wide rate. Payments already in a ledger
// keep the rate they were inserted with.
func (s *Service) SetInterestRate(ctx context.Context, incoming, outgoing decimal.Decimal) (domain.InterestRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rate.Set(incoming, outgoing); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		return s.rate, err
	}

	return s.rate, nil
}

func (s *Service) persist(ctx context.Context, name string, lg *ledger.Ledger) error {
	data, err := codec.Marshal(lg.Transactions())
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, name, data); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account", name).Send()
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	return nil
}

// CreateAccount creates and persists an empty account.
//
// The name stays reserved while the record is written. A concurrent create
// of the same name fails with ErrAccountExists.
func (s *Service) CreateAccount(ctx context.Context, name string) error {
	s.mu.Lock()

	_, exists := s.accounts[name]
	_, reserved := s.pending[name]

	if exists || reserved {
		s.mu.Unlock()
		return domain.ErrAccountExists
	}

	s.pending[name] = struct{}{}
	s.mu.Unlock()

	lg := ledger.New()
	err := s.persist(ctx, name, lg)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, name)

	if err != nil {
		return err
	}

	s.accounts[name] = &account{ledger: lg}

	return nil
}

// CreateAccountWith creates the account and then adds txs one by one.
//
// The first failing transaction stops the sequence and its error is
// returned. The account and the transactions added before it are kept.
func (s *Service) CreateAccountWith(ctx context.Context, name string, txs []domain.Transaction) error {
	if err := s.CreateAccount(ctx, name); err != nil {
		return err
	}

	for _, t := range txs {
		if err := s.AddTransaction(ctx, name, t); err != nil {
			return err
		}
	}

	return nil
}

// DeleteAccount removes the account and its persisted record.
//
// Only the account itself is locked while the record is removed. The name
// leaves the bank once the removal succeeded.
func (s *Service) DeleteAccount(ctx context.Context, name string) error {
	acc, _, ok := s.lookup(name)
	if !ok {
		return domain.ErrAccountNotFound
	}

	acc.mu.Lock()

	if acc.deleted {
		acc.mu.Unlock()
		return domain.ErrAccountNotFound
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		acc.mu.Unlock()
		zerolog.Ctx(ctx).Error().Err(err).Str("account", name).Send()

		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	acc.deleted = true
	acc.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accounts[name] == acc {
		delete(s.accounts, name)
	}

	return nil
}

// Accounts returns the sorted account names.
func (s *Service) Accounts(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// HasAccount reports whether the account exists.
func (s *Service) HasAccount(ctx context.Context, name string) bool {
	return s.read(name, func(*ledger.Ledger) {})
}

func (s *Service) lookup(name string) (*account, domain.InterestRate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[name]

	return acc, s.rate, ok
}

// mutate applies fn to a copy of the account ledger, persists the copy and
// only then makes it current.
func (s *Service) mutate(ctx context.Context, name string, fn func(lg *ledger.Ledger, rate domain.InterestRate) error) error {
	acc, rate, ok := s.lookup(name)
	if !ok {
		return domain.ErrAccountNotFound
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	if acc.deleted {
		return domain.ErrAccountNotFound
	}

	next := acc.ledger.Clone()
	if err := fn(next, rate); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("account", name).Send()
		return err
	}

	if err := s.persist(ctx, name, next); err != nil {
		return err
	}

	acc.ledger = next

	return nil
}

// AddTransaction adds t to the account ledger and persists it.
// Payments take the bank rate at this moment.
func (s *Service) AddTransaction(ctx context.Context, name string, t domain.Transaction) error {
	return s.mutate(ctx, name, func(lg *ledger.Ledger, rate domain.InterestRate) error {
		return lg.Add(t, rate)
	})
}

// RemoveTransaction removes the transaction equal to t and persists the ledger.
func (s *Service) RemoveTransaction(ctx context.Context, name string, t domain.Transaction) error {
	return s.mutate(ctx, name, func(lg *ledger.Ledger, _ domain.InterestRate) error {
		return lg.Remove(t)
	})
}

// read runs fn under the account read lock. It reports false when the
// account does not exist.
func (s *Service) read(name string, fn func(lg *ledger.Ledger)) bool {
	acc, _, ok := s.lookup(name)
	if !ok {
		return false
	}

	acc.mu.RLock()
	defer acc.mu.RUnlock()

	if acc.deleted {
		return false
	}

	fn(acc.ledger)

	return true
}

// ContainsTransaction reports whether the account holds a transaction equal to t.
func (s *Service) ContainsTransaction(ctx context.Context, name string, t domain.Transaction) bool {
	var found bool

	s.read(name, func(lg *ledger.Ledger) {
		found = lg.Contains(t)
	})

	return found
}

// AccountBalance returns the account balance, or zero for an unknown account.
func (s *Service) AccountBalance(ctx context.Context, name string) decimal.Decimal {
	balance := decimal.Zero

	s.read(name, func(lg *ledger.Ledger) {
		balance = lg.Balance()
	})

	return balance
}

// Statement returns the account transactions in insertion order together
// with their balance, both read under one lock. An unknown account gives nil
// and zero.
func (s *Service) Statement(ctx context.Context, name string) ([]domain.Transaction, decimal.Decimal) {
	var txs []domain.Transaction

	balance := decimal.Zero

	s.read(name, func(lg *ledger.Ledger) {
		txs = lg.Transactions()
		balance = lg.Balance()
	})

	return txs, balance
}

// Transactions returns the account transactions in insertion order, or nil
// for an unknown account.
func (s *Service) Transactions(ctx context.Context, name string) []domain.Transaction {
	var txs []domain.Transaction

	s.read(name, func(lg *ledger.Ledger) {
		txs = lg.Transactions()
	})

	return txs
}

// TransactionsSorted returns the account transactions ordered by
// contribution, or nil for an unknown account.
func (s *Service) TransactionsSorted(ctx context.Context, name string, asc bool) []domain.Transaction {
	var txs []domain.Transaction

	s.read(name, func(lg *ledger.Ledger) {
		txs = lg.Sorted(asc)
	})

	return txs
}

// TransactionsByType returns the credits (positive) or the debits of the
// account, or nil for an unknown account.
func (s *Service) TransactionsByType(ctx context.Context, name string, positive bool) []domain.Transaction {
	var txs []domain.Transaction

	s.read(name, func(lg *ledger.Ledger) {
		txs = lg.ByType(positive)
	})

	return txs
}
