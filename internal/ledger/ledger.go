// Package ledger keeps the ordered transactions of a single account.
package ledger

import (
	"fmt"
	"sort"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/shopspring/decimal"
)

// Ledger is an insertion ordered list of unique transactions.
//
// A Ledger is not safe for concurrent use. Transactions are copied on the
// way in and on the way out, so callers never share state with it.
type Ledger struct {
	items []domain.Transaction
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Restore rebuilds a ledger from persisted transactions.
// Unlike Add it does not touch payment rates, it only rejects duplicates.
func Restore(txs []domain.Transaction) (*Ledger, error) {
	l := &Ledger{items: make([]domain.Transaction, 0, len(txs))}

	for _, t := range txs {
		if domain.IsNil(t) {
			return nil, fmt.Errorf("%w: nil transaction", domain.ErrInvalidTransaction)
		}

		if l.Contains(t) {
			return nil, fmt.Errorf("%w: %v", domain.ErrDuplicateTransaction, t)
		}

		l.items = append(l.items, t.Clone())
	}

	return l, nil
}

func validate(t domain.Transaction) error {
	if t.Amount().IsZero() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTransaction, domain.ReasonZeroAmount)
	}

	if t.Kind().IsTransfer() && t.Amount().IsNegative() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTransaction, domain.ReasonNegativeTransferAmount)
	}

	return nil
}

// Add appends a copy of t.
//
// A payment gets rate written over its own interest before anything else is
// checked. Zero amounts, negative transfers and duplicates are rejected.
func (l *Ledger) Add(t domain.Transaction, rate domain.InterestRate) error {
	if domain.IsNil(t) {
		return fmt.Errorf("%w: nil transaction", domain.ErrInvalidTransaction)
	}

	t = t.Clone()

	if p, ok := t.(*domain.Payment); ok {
		p.SetRate(rate)
	}

	if err := validate(t); err != nil {
		return err
	}

	if l.Contains(t) {
		return domain.ErrDuplicateTransaction
	}

	l.items = append(l.items, t)

	return nil
}

// Remove deletes the transaction equal to t.
func (l *Ledger) Remove(t domain.Transaction) error {
	i := l.index(t)
	if i < 0 {
		return domain.ErrTransactionNotFound
	}

	l.items = append(l.items[:i:i], l.items[i+1:]...)

	return nil
}

func (l *Ledger) index(t domain.Transaction) int {
	if domain.IsNil(t) {
		return -1
	}

	for i, item := range l.items {
		if item.Equal(t) {
			return i
		}
	}

	return -1
}

// Contains reports whether an equal transaction is in the ledger.
func (l *Ledger) Contains(t domain.Transaction) bool {
	return l.index(t) >= 0
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Balance sums the contributions of all transactions.
func (l *Ledger) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range l.items {
		sum = sum.Add(t.Contribution())
	}

	return sum
}

// Transactions returns copies of the transactions in insertion order.
func (l *Ledger) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(l.items))
	for i, t := range l.items {
		out[i] = t.Clone()
	}

	return out
}

// Sorted returns the transactions ordered by contribution.
// Equal contributions keep their insertion order in both directions.
func (l *Ledger) Sorted(asc bool) []domain.Transaction {
	out := l.Transactions()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Contribution(), out[j].Contribution()
		if asc {
			return a.LessThan(b)
		}

		return a.GreaterThan(b)
	})

	return out
}

// ByType returns the transactions with a non-negative contribution when
// positive is set, and the ones with a negative contribution otherwise.
func (l *Ledger) ByType(positive bool) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(l.items))

	for _, t := range l.items {
		if t.Contribution().IsNegative() != positive {
			out = append(out, t.Clone())
		}
	}

	return out
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{items: l.Transactions()}
}
