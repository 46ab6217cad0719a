package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the concrete variant of a transaction.
type Kind string

// Kinds of transactions. The values are persisted and must not change.
const (
	KindPayment          Kind = "Payment"
	KindTransfer         Kind = "Transfer"
	KindIncomingTransfer Kind = "IncomingTransfer"
	KindOutgoingTransfer Kind = "OutgoingTransfer"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindPayment, KindTransfer, KindIncomingTransfer, KindOutgoingTransfer}

// IsTransfer reports whether k belongs to the transfer family.
func (k Kind) IsTransfer() bool {
	switch k {
	case KindTransfer, KindIncomingTransfer, KindOutgoingTransfer:
		return true
	default:
		return false
	}
}

// Transaction is a single ledger record.
//
// The set of implementations is closed: *Payment, *Transfer, *IncomingTransfer
// and *OutgoingTransfer.
type Transaction interface {
	Kind() Kind
	Date() string
	Amount() decimal.Decimal
	Description() string
	// Contribution returns the signed effect of the transaction on a balance.
	Contribution() decimal.Decimal
	// Equal reports structural equality. Different kinds are never equal.
	Equal(other Transaction) bool
	Clone() Transaction
	String() string
}

// IsNil reports whether t is nil or a nil pointer of one of the variants.
func IsNil(t Transaction) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *Payment:
		return v == nil
	case *Transfer:
		return v == nil
	case *IncomingTransfer:
		return v == nil
	case *OutgoingTransfer:
		return v == nil
	}

	return false
}

type record struct {
	date        string
	amount      decimal.Decimal
	description string
}

// Date returns the transaction date as given by the caller.
func (r *record) Date() string { return r.date }

// Amount returns the raw amount.
func (r *record) Amount() decimal.Decimal { return r.amount }

// Description returns the free text description.
func (r *record) Description() string { return r.description }

// SetDate replaces the date.
func (r *record) SetDate(date string) { r.date = date }

// SetDescription replaces the description.
func (r *record) SetDescription(description string) { r.description = description }

func (r *record) equal(o *record) bool {
	return r.date == o.date &&
		r.amount.Equal(o.amount) &&
		r.description == o.description
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransaction, reason)
}

// Payment is a deposit (positive amount) or a withdrawal (negative amount)
// charged with interest.
type Payment struct {
	record
	rate InterestRate
}

// NewPayment returns a validated payment.
func NewPayment(date string, amount decimal.Decimal, description string, incoming, outgoing decimal.Decimal) (*Payment, error) {
	rate, err := NewInterestRate(incoming, outgoing)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	return &Payment{
		record: record{date: date, amount: amount, description: description},
		rate:   rate,
	}, nil
}

// Kind implements Transaction.
func (p *Payment) Kind() Kind { return KindPayment }

// Rate returns the interest applied to the payment.
func (p *Payment) Rate() InterestRate { return p.rate }

// IncomingInterest returns the interest withheld on deposit.
func (p *Payment) IncomingInterest() decimal.Decimal { return p.rate.Incoming() }

// OutgoingInterest returns the interest charged on withdrawal.
func (p *Payment) OutgoingInterest() decimal.Decimal { return p.rate.Outgoing() }

// SetRate replaces both interest values.
func (p *Payment) SetRate(rate InterestRate) { p.rate = rate }

// SetIncomingInterest replaces the incoming interest.
func (p *Payment) SetIncomingInterest(v decimal.Decimal) error {
	if err := p.rate.SetIncoming(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	return nil
}

// SetOutgoingInterest replaces the outgoing interest.
func (p *Payment) SetOutgoingInterest(v decimal.Decimal) error {
	if err := p.rate.SetOutgoing(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	return nil
}

// SetAmount replaces the amount. Any sign is allowed.
func (p *Payment) SetAmount(amount decimal.Decimal) { p.amount = amount }

// Contribution implements Transaction.
//
// Deposits lose the incoming interest, withdrawals are increased by the
// outgoing interest.
func (p *Payment) Contribution() decimal.Decimal {
	if p.amount.IsNegative() {
		return p.amount.Mul(one.Add(p.rate.Outgoing()))
	}

	return p.amount.Mul(one.Sub(p.rate.Incoming()))
}

// Equal implements Transaction.
func (p *Payment) Equal(other Transaction) bool {
	o, ok := other.(*Payment)
	if !ok || o == nil {
		return false
	}

	return p.record.equal(&o.record) && p.rate.Equal(o.rate)
}

// Clone implements Transaction.
func (p *Payment) Clone() Transaction {
	c := *p
	return &c
}

func (p *Payment) String() string {
	return fmt.Sprintf("%s{date=%s amount=%s description=%q incomingInterest=%s outgoingInterest=%s contribution=%s}",
		KindPayment, p.date, p.amount, p.description, p.rate.Incoming(), p.rate.Outgoing(), p.Contribution())
}

// Transfer moves money between two parties. Its amount is never negative and
// its direction is resolved by the account that holds it.
type Transfer struct {
	record
	sender    string
	recipient string
}

// NewTransfer returns a validated transfer.
func NewTransfer(date string, amount decimal.Decimal, description, sender, recipient string) (*Transfer, error) {
	if amount.IsNegative() {
		return nil, invalid(ReasonNegativeTransferAmount)
	}

	return &Transfer{
		record:    record{date: date, amount: amount, description: description},
		sender:    sender,
		recipient: recipient,
	}, nil
}

// Kind implements Transaction.
func (t *Transfer) Kind() Kind { return KindTransfer }

// Sender returns the paying party.
func (t *Transfer) Sender() string { return t.sender }

// Recipient returns the receiving party.
func (t *Transfer) Recipient() string { return t.recipient }

// SetSender replaces the sender.
func (t *Transfer) SetSender(sender string) { t.sender = sender }

// SetRecipient replaces the recipient.
func (t *Transfer) SetRecipient(recipient string) { t.recipient = recipient }

// SetAmount replaces the amount. Negative amounts are rejected.
func (t *Transfer) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return invalid(ReasonNegativeTransferAmount)
	}

	t.amount = amount

	return nil
}

// Contribution implements Transaction.
func (t *Transfer) Contribution() decimal.Decimal { return t.amount }

func (t *Transfer) equal(o *Transfer) bool {
	return t.record.equal(&o.record) &&
		t.sender == o.sender &&
		t.recipient == o.recipient
}

// Equal implements Transaction.
func (t *Transfer) Equal(other Transaction) bool {
	o, ok := other.(*Transfer)
	return ok && o != nil && t.equal(o)
}

// Clone implements Transaction.
func (t *Transfer) Clone() Transaction {
	c := *t
	return &c
}

func (t *Transfer) format(kind Kind, contribution decimal.Decimal) string {
	return fmt.Sprintf("%s{date=%s amount=%s description=%q sender=%q recipient=%q contribution=%s}",
		kind, t.date, t.amount, t.description, t.sender, t.recipient, contribution)
}

func (t *Transfer) String() string {
	return t.format(KindTransfer, t.Contribution())
}

// IncomingTransfer is a transfer that always credits the account.
type IncomingTransfer struct {
	Transfer
}

// NewIncomingTransfer returns a validated incoming transfer.
func NewIncomingTransfer(date string, amount decimal.Decimal, description, sender, recipient string) (*IncomingTransfer, error) {
	t, err := NewTransfer(date, amount, description, sender, recipient)
	if err != nil {
		return nil, err
	}

	return &IncomingTransfer{Transfer: *t}, nil
}

// Kind implements Transaction.
func (t *IncomingTransfer) Kind() Kind { return KindIncomingTransfer }

// Contribution implements Transaction.
func (t *IncomingTransfer) Contribution() decimal.Decimal { return t.amount }

// Equal implements Transaction.
func (t *IncomingTransfer) Equal(other Transaction) bool {
	o, ok := other.(*IncomingTransfer)
	return ok && o != nil && t.Transfer.equal(&o.Transfer)
}

// Clone implements Transaction.
func (t *IncomingTransfer) Clone() Transaction {
	c := *t
	return &c
}

func (t *IncomingTransfer) String() string {
	return t.format(KindIncomingTransfer, t.Contribution())
}

// OutgoingTransfer is a transfer that always debits the account.
type OutgoingTransfer struct {
	Transfer
}

// NewOutgoingTransfer returns a validated outgoing transfer.
func NewOutgoingTransfer(date string, amount decimal.Decimal, description, sender, recipient string) (*OutgoingTransfer, error) {
	t, err := NewTransfer(date, amount, description, sender, recipient)
	if err != nil {
		return nil, err
	}

	return &OutgoingTransfer{Transfer: *t}, nil
}

// Kind implements Transaction.
func (t *OutgoingTransfer) Kind() Kind { return KindOutgoingTransfer }

// Contribution implements Transaction.
func (t *OutgoingTransfer) Contribution() decimal.Decimal { return t.amount.Neg() }

// Equal implements Transaction.
func (t *OutgoingTransfer) Equal(other Transaction) bool {
	o, ok := other.(*OutgoingTransfer)
	return ok && o != nil && t.Transfer.equal(&o.Transfer)
}

// Clone implements Transaction.
func (t *OutgoingTransfer) Clone() Transaction {
	c := *t
	return &c
}

func (t *OutgoingTransfer) String() string {
	return t.format(KindOutgoingTransfer, t.Contribution())
}
