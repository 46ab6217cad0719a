// Package codec converts transactions to and from the persisted envelope format.
//
// A ledger record is a JSON array of envelopes:
//
//	[{"kind": "Payment", "fields": {"date": "...", "amount": 100, ...}}, ...]
//
// The kind tag is read first and selects the field decoder. Unknown kinds are
// rejected with domain.ErrUnknownVariant.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/shopspring/decimal"
)

// Envelope wraps the fields of a transaction together with its kind.
type Envelope struct {
	Kind   domain.Kind     `json:"kind"`
	Fields json.RawMessage `json:"fields"`
}

// number is a decimal written as a bare JSON number with its exact text.
type number struct {
	decimal.Decimal
}

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

type paymentFields struct {
	Date             string `json:"date"`
	Amount           number `json:"amount"`
	Description      string `json:"description"`
	IncomingInterest number `json:"incomingInterest"`
	OutgoingInterest number `json:"outgoingInterest"`
}

type transferFields struct {
	Date        string `json:"date"`
	Amount      number `json:"amount"`
	Description string `json:"description"`
	Sender      string `json:"sender"`
	Recipient   string `json:"recipient"`
}

// transferOf returns the shared transfer part of the transfer family.
func transferOf(t domain.Transaction) (*domain.Transfer, bool) {
	switch v := t.(type) {
	case *domain.Transfer:
		return v, true
	case *domain.IncomingTransfer:
		return &v.Transfer, true
	case *domain.OutgoingTransfer:
		return &v.Transfer, true
	default:
		return nil, false
	}
}

// Wrap encodes t into an envelope.
func Wrap(t domain.Transaction) (Envelope, error) {
	var fields any

	if p, ok := t.(*domain.Payment); ok {
		fields = paymentFields{
			Date:             p.Date(),
			Amount:           number{p.Amount()},
			Description:      p.Description(),
			IncomingInterest: number{p.IncomingInterest()},
			OutgoingInterest: number{p.OutgoingInterest()},
		}
	} else if tr, ok := transferOf(t); ok {
		fields = transferFields{
			Date:        tr.Date(),
			Amount:      number{tr.Amount()},
			Description: tr.Description(),
			Sender:      tr.Sender(),
			Recipient:   tr.Recipient(),
		}
	} else {
		return Envelope{}, fmt.Errorf("%w: %T", domain.ErrUnknownVariant, t)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{Kind: t.Kind(), Fields: raw}, nil
}

func decodeFields(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing fields", domain.ErrInvalidTransaction)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidTransaction, err)
	}

	return nil
}

// Unwrap decodes an envelope into a validated transaction.
func Unwrap(e Envelope) (domain.Transaction, error) {
	var (
		t   domain.Transaction
		err error
	)

	switch e.Kind {
	case domain.KindPayment:
		t, err = unwrapPayment(e.Fields)
	case domain.KindTransfer, domain.KindIncomingTransfer, domain.KindOutgoingTransfer:
		t, err = unwrapTransfer(e.Kind, e.Fields)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, e.Kind)
	}

	if err != nil {
		return nil, err
	}

	return t, nil
}

func unwrapPayment(raw json.RawMessage) (domain.Transaction, error) {
	var f paymentFields
	if err := decodeFields(raw, &f); err != nil {
		return nil, err
	}

	p, err := domain.NewPayment(f.Date, f.Amount.Decimal, f.Description, f.IncomingInterest.Decimal, f.OutgoingInterest.Decimal)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func unwrapTransfer(kind domain.Kind, raw json.RawMessage) (domain.Transaction, error) {
	var f transferFields
	if err := decodeFields(raw, &f); err != nil {
		return nil, err
	}

	t, err := domain.NewTransfer(f.Date, f.Amount.Decimal, f.Description, f.Sender, f.Recipient)
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.KindIncomingTransfer:
		return &domain.IncomingTransfer{Transfer: *t}, nil
	case domain.KindOutgoingTransfer:
		return &domain.OutgoingTransfer{Transfer: *t}, nil
	default:
		return t, nil
	}
}

// Marshal encodes a ledger record. An empty sequence encodes to "[]".
func Marshal(txs []domain.Transaction) ([]byte, error) {
	envs := make([]Envelope, 0, len(txs))

	for _, t := range txs {
		e, err := Wrap(t)
		if err != nil {
			return nil, err
		}

		envs = append(envs, e)
	}

	return json.MarshalIndent(envs, "", "  ")
}

// Unmarshal decodes a ledger record. Empty input and "null" decode to an
// empty sequence. Decoding stops at the first invalid envelope.
func Unmarshal(data []byte) ([]domain.Transaction, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []domain.Transaction{}, nil
	}

	var envs []Envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("decode ledger record: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(envs))

	for i, e := range envs {
		t, err := Unwrap(e)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		txs = append(txs, t)
	}

	return txs, nil
}
