package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustPayment(t *testing.T, amount, incoming, outgoing string) *Payment {
	t.Helper()

	p, err := NewPayment("2025-01-01", dec(amount), "payment", dec(incoming), dec(outgoing))
	if err != nil {
		t.Fatalf("NewPayment(%v, %v, %v) returned error: %v", amount, incoming, outgoing, err)
	}

	return p
}

func mustTransfer(t *testing.T, kind Kind, amount string) Transaction {
	t.Helper()

	var (
		tx  Transaction
		err error
	)

	switch kind {
	case KindTransfer:
		tx, err = NewTransfer("2025-01-02", dec(amount), "transfer", "Alice", "Bob")
	case KindIncomingTransfer:
		tx, err = NewIncomingTransfer("2025-01-02", dec(amount), "transfer", "Alice", "Bob")
	case KindOutgoingTransfer:
		tx, err = NewOutgoingTransfer("2025-01-02", dec(amount), "transfer", "Alice", "Bob")
	default:
		t.Fatalf("unexpected kind %v", kind)
	}

	if err != nil {
		t.Fatalf("creating %v(%v) returned error: %v", kind, amount, err)
	}

	return tx
}

func TestContribution(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		tx   func(t *testing.T) Transaction
		want string
	}{
		{
			name: "PaymentDeposit",
			tx:   func(t *testing.T) Transaction { return mustPayment(t, "100", "0.1", "0") },
			want: "90",
		},
		{
			name: "PaymentWithdrawal",
			tx:   func(t *testing.T) Transaction { return mustPayment(t, "-200", "0", "0.05") },
			want: "-210",
		},
		{
			name: "PaymentZero",
			tx:   func(t *testing.T) Transaction { return mustPayment(t, "0", "0.1", "0.1") },
			want: "0",
		},
		{
			name: "Transfer",
			tx:   func(t *testing.T) Transaction { return mustTransfer(t, KindTransfer, "100") },
			want: "100",
		},
		{
			name: "IncomingTransfer",
			tx:   func(t *testing.T) Transaction { return mustTransfer(t, KindIncomingTransfer, "150") },
			want: "150",
		},
		{
			name: "OutgoingTransfer",
			tx:   func(t *testing.T) Transaction { return mustTransfer(t, KindOutgoingTransfer, "75") },
			want: "-75",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := tc.tx(t)

			if got := tx.Contribution(); !got.Equal(dec(tc.want)) {
				t.Errorf("%v.Contribution() = %v, want %v", tx, got, tc.want)
			}
		})
	}
}

func TestConstructionValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewPayment("2025-01-01", dec("-50"), "withdrawal", dec("0"), dec("0")); err != nil {
		t.Errorf("NewPayment with negative amount returned error: %v", err)
	}

	_, err := NewPayment("2025-01-01", dec("50"), "deposit", dec("1.5"), dec("0"))
	if !errors.Is(err, ErrInvalidTransaction) || !errors.Is(err, ErrInvalidRate) {
		t.Errorf("NewPayment with incoming 1.5 returned error %v, want %v and %v", err, ErrInvalidTransaction, ErrInvalidRate)
	}

	if _, err := NewTransfer("2025-01-01", dec("-1"), "t", "a", "b"); !errors.Is(err, ErrInvalidTransaction) {
		t.Errorf("NewTransfer with negative amount returned error %v, want %v", err, ErrInvalidTransaction)
	}

	if _, err := NewIncomingTransfer("2025-01-01", dec("-1"), "t", "a", "b"); !errors.Is(err, ErrInvalidTransaction) {
		t.Errorf("NewIncomingTransfer with negative amount returned error %v, want %v", err, ErrInvalidTransaction)
	}

	if _, err := NewOutgoingTransfer("2025-01-01", dec("-1"), "t", "a", "b"); !errors.Is(err, ErrInvalidTransaction) {
		t.Errorf("NewOutgoingTransfer with negative amount returned error %v, want %v", err, ErrInvalidTransaction)
	}
}

func TestSettersRevalidate(t *testing.T) {
	t.Parallel()

	tr := mustTransfer(t, KindOutgoingTransfer, "10").(*OutgoingTransfer)

	if err := tr.SetAmount(dec("-10")); !errors.Is(err, ErrInvalidTransaction) {
		t.Fatalf("tr.SetAmount(-10) returned error %v, want %v", err, ErrInvalidTransaction)
	}

	if !tr.Amount().Equal(dec("10")) {
		t.Errorf("tr.Amount() = %v after rejected update, want 10", tr.Amount())
	}

	p := mustPayment(t, "10", "0.1", "0.2")

	if err := p.SetOutgoingInterest(dec("1.2")); !errors.Is(err, ErrInvalidTransaction) {
		t.Fatalf("p.SetOutgoingInterest(1.2) returned error %v, want %v", err, ErrInvalidTransaction)
	}

	if !p.OutgoingInterest().Equal(dec("0.2")) {
		t.Errorf("p.OutgoingInterest() = %v after rejected update, want 0.2", p.OutgoingInterest())
	}

	p.SetAmount(dec("-10"))

	if got := p.Contribution(); !got.Equal(dec("-12")) {
		t.Errorf("p.Contribution() = %v, want -12", got)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	transfer := mustTransfer(t, KindTransfer, "100")
	incoming := mustTransfer(t, KindIncomingTransfer, "100")
	outgoing := mustTransfer(t, KindOutgoingTransfer, "100")
	payment := mustPayment(t, "100", "0.1", "0.2")

	testCases := []struct {
		name string
		a, b Transaction
		want bool
	}{
		{name: "SamePayment", a: payment, b: mustPayment(t, "100.00", "0.10", "0.2"), want: true},
		{name: "PaymentOtherRate", a: payment, b: mustPayment(t, "100", "0.1", "0.3"), want: false},
		{name: "PaymentOtherAmount", a: payment, b: mustPayment(t, "101", "0.1", "0.2"), want: false},
		{name: "SameTransfer", a: transfer, b: mustTransfer(t, KindTransfer, "100"), want: true},
		{name: "SameIncoming", a: incoming, b: mustTransfer(t, KindIncomingTransfer, "100"), want: true},
		{name: "SameOutgoing", a: outgoing, b: mustTransfer(t, KindOutgoingTransfer, "100"), want: true},
		{name: "TransferVsIncoming", a: transfer, b: incoming, want: false},
		{name: "IncomingVsTransfer", a: incoming, b: transfer, want: false},
		{name: "IncomingVsOutgoing", a: incoming, b: outgoing, want: false},
		{name: "TransferVsPayment", a: transfer, b: payment, want: false},
		{name: "Nil", a: payment, b: nil, want: false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestOtherSenderIsNotEqual(t *testing.T) {
	t.Parallel()

	a := mustTransfer(t, KindIncomingTransfer, "5").(*IncomingTransfer)
	b := a.Clone().(*IncomingTransfer)

	if !a.Equal(b) {
		t.Fatalf("%v.Equal(clone) = false, want true", a)
	}

	b.SetSender("Carol")

	if a.Equal(b) {
		t.Errorf("%v.Equal(%v) = true, want false", a, b)
	}

	if a.Sender() != "Alice" {
		t.Errorf("changing a clone changed the original sender to %q", a.Sender())
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	p := mustPayment(t, "1000", "0.05", "0.02")
	want := `Payment{date=2025-01-01 amount=1000 description="payment" incomingInterest=0.05 outgoingInterest=0.02 contribution=950}`

	if got := p.String(); got != want {
		t.Errorf("p.String() = %v, want %v", got, want)
	}

	out := mustTransfer(t, KindOutgoingTransfer, "75")
	if got := out.String(); !strings.HasPrefix(got, "OutgoingTransfer{") || !strings.HasSuffix(got, "contribution=-75}") {
		t.Errorf("out.String() = %v", got)
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		tx   Transaction
		want bool
	}{
		{name: "Nil", tx: nil, want: true},
		{name: "NilPayment", tx: (*Payment)(nil), want: true},
		{name: "NilTransfer", tx: (*Transfer)(nil), want: true},
		{name: "NilIncoming", tx: (*IncomingTransfer)(nil), want: true},
		{name: "NilOutgoing", tx: (*OutgoingTransfer)(nil), want: true},
		{name: "Payment", tx: mustPayment(t, "100", "0.1", "0.2"), want: false},
		{name: "Outgoing", tx: mustTransfer(t, KindOutgoingTransfer, "100"), want: false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := IsNil(tc.tx); got != tc.want {
				t.Errorf("IsNil(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}
