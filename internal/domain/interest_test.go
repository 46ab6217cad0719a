package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewInterestRate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		incoming  string
		outgoing  string
		wantError error
	}{
		{name: "Zero", incoming: "0", outgoing: "0"},
		{name: "One", incoming: "1", outgoing: "1"},
		{name: "Inside", incoming: "0.05", outgoing: "0.02"},
		{name: "NegativeIncoming", incoming: "-0.01", outgoing: "0.02", wantError: ErrInvalidRate},
		{name: "IncomingAboveOne", incoming: "1.0001", outgoing: "0.02", wantError: ErrInvalidRate},
		{name: "NegativeOutgoing", incoming: "0.05", outgoing: "-1", wantError: ErrInvalidRate},
		{name: "OutgoingAboveOne", incoming: "0.05", outgoing: "2", wantError: ErrInvalidRate},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			incoming := decimal.RequireFromString(tc.incoming)
			outgoing := decimal.RequireFromString(tc.outgoing)

			got, err := NewInterestRate(incoming, outgoing)
			if !errors.Is(err, tc.wantError) {
				t.Fatalf("NewInterestRate(%v, %v) returned error %v, want %v", incoming, outgoing, err, tc.wantError)
			}

			if tc.wantError != nil {
				return
			}

			if !got.Incoming().Equal(incoming) || !got.Outgoing().Equal(outgoing) {
				t.Errorf("NewInterestRate(%v, %v) = %v", incoming, outgoing, got)
			}
		})
	}
}

func TestInterestRateSettersAreAtomic(t *testing.T) {
	t.Parallel()

	r := MustInterestRate(0.05, 0.02)
	want := r

	if err := r.Set(decimal.NewFromFloat(0.5), decimal.NewFromFloat(1.5)); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("r.Set(0.5, 1.5) returned error %v, want %v", err, ErrInvalidRate)
	}

	if !r.Equal(want) {
		t.Errorf("r.Set(0.5, 1.5) mutated rate to %v, want %v", r, want)
	}

	if err := r.SetIncoming(decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("r.SetIncoming(-1) returned error %v, want %v", err, ErrInvalidRate)
	}

	if err := r.SetOutgoing(decimal.NewFromInt(3)); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("r.SetOutgoing(3) returned error %v, want %v", err, ErrInvalidRate)
	}

	if !r.Equal(want) {
		t.Errorf("failed setters mutated rate to %v, want %v", r, want)
	}

	if err := r.SetIncoming(decimal.NewFromFloat(0.1)); err != nil {
		t.Fatalf("r.SetIncoming(0.1) returned error: %v", err)
	}

	if !r.Incoming().Equal(decimal.NewFromFloat(0.1)) || !r.Outgoing().Equal(want.Outgoing()) {
		t.Errorf("r.SetIncoming(0.1) = %v", r)
	}
}
