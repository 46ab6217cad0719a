package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// InterestRate holds the incoming and outgoing interest applied to payments.
//
// Both values are fractions in [0, 1]. The zero value is a valid rate of 0/0.
type InterestRate struct {
	incoming decimal.Decimal
	outgoing decimal.Decimal
}

// NewInterestRate returns a validated interest rate.
func NewInterestRate(incoming, outgoing decimal.Decimal) (InterestRate, error) {
	var r InterestRate
	if err := r.Set(incoming, outgoing); err != nil {
		return InterestRate{}, err
	}

	return r, nil
}

// MustInterestRate is like NewInterestRate but panics on invalid input.
// It is meant for constants and tests.
func MustInterestRate(incoming, outgoing float64) InterestRate {
	r, err := NewInterestRate(decimal.NewFromFloat(incoming), decimal.NewFromFloat(outgoing))
	if err != nil {
		panic(err)
	}

	return r
}

func validRate(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(one) {
		return fmt.Errorf("%w: %s %s", ErrInvalidRate, name, v)
	}

	return nil
}

// Incoming returns the interest withheld from deposits.
func (r InterestRate) Incoming() decimal.Decimal { return r.incoming }

// Outgoing returns the interest charged on withdrawals.
func (r InterestRate) Outgoing() decimal.Decimal { return r.outgoing }

// Set replaces both values. Nothing changes if either value is invalid.
func (r *InterestRate) Set(incoming, outgoing decimal.Decimal) error {
	if err := validRate("incoming", incoming); err != nil {
		return err
	}

	if err := validRate("outgoing", outgoing); err != nil {
		return err
	}

	r.incoming, r.outgoing = incoming, outgoing

	return nil
}

// SetIncoming replaces the incoming interest.
func (r *InterestRate) SetIncoming(v decimal.Decimal) error {
	if err := validRate("incoming", v); err != nil {
		return err
	}

	r.incoming = v

	return nil
}

// SetOutgoing replaces the outgoing interest.
func (r *InterestRate) SetOutgoing(v decimal.Decimal) error {
	if err := validRate("outgoing", v); err != nil {
		return err
	}

	r.outgoing = v

	return nil
}

// Equal reports whether both rates hold numerically equal values.
func (r InterestRate) Equal(o InterestRate) bool {
	return r.incoming.Equal(o.incoming) && r.outgoing.Equal(o.outgoing)
}

func (r InterestRate) String() string {
	return fmt.Sprintf("incoming=%s outgoing=%s", r.incoming, r.outgoing)
}
