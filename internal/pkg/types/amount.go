// Package types holds small shared value types used across the bridgewatch
// domain packages.
package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount represents a token amount as a decimal string (e.g. "250.50").
//
// The original string is preserved byte-for-byte: amounts are never
// round-tripped through floating point, and "100.00" stays "100.00" across
// serialization. Arithmetic and scaling go through shopspring/decimal.
type Amount string

// AmountFromString validates the input and returns an Amount if it parses as
// a decimal number.
func AmountFromString(s string) (Amount, error) {
	if err := validateAmount(s); err != nil {
		return "", err
	}
	return Amount(s), nil
}

// validateAmount checks that s is a well-formed, non-negative decimal number.
func validateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid decimal amount %q: %w", s, err)
	}

	if d.IsNegative() {
		return fmt.Errorf("amount %q must not be negative", s)
	}

	return nil
}

// String returns the amount exactly as it was provided.
func (a Amount) String() string {
	return string(a)
}

// IsZero reports whether the amount parses to zero. Malformed amounts are
// treated as zero.
func (a Amount) IsZero() bool {
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return true
	}
	return d.IsZero()
}

// BaseUnits converts the amount into integer base units for a token with the
// given number of decimals (e.g. 6 for USDC: "250.50" -> 250500000). It fails
// if the amount has more fractional digits than the token supports.
func (a Amount) BaseUnits(decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return nil, fmt.Errorf("invalid decimal amount %q: %w", a, err)
	}

	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("amount %q has more than %d decimal places", a, decimals)
	}

	return shifted.BigInt(), nil
}

// MarshalJSON encodes the Amount as a JSON string, preserving its exact form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalJSON parses and validates a JSON-encoded decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid amount string: %w", err)
	}

	if err := validateAmount(s); err != nil {
		return err
	}

	*a = Amount(s)
	return nil
}
