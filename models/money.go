package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount kept as a string to avoid floating-point error.
// JSON input may be a number or a string; both normalize to the string form.
type Money string

func (m *Money) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = Money(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*m = Money(n.String())
	return nil
}

// Valid reports whether the amount parses as a decimal.
func (m Money) Valid() bool {
	if m == "" {
		return false
	}
	_, err := decimal.NewFromString(string(m))
	return err == nil
}

// Decimal parses the amount; invalid or empty amounts count as zero.
func (m Money) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(string(m))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (m Money) String() string {
	return string(m)
}

// orZero returns the amount of an optional money field, defaulting to "0".
func orZero(m *Money) string {
	if m == nil || *m == "" {
		return "0"
	}
	return string(*m)
}

// orNil converts an optional money field to an optional string column.
func orNil(m *Money) *string {
	if m == nil || *m == "" {
		return nil
	}
	s := string(*m)
	return &s
}
