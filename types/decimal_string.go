package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DecimalString is a decimal amount the upstream encodes either as a JSON
// string or as a number.
type DecimalString struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler for DecimalString
func (d *DecimalString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Decimal = decimal.Zero
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == "" {
			d.Decimal = decimal.Zero
			return nil
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		d.Decimal = v
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	v, err := decimal.NewFromString(n.String())
	if err != nil {
		return err
	}
	d.Decimal = v
	return nil
}

// MarshalJSON always encodes as a string so no precision is lost.
func (d DecimalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Decimal.String())
}

func (d DecimalString) Raw() decimal.Decimal {
	return d.Decimal
}
