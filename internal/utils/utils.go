package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/banky/go-okx-web3/types"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

// NonEmpty wraps value in an option, treating "" as absent.
func NonEmpty(value string) mo.Option[string] {
	if value == "" {
		return mo.None[string]()
	}
	return mo.Some(value)
}

// SetOption adds key to params only when the option holds a value.
func SetOption(params types.Params, key string, value mo.Option[string]) {
	if v, ok := value.Get(); ok {
		params[key] = v
	}
}

// Required returns an error naming every field whose value is empty.
// Fields are given as name, value pairs.
func Required(fields ...string) error {
	if len(fields)%2 != 0 {
		return errors.New("required: fields must be name, value pairs")
	}

	var missing []string
	for i := 0; i < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			missing = append(missing, fields[i])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required parameter(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// JoinList joins list values the way the upstream expects them in a query
// string (comma separated).
func JoinList(values []string) string {
	return strings.Join(values, ",")
}

// ToMinimalUnits scales a human readable amount by 10^decimals. The
// aggregator expects amounts in the token's smallest unit.
// Fails if the amount is negative or has more precision than the token.
func ToMinimalUnits(amount decimal.Decimal, decimals int32) (string, error) {
	if decimals < 0 {
		return "", fmt.Errorf("invalid token decimals: %d", decimals)
	}
	if amount.IsNegative() {
		return "", fmt.Errorf("amount must not be negative: %s", amount)
	}

	scaled := amount.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return "", fmt.Errorf(
			"amount %s has more than %d decimal places",
			amount,
			decimals,
		)
	}

	return scaled.StringFixed(0), nil
}

// FromMinimalUnits converts an amount in smallest units back to a decimal.
func FromMinimalUnits(raw string, decimals int32) (decimal.Decimal, error) {
	if decimals < 0 {
		return decimal.Zero, fmt.Errorf("invalid token decimals: %d", decimals)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return v.Shift(-decimals), nil
}
