package repository

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func decimalToString(v decimal.Decimal) string {
	return v.String()
}

// decimalFromString parses a stored money/meters attribute. An absent
// attribute unmarshals to the empty string and reads as zero; anything
// else must parse — a stored amount that cannot be read back is a
// data-integrity error, not a zero.
func decimalFromString(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("corrupt decimal attribute %q: %w", s, err)
	}
	return d, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
