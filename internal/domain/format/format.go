// Package format holds the pure field formatters applied to payment fields
// before they are placed on the provider wire.
package format

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount renders a minor-unit amount as a fixed 2-decimal string ("1050" or
// 1050 -> "10.50"). Anything non-numeric yields "0.00".
func Amount(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return "0.00"
	}
	return strconv.FormatFloat(f/100, 'f', 2, 64)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// OrderID strips every character outside [A-Za-z0-9-] and caps the result at
// 64 characters. Empty input passes through unchanged.
func OrderID(raw string) string {
	if raw == "" {
		return raw
	}
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
		if b.Len() == 64 {
			break
		}
	}
	return b.String()
}

// CardOwner collapses whitespace runs and title-cases each token: first rune
// upper, remainder lower. Hyphens are not word boundaries ("MARY-ANN smith"
// -> "Mary-ann Smith").
func CardOwner(raw string) string {
	tokens := strings.Fields(raw)
	for i, tok := range tokens {
		r := []rune(strings.ToLower(tok))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		tokens[i] = string(r)
	}
	return strings.Join(tokens, " ")
}

// CardNumber strips all whitespace from a card number.
func CardNumber(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}
