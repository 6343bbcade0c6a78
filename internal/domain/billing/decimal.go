package billing

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses an untrusted decimal string such as "60.00", " 45 " or "$1,250.50".
// It reports false for empty or malformed input.
func ParseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDecimalOrZero is ParseDecimal for optional fields, yielding zero when absent or invalid.
func ParseDecimalOrZero(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	d, ok := ParseDecimal(*raw)
	if !ok {
		return decimal.Zero
	}
	return d
}

// FormatUSD renders an amount the way the console displays money, e.g. "$45.00".
func FormatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// coerceJSONAmount accepts a JSON number or a JSON string holding a decimal.
// Anything else (null, bool, object, array, bad text) is reported as unresolvable.
func coerceJSONAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, false
	}

	if s[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, false
		}
		return ParseDecimal(text)
	}

	if s[0] == '-' || (s[0] >= '0' && s[0] <= '9') {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}

	return decimal.Zero, false
}

// nonNegative drops negative amounts, which never describe a valid price.
func nonNegative(d decimal.Decimal, ok bool) (decimal.Decimal, bool) {
	if !ok || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}
