// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tip

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseInput turns free text from an input field into a non-negative
// decimal. Empty, malformed and negative input all yield zero.
//
// Exponent notation is not accepted: "1e999999999" parses cheaply but
// rounding it would allocate a number with a billion digits.
func ParseInput(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
