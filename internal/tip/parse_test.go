// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tip

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseInput(t *testing.T) {
	tests := map[string]string{
		"":           "0",
		"   ":        "0",
		"12":         "12",
		" 12.50 ":    "12.5",
		".5":         "0.5",
		"+3":         "3",
		"abc":        "0",
		"1.2.3":      "0",
		"12,50":      "0",
		"-5":         "0",
		"1e3":        "0",
		"1e99999999": "0",
		"NaN":        "0",
		"Infinity":   "0",
	}
	for in, want := range tests {
		got := ParseInput(in)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParseInput(%q) = %s, want %s", in, got, want)
		}
	}
}
