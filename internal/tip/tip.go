// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tip

import "github.com/shopspring/decimal"

// Formatter renders a tip value as a currency string.
type Formatter interface {
	Format(d decimal.Decimal) string
}

// Input is the raw screen state: the two text fields and the switch.
type Input struct {
	Amount  string
	Percent string
	RoundUp bool
}

// Compute returns tipPercent/100 * amount. With roundUp set the value is
// raised to the next whole currency unit.
func Compute(amount, tipPercent decimal.Decimal, roundUp bool) decimal.Decimal {
	t := tipPercent.Shift(-2).Mul(amount)
	if roundUp {
		t = t.Ceil()
	}
	return t
}

// Calculator pairs Compute with a currency formatter.
type Calculator struct {
	formatter Formatter
}

// NewCalculator returns a Calculator that formats through f.
func NewCalculator(f Formatter) *Calculator {
	return &Calculator{formatter: f}
}

// ComputeTip computes the tip and formats it as currency.
func (c *Calculator) ComputeTip(amount, tipPercent decimal.Decimal, roundUp bool) string {
	return c.formatter.Format(Compute(amount, tipPercent, roundUp))
}

// Evaluate parses the raw field texts and returns the formatted tip.
// Unparsable text counts as zero.
func (c *Calculator) Evaluate(in Input) string {
	return c.ComputeTip(ParseInput(in.Amount), ParseInput(in.Percent), in.RoundUp)
}
