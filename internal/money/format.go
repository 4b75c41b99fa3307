// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package money

import (
	"fmt"
	"strings"

	"github.com/bojanz/currency"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

const (
	// genericCode names an undetermined currency.
	genericCode = "XXX"
	// genericSymbol stands in for its symbol.
	genericSymbol = "¤"
	// genericCarrier is a two-digit currency that carries generic amounts
	// through the CLDR formatter, which has no data for XXX.
	genericCarrier = "USD"
	// maxDigits is the widest coefficient the CLDR formatter rounds exactly.
	maxDigits = 39
)

// Formatter renders amounts in one locale and one currency using the CLDR
// currency pattern of that locale. It is safe for concurrent use.
type Formatter struct {
	locale language.Tag
	code   string
	carry  string
	scale  int
	cldr   *currency.Formatter
}

// NewFormatter builds a Formatter for the given BCP 47 or POSIX locale and
// ISO 4217 currency code. An empty locale is detected from the environment;
// an empty code selects the currency of the locale's region.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag := DetectLocale()
	if locale != "" {
		t, err := ParseLocale(locale)
		if err != nil {
			return nil, err
		}
		tag = t
	}

	code, err := resolveCurrency(tag, code)
	if err != nil {
		return nil, err
	}

	cldr := currency.NewFormatter(cldrLocale(tag))
	cldr.RoundingMode = currency.RoundHalfEven
	f := &Formatter{locale: tag, code: code, carry: code, cldr: cldr}
	if code == genericCode {
		f.carry = genericCarrier
		cldr.SymbolMap[genericCarrier] = genericSymbol
	}
	digits, _ := currency.GetDigits(f.carry)
	f.scale = int(digits)
	cldr.MaxDigits = digits
	return f, nil
}

// cldrLocale keeps language, script and region of tag.
func cldrLocale(tag language.Tag) currency.Locale {
	base, script, region := tag.Raw()
	l := currency.Locale{Language: base.String()}
	if s := script.String(); s != "Zzzz" {
		l.Script = s
	}
	if r := region.String(); r != "ZZ" {
		l.Territory = r
	}
	return l
}

func resolveCurrency(tag language.Tag, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != "" {
		if !currency.IsValid(code) {
			return "", fmt.Errorf("invalid currency %q", code)
		}
		return code, nil
	}
	region, conf := tag.Region()
	if conf == language.No {
		return genericCode, nil
	}
	if c, ok := currency.ForCountryCode(region.String()); ok {
		return c, nil
	}
	return genericCode, nil
}

// Format rounds d half-even to the currency's minor unit and renders it with
// the locale's separators, grouping and currency pattern. The decimal is
// handed over in its exact string form.
func (f *Formatter) Format(d decimal.Decimal) string {
	rounded := d.RoundBank(int32(f.scale))
	if len(rounded.Coefficient().String()) > maxDigits {
		return rounded.StringFixedBank(int32(f.scale)) + " " + f.code
	}
	amount, err := currency.NewAmount(rounded.String(), f.carry)
	if err != nil {
		return rounded.StringFixedBank(int32(f.scale)) + " " + f.code
	}
	return f.cldr.Format(amount)
}

// Locale reports the locale used for separators and symbol lookup.
func (f *Formatter) Locale() language.Tag { return f.locale }

// Currency reports the ISO 4217 code, XXX when none could be determined.
func (f *Formatter) Currency() string { return f.code }

// Scale reports the number of fraction digits rendered.
func (f *Formatter) Scale() int { return f.scale }

// String describes the formatter, e.g. "en-US/USD".
func (f *Formatter) String() string {
	return f.locale.String() + "/" + f.code
}
