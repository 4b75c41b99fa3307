// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	if av["en"] != "English" {
		t.Fatalf("unexpected display name for en: %q", av["en"])
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}

	langs := Languages()
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Fatalf("unexpected languages: %v", langs)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("screen.title"); got != "Calculate Tip" {
		t.Fatalf("expected 'Calculate Tip', got %q", got)
	}
	if got := T("screen.tip_amount", "$9.00"); got != "Tip Amount: $9.00" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	Init("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("screen.round_up"); got != "Trinkgeld aufrunden?" {
		t.Fatalf("expected German text, got %q", got)
	}
	if got := T("screen.tip_amount", "9,00 €"); got != "Trinkgeld: 9,00 €" {
		t.Fatalf("unexpected German formatted translation: %q", got)
	}
}

func TestT_FallbacksAndMissingIDs(t *testing.T) {
	Init("fr")
	defer Init("en")

	if got := T("screen.bill_amount"); got != "Bill Amount" {
		t.Fatalf("expected English fallback for unknown language, got %q", got)
	}
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected message ID echoed back, got %q", got)
	}
}

func TestLocaleFiles_ResolveAllKeys(t *testing.T) {
	en := []string{
		"screen.title", "screen.bill_amount", "screen.tip_percentage", "screen.round_up",
		"screen.tip_amount", "screen.switch_on", "screen.switch_off", "screen.copied",
		"screen.copy_failed", "keys.next", "keys.prev", "keys.toggle", "keys.copy",
		"keys.help", "keys.quit", "cli.no_terminal", "cli.config_written",
	}
	for _, lang := range Languages() {
		Init(lang)
		for _, id := range en {
			if T(id) == id {
				t.Fatalf("language %s is missing %s", lang, id)
			}
		}
	}
	Init("en")
}
