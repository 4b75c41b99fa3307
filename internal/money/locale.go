// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package money

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// fallbackLocale is used when the environment names no usable locale.
var fallbackLocale = language.AmericanEnglish

// localeEnv lists the variables consulted by DetectLocale, highest
// precedence first.
var localeEnv = []string{"LC_ALL", "LC_MONETARY", "LANG"}

// DetectLocale returns the monetary locale of the running process.
func DetectLocale() language.Tag {
	for _, name := range localeEnv {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		tag, err := ParseLocale(v)
		if err != nil {
			continue
		}
		return tag
	}
	return fallbackLocale
}

// ParseLocale accepts BCP 47 tags ("de-DE") as well as POSIX locale names
// ("de_DE.UTF-8", "de_DE@euro"). "C" and "POSIX" map to en-US.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "":
		return language.Und, fmt.Errorf("empty locale")
	case "C", "POSIX":
		return fallbackLocale, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}
