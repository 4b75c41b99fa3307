// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package money formats decimal amounts as localized currency strings.
//
// Patterns, separators, grouping and symbols come from the CLDR data in
// github.com/bojanz/currency, keyed by language and region, and amounts stay
// exact decimals up to the rendered string. Locale tags are handled with
// golang.org/x/text/language. When no locale is configured the process
// environment (LC_ALL, LC_MONETARY, LANG) decides.
package money
