// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated UI strings. It uses go-i18n to load
// the YAML message files embedded from the locales directory.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded message file and selects lang. Unknown
// languages fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
	current = lang
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied fmt-style to the translated text. Missing
// IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	lc := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			lc.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(lc)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// GetAvailableLocales maps each embedded language code to its name in that
// language, e.g. "de" -> "Deutsch".
func GetAvailableLocales() map[string]string {
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		name := display.Self.Name(tag)
		if name == "" {
			name = code
		}
		out[code] = name
	}
	return out
}

// Languages returns the embedded language codes in sorted order.
func Languages() []string {
	av := GetAvailableLocales()
	codes := make([]string, 0, len(av))
	for code := range av {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
