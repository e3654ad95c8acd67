// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"context"
	"log"
	"strings"
	"sync"
	"text/template"
)

// templateCache caches compiled templates per unique template text.
var templateCache sync.Map // key: text, value: *template.Template

type Vars map[string]any

// NewUserError creates a new UserError.
func NewUserError(ctx context.Context, msgid string, kv ...any) *UserError {
	return &UserError{
		msgid: Tr(ctx, msgid, kv...),
		kv:    kv,
	}
}

// UserError is an error type whose message is a translated string.
// It is intended for errors that can be shown directly to the end user.
type UserError struct {
	msgid string
	kv    []any
}

// Error returns the translated error message.
func (e *UserError) Error() string {
	return e.msgid
}

// Tr returns the translated string for a source message id (msgid), which should
// be the original English UI text. If key-value pairs are provided, the translation
// is formatted using text/template-style named placeholders.
//
// If a translation is not found, Tr returns the msgid unchanged, or visibly wrapped
// if strict mode is enabled.
func Tr(ctx context.Context, msgid string, kv ...any) string {
	return translate(ctx, "", msgid, "", 0, false, v(kv...))
}

// TrC translates a source message id (msgid) with an explicit disambiguating
// context, similar to gettext's pgettext. If key-value pairs are provided,
// the translation is formatted using named placeholders.
func TrC(ctx context.Context, contextKey, msgid string, kv ...any) string {
	return translate(ctx, contextKey, msgid, "", 0, false, v(kv...))
}

// TrN translates a singular or plural message depending on n. If a translation
// is missing, we choose singular when n == 1, otherwise plural. If key-value pairs
// are provided, the translation is formatted using named placeholders.
func TrN(ctx context.Context, singular, plural string, n int, kv ...any) string {
	return translate(ctx, "", singular, plural, n, true, v(kv...))
}

// translate performs the underlying lookup and formatting.
func translate(
	ctx context.Context,
	contextKey, singular, plural string,
	n int,
	pluralMode bool,
	vars Vars,
) string {
	loc := LocaleFrom(ctx)
	catalog := catalogs[loc]

	// Fallback message
	base := singular
	if pluralMode && n != 1 {
		base = plural
	}

	finalText := base
	found := loc == DefaultLocale

	if catalog != nil {
		switch {
		case pluralMode && contextKey != "":
			found = catalog.IsTranslatedNDC(poDomain, singular, n, contextKey)
			if found {
				finalText = catalog.GetNDC(poDomain, singular, plural, n, contextKey)
			}
		case pluralMode:
			found = catalog.IsTranslatedND(poDomain, singular, n)
			if found {
				finalText = catalog.GetND(poDomain, singular, plural, n)
			}
		case contextKey != "":
			found = catalog.IsTranslatedDC(poDomain, singular, contextKey)
			if found {
				finalText = catalog.GetDC(poDomain, singular, contextKey)
			}
		default:
			found = catalog.IsTranslatedD(poDomain, singular)
			if found {
				// Spread an empty slice so vet's printf check skips the
				// non-constant lookup key; gotext leaves the string
				// unformatted when no vars are given.
				finalText = catalog.GetD(poDomain, singular, []any{}...)
			}
		}
	}

	if !found && strictMissingKeys() {
		logMissingOnce(loc, buildLogKey(contextKey, singular))

		finalText = "⟦" + base + "⟧"
	}

	return render(loc, finalText, vars)
}

// render formats s as a text/template using the provided data.
func render(loc Locale, s string, data Vars) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	key := s

	var tmpl *template.Template
	if t, ok := templateCache.Load(key); ok {
		tmpl = t.(*template.Template)
	} else {
		var err error

		tmpl, err = template.New("msg").Option("missingkey=error").Parse(s)
		if err != nil {
			if strictMissingKeys() {
				return "⟦" + s + "⟧"
			}

			log.Printf("i18n: template parse error for locale %s: %v, text: %q", loc, err, s)

			return s
		}

		templateCache.Store(key, tmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		if strictMissingKeys() {
			return "⟦" + s + "⟧"
		}

		log.Printf("i18n: template execute error for locale %s: %v, text: %q", loc, err, s)

		return s
	}

	return buf.String()
}

// v builds Vars from alternating key, value pairs.
// Panics on programmer error.
func v(kv ...any) Vars {
	if len(kv)%2 != 0 {
		panic("i18n.v: odd number of arguments, want key, value pairs")
	}

	m := make(Vars, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("i18n.v: key must be string")
		}

		m[k] = kv[i+1]
	}

	return m
}
