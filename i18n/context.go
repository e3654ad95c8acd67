// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"net/http"
	"strings"
)

type contextKeyType struct{}

var localeKey = contextKeyType{}

// LocaleParam is the name of the URL query parameter that the JSON endpoints
// accept as an explicit locale override.
const LocaleParam = "locale"

// WithLocale stores loc in ctx and returns a derived context that carries it.
//
// The returned context should be passed to downstream code that performs
// translations. The ctx must not be nil.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, localeKey, loc)
}

// LocaleFrom returns the locale stored in ctx, or the default locale if none
// is present. It never returns an invalid locale.
func LocaleFrom(ctx context.Context) Locale {
	if ctx != nil {
		if loc, _ := ctx.Value(localeKey).(Locale); loc.Valid() {
			return loc
		}
	}

	return DefaultLocale
}

// FromRequest returns the locale for r, in priority order:
//
//  1. explicit query parameter [LocaleParam], if it names a supported locale
//  2. the URL path's locale prefix (the normal case for page routes)
//  3. Accept-Language negotiation, for API paths only
//
// Page paths never negotiate: an unprefixed path is the default locale's
// page, whatever the browser prefers. API paths carry no locale of their
// own, so a client that sends neither a locale param nor a prefixed Referer
// path still gets answers in its language.
func FromRequest(r *http.Request) Locale {
	if r == nil {
		return DefaultLocale
	}

	if q := Locale(r.URL.Query().Get(LocaleParam)); q.Valid() {
		return q
	}

	if loc := LocaleFromPath(r.URL.Path); loc != DefaultLocale {
		return loc
	}

	if strings.HasPrefix(r.URL.Path, "/api/") {
		return MatchAcceptLanguage(r.Header.Get("Accept-Language"))
	}

	return DefaultLocale
}

// WithRequest resolves the locale from r using [FromRequest] and installs it
// in the returned context. It is equivalent to:
//
//	WithLocale(ctx, FromRequest(r))
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithLocale(ctx, FromRequest(r))
}
