// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"context"
	"net/http"

	"codeberg.org/visagefe/visagefe/config"
	"codeberg.org/visagefe/visagefe/i18n"
)

// CommonData carries the fields every view needs.
//
// Ctx is passed to the translation template functions; the remaining fields
// drive the shared header and footer markup.
type CommonData struct {
	Ctx context.Context

	Locale   i18n.Locale
	HTMLLang string
	OGLocale string

	Title       string
	Description string

	// Path is the request path, used for nav highlighting.
	Path string

	Alternates []i18n.Alternate
	Nav        []i18n.NavLink
	Footer     i18n.FooterLinks

	SiteName string
}

// Common populates CommonData from the request.
//
// Title and Description stay empty; each page fills its own.
func Common(r *http.Request) CommonData {
	ctx := r.Context()
	loc := i18n.LocaleFrom(ctx)

	return CommonData{
		Ctx:        ctx,
		Locale:     loc,
		HTMLLang:   loc.HTMLLang(),
		OGLocale:   loc.OGLocale(),
		Path:       r.URL.Path,
		Alternates: i18n.AlternateURLs(r.URL.Path, config.Global.Site.RawURL),
		Nav:        i18n.NavLinks(loc),
		Footer:     i18n.FooterLinksFor(loc),
		SiteName:   config.Global.Site.Name,
	}
}
