// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package template renders pages from the embedded view templates.

Views live in assets/views as html/template files sharing one namespace.
Every view receives a data struct embedding CommonData, which carries the
request context the translation functions need.
*/
package template

import (
	"fmt"
	"html/template"
	"net/http"

	"codeberg.org/visagefe/visagefe/config"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/assets"
)

var views *template.Template

// Setup parses all view templates from the embedded filesystem.
func Setup() error {
	funcs := template.FuncMap{
		"tr":            i18n.Tr,
		"trc":           i18n.TrC,
		"trn":           i18n.TrN,
		"localizedPath": i18n.LocalizedPath,
		"translatePath": i18n.TranslatePath,
		"siteName":      func() string { return config.Global.Site.Name },
		"siteURL":       func() string { return config.Global.Site.RawURL },
	}

	parsed, err := template.New("").Funcs(funcs).ParseFS(assets.FS, "assets/views/*.html.tmpl")
	if err != nil {
		return fmt.Errorf("failed to parse view templates: %w", err)
	}

	views = parsed

	return nil
}

// Render executes the named view into the response writer.
func Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := views.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render view %q: %w", name, err)
	}

	return nil
}
