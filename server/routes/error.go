// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/request_context"
	"codeberg.org/visagefe/visagefe/server/template"
)

type errorData struct {
	template.CommonData

	StatusCode int
	Message    string
}

// ErrorPage renders an error page.
//
// The status code and error are read from the request context; CatchError
// populates both before calling this.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	rc := request_context.FromRequest(r)

	data := errorData{
		CommonData: template.Common(r),
		StatusCode: rc.StatusCode,
	}

	switch rc.StatusCode {
	case http.StatusNotFound:
		data.Title = i18n.Tr(r.Context(), "Page not found")
		data.Message = i18n.Tr(r.Context(), "The page you are looking for does not exist or has been moved.")
	default:
		data.Title = i18n.Tr(r.Context(), "Something went wrong")
		data.Message = i18n.Tr(r.Context(), "An unexpected error occurred. Please try again later.")
	}

	// User errors carry their own localized message.
	var userErr *i18n.UserError
	if errors.As(rc.RequestError, &userErr) {
		data.Message = userErr.Error()
	}

	if err := template.Render(w, "error", data); err != nil {
		log.Err(err).Msg("Failed to render the error page")
	}
}
