// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/core/audit"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/request_context"
	"codeberg.org/visagefe/visagefe/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized
// error handling, response buffering, and request logging.
//
// The handler's output is buffered through an httptest.ResponseRecorder.
// After the handler runs:
//   - An i18n.UserError becomes a 400 with the themed error page.
//   - Any other returned error without an HTTP error status already written
//     discards the buffer and renders the generic 500 page.
//   - A buffered 404 is replaced with the themed 404 page.
//   - Everything else is written to the client as buffered.
//
// Finally the completed request is logged through an audit span.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: rc.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
		}

		_ = span.Begin(r.Context())
		defer span.End()

		recorder := httptest.NewRecorder()

		rc.RequestError = handler(recorder, r)

		var userErr *i18n.UserError

		switch {
		case errors.As(rc.RequestError, &userErr):
			rc.StatusCode = http.StatusBadRequest

			w.WriteHeader(rc.StatusCode)
			routes.ErrorPage(w, r)

		case (rc.RequestError != nil && recorder.Code < http.StatusBadRequest) || recorder.Code == http.StatusNotFound:
			if recorder.Code == http.StatusNotFound {
				rc.StatusCode = http.StatusNotFound
			} else {
				rc.StatusCode = http.StatusInternalServerError
			}

			w.WriteHeader(rc.StatusCode)
			routes.ErrorPage(w, r)

		default:
			rc.StatusCode = recorder.Code
			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.StatusCode = rc.StatusCode
		span.Error = rc.RequestError
		span.BodySize = recorder.Body.Len()

		span.Log()
	}
}
