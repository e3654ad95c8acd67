// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/visagefe/visagefe/core/timeline"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/template"
)

type timelineData struct {
	template.CommonData

	Events     []timeline.Event
	Categories []string
}

// TimelinePage renders the facial surgery history timeline.
func TimelinePage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	data := timelineData{
		CommonData: template.Common(r),
		Events:     timeline.Events(),
		Categories: timeline.Categories(),
	}
	data.Title = i18n.Tr(ctx, "Timeline")
	data.Description = i18n.Tr(ctx, "Milestones in the history of facial surgery.")

	return template.Render(w, "timeline", data)
}
