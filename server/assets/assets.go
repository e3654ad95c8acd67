// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the application's embedded content and
static assets: gettext catalogues, the canonical path table, glossary data,
markdown blog content, and HTML templates.
*/
package assets

import (
	"embed"
)

// FS provides access to the embedded file system.
var FS embed.FS
