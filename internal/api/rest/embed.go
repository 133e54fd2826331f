package rest

import "embed"

// staticFS holds the embedded landing page.
//
//go:embed static/index.html
var staticFS embed.FS
