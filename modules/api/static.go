package api

import "embed"

// webFS holds the embedded single-page browser client.
//
//go:embed web
var webFS embed.FS
