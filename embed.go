package portfolio

import "embed"

// PublicAssets contains the static assets served under /public/:
// site.css, site.js (typing and mouse tracker widgets) and icon.svg.
//
//go:embed public/*
var PublicAssets embed.FS
