package portfolio

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// slideshow.js, highlight.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
