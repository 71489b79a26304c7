package staticpress

import "embed"

// EmbeddedAssets contains static assets shipped with the generator:
// style.css (layout and the non-colour utilities the components use) and
// reload.js (dev live reload).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
