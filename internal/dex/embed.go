package dex

import "embed"

// FS embeds the reference data files at build time.
//
//go:embed data/*.yaml
var FS embed.FS
