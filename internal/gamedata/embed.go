// Package gamedata provides the embedded menu presets and colour theme.
package gamedata

import "embed"

// dataFS holds presets.json and theme.json.
//
//go:embed *.json
var dataFS embed.FS
