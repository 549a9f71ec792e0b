// Package assets embeds the default map.
package assets

import _ "embed"

// DefaultMap is a 16x16 CSV map with an open cell at the default spawn (5.1, 5.1).
//
//go:embed map.csv
var DefaultMap []byte
