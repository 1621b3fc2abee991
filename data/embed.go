// Package data provides embedded game data and utilities for loading it.
package data

import "embed"

// dataFS embeds all INI files from the data directory at build time.
//
//go:embed *.ini
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
func FS() embed.FS {
	return dataFS
}
