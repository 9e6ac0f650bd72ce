// Package assets embeds the content shipped with the game.
package assets

import (
	"embed"
)

//go:embed all:levels
var levelFS embed.FS

// LevelFS returns the embedded level maps.
func LevelFS() embed.FS {
	return levelFS
}
