package assets

import (
	"embed"
	"path"

	"github.com/automoto/pixelcam/shared/leveldata"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// LoadLevel parses an embedded TMX level by file name.
func LoadLevel(name string) (*leveldata.World, error) {
	return leveldata.LoadWorld(levelFS, path.Join("levels", name))
}
