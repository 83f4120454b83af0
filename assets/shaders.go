package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// CompositeShader draws the pixel camera buffer onto the screen
	CompositeShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/composite.kage")
	if err != nil {
		return err
	}
	CompositeShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}
