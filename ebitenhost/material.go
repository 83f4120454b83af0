package ebitenhost

import (
	"errors"

	"github.com/automoto/pixelcam/pixelcam"
	"github.com/hajimehoshi/ebiten/v2"
)

// Material samples a Buffer, optionally through a Kage shader.
//
// Only the built-in compositing shader clamps UVs in the fragment stage. An
// override without a shader takes the plain path, which uses clamp-to-zero and
// so loses edge clamping if its UVs leave [0, 1].
type Material struct {
	Name   string
	shader *ebiten.Shader
	tex    *Buffer

	// Uniforms are passed to the shader on every draw.
	Uniforms map[string]any
	// ColorScale tints the quad on the plain (shaderless) path.
	ColorScale ebiten.ColorScale
}

// NewMaterial returns a material drawing through shader. A nil shader draws the
// buffer directly with nearest filtering.
func NewMaterial(name string, shader *ebiten.Shader) *Material {
	m := &Material{Name: name, shader: shader}
	m.ColorScale.Reset()
	return m
}

func (m *Material) SetTexture(b pixelcam.Buffer) {
	buf, _ := b.(*Buffer)
	m.tex = buf
}

func (m *Material) Texture() pixelcam.Buffer {
	if m.tex == nil {
		return nil
	}
	return m.tex
}

// Destroy drops the material's references. The shader is shared and stays alive.
func (m *Material) Destroy() {
	m.tex = nil
	m.shader = nil
}

var errNilShader = errors.New("ebitenhost: compositing shader not loaded")

// Shader is the compositing resource handed to pixelcam.New.
type Shader struct {
	shader *ebiten.Shader
}

// NewShader wraps a compiled shader. s must not be nil.
func NewShader(s *ebiten.Shader) *Shader {
	return &Shader{shader: s}
}

func (s *Shader) NewMaterial() (pixelcam.Material, error) {
	if s == nil || s.shader == nil {
		return nil, errNilShader
	}
	return NewMaterial("pixelcam-fallback", s.shader), nil
}
