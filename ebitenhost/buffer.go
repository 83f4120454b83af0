package ebitenhost

import (
	"fmt"

	"github.com/automoto/pixelcam/pixelcam"
	"github.com/hajimehoshi/ebiten/v2"
)

// Buffer is an off-screen ebiten image. It is always sampled nearest and
// clamped.
type Buffer struct {
	Image *ebiten.Image
}

func (b *Buffer) Width() int  { return b.Image.Bounds().Dx() }
func (b *Buffer) Height() int { return b.Image.Bounds().Dy() }

// Buffers allocates Buffers with ebiten.NewImage.
type Buffers struct {
	live int
}

func (p *Buffers) Create(desc pixelcam.BufferDescriptor) (pixelcam.Buffer, error) {
	w, h := desc.Size.Width, desc.Size.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ebitenhost: invalid buffer size %dx%d", w, h)
	}
	p.live++
	return &Buffer{Image: ebiten.NewImage(w, h)}, nil
}

func (p *Buffers) Release(b pixelcam.Buffer) {
	buf, ok := b.(*Buffer)
	if !ok || buf.Image == nil {
		return
	}
	buf.Image.Deallocate()
	buf.Image = nil
	p.live--
}

// Live is the number of buffers created and not yet released.
func (p *Buffers) Live() int { return p.live }
