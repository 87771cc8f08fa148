// Package render draws the game world with ebiten.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/runner/internal/domain/entity"
)

// ClearColor fills cleared areas
var ClearColor color.Color = colornames.Black

// Texture uploads a decoded image to the GPU
func Texture(img image.Image) entity.Texture {
	return ebiten.NewImageFromImage(img)
}

// Surface draws into an ebiten image
type Surface struct {
	target *ebiten.Image
}

// NewSurface wraps target
func NewSurface(target *ebiten.Image) *Surface {
	return &Surface{target: target}
}

// Clear fills area with ClearColor
func (s *Surface) Clear(area entity.Rect) {
	r := image.Rect(area.X(), area.Y(), area.Right(), area.Bottom()).Intersect(s.target.Bounds())
	if r.Empty() {
		return
	}
	s.target.SubImage(r).(*ebiten.Image).Fill(ClearColor)
}

// DrawImage blits the frame area of texture into destination, scaling when sizes differ.
// The texture must come from Texture.
func (s *Surface) DrawImage(texture entity.Texture, frame entity.Rect, destination entity.Rect) {
	src, ok := texture.(*ebiten.Image)
	if !ok {
		panic(fmt.Sprintf("render: texture %T was not created by render.Texture", texture))
	}
	if frame.Width <= 0 || frame.Height <= 0 {
		return
	}

	sub := src.SubImage(image.Rect(frame.X(), frame.Y(), frame.Right(), frame.Bottom())).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	if destination.Width != frame.Width || destination.Height != frame.Height {
		op.GeoM.Scale(
			float64(destination.Width)/float64(frame.Width),
			float64(destination.Height)/float64(frame.Height),
		)
	}
	op.GeoM.Translate(float64(destination.X()), float64(destination.Y()))
	s.target.DrawImage(sub, op)
}
