package entity

import (
	"errors"
	"fmt"
	"image"
)

// ErrMissingFrame is returned when a sprite sheet has no entry for a required frame name
var ErrMissingFrame = errors.New("missing sprite frame")

// Texture is an immutable image handle. Both *ebiten.Image and image.Image satisfy it,
// which keeps the domain free of any rendering backend.
type Texture interface {
	Bounds() image.Rectangle
}

// Surface is the drawing target the game renders into
type Surface interface {
	// Clear erases the given area.
	Clear(area Rect)
	// DrawImage blits the frame area of the texture into the destination area.
	DrawImage(texture Texture, frame Rect, destination Rect)
}

// SheetRect is a rectangle as stored in sprite sheet metadata
type SheetRect struct {
	X, Y int
	W, H int
}

// Cell is one named frame of a sprite sheet
type Cell struct {
	Frame            SheetRect
	SpriteSourceSize SheetRect
}

// Sheet maps frame names to cells
type Sheet struct {
	Frames map[string]Cell
}

// SpriteSheet pairs sheet metadata with the texture it describes.
// It is shared by reference between every obstacle built from it and never mutated.
type SpriteSheet struct {
	sheet   Sheet
	texture Texture
}

// NewSpriteSheet creates a sprite sheet
func NewSpriteSheet(sheet Sheet, texture Texture) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, texture: texture}
}

// Cell looks up a frame by name
func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	cell, ok := s.sheet.Frames[name]
	return cell, ok
}

// MustCell looks up a frame that is known to exist.
// A miss means the sheet was not validated with Require and is a programming error.
func (s *SpriteSheet) MustCell(name string) Cell {
	cell, ok := s.Cell(name)
	if !ok {
		panic(fmt.Sprintf("sprite sheet: cell %q not found", name))
	}
	return cell
}

// Require checks that every named frame exists
func (s *SpriteSheet) Require(names ...string) error {
	for _, name := range names {
		if _, ok := s.Cell(name); !ok {
			return fmt.Errorf("%w: %q", ErrMissingFrame, name)
		}
	}
	return nil
}

// Texture returns the image the sheet describes
func (s *SpriteSheet) Texture() Texture {
	return s.texture
}

// Draw blits a source area of the sheet texture to the destination
func (s *SpriteSheet) Draw(surface Surface, source, destination Rect) {
	surface.DrawImage(s.texture, source, destination)
}

// Image is a whole texture placed in the world, like a background or a stone
type Image struct {
	texture     Texture
	position    Point
	boundingBox Rect
}

// NewImage places a texture with its top-left corner at position
func NewImage(texture Texture, position Point) Image {
	size := texture.Bounds().Size()
	return Image{
		texture:     texture,
		position:    position,
		boundingBox: NewRect(position.X, position.Y, size.X, size.Y),
	}
}

// Draw renders the entire texture at the image position
func (i *Image) Draw(surface Surface) {
	size := i.texture.Bounds().Size()
	surface.DrawImage(i.texture, NewRect(0, 0, size.X, size.Y), i.boundingBox)
}

// BoundingBox returns the area covered by the image
func (i *Image) BoundingBox() Rect {
	return i.boundingBox
}

// MoveHorizontally shifts the image by dx
func (i *Image) MoveHorizontally(dx int) {
	i.SetX(i.position.X + dx)
}

// SetX moves the left edge of the image to x
func (i *Image) SetX(x int) {
	i.position.X = x
	i.boundingBox.SetX(x)
}

// Right returns the x-coordinate of the right edge
func (i *Image) Right() int {
	return i.boundingBox.Right()
}
