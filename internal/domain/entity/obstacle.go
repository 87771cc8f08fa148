package entity

// Collider is the part of the character an obstacle reacts to
type Collider interface {
	BoundingBox() Rect
	PosY() int
	VelocityY() int
	LandOn(y int)
	KnockOut()
}

// Obstacle is anything placed in the scrolling world that reacts to contact with the boy
type Obstacle interface {
	// CheckIntersection may send Land or KnockOut to the collider. It never changes the obstacle.
	CheckIntersection(c Collider)
	Draw(surface Surface)
	MoveHorizontally(dx int)
	// Right returns the rightmost x-extent.
	Right() int
}

// Platform is a landable obstacle made of several sprites and bounding boxes
type Platform struct {
	sheet         *SpriteSheet
	sprites       []Cell
	boundingBoxes []Rect
	position      Point
}

// NewPlatform builds a platform at position. The bounding boxes are relative to
// position and are translated once here; the sprite names must exist in the sheet.
func NewPlatform(sheet *SpriteSheet, position Point, spriteNames []string, boundingBoxes []Rect) *Platform {
	sprites := make([]Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		sprites = append(sprites, sheet.MustCell(name))
	}

	boxes := make([]Rect, 0, len(boundingBoxes))
	for _, box := range boundingBoxes {
		boxes = append(boxes, NewRect(
			box.X()+position.X,
			box.Y()+position.Y,
			box.Width,
			box.Height,
		))
	}

	return &Platform{
		sheet:         sheet,
		sprites:       sprites,
		boundingBoxes: boxes,
		position:      position,
	}
}

// BoundingBoxes returns the platform boxes in stored order
func (p *Platform) BoundingBoxes() []Rect {
	return p.boundingBoxes
}

// Position returns the placement point of the platform
func (p *Platform) Position() Point {
	return p.position
}

// CheckIntersection lands a boy coming down from above onto the first box he touches,
// and knocks him out on any other contact
func (p *Platform) CheckIntersection(c Collider) {
	boyBox := c.BoundingBox()
	for _, box := range p.boundingBoxes {
		if !boyBox.Intersects(box) {
			continue
		}
		if c.VelocityY() > 0 && c.PosY() < p.position.Y {
			c.LandOn(box.Y())
		} else {
			c.KnockOut()
		}
		return
	}
}

// Draw lays the platform sprites out left to right
func (p *Platform) Draw(surface Surface) {
	x := 0
	for _, sprite := range p.sprites {
		p.sheet.Draw(
			surface,
			NewRect(sprite.Frame.X, sprite.Frame.Y, sprite.Frame.W, sprite.Frame.H),
			NewRect(p.position.X+x, p.position.Y, sprite.Frame.W, sprite.Frame.H),
		)
		x += sprite.Frame.W
	}
}

// MoveHorizontally shifts the platform and all of its boxes by dx
func (p *Platform) MoveHorizontally(dx int) {
	p.position.X += dx
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].SetX(p.boundingBoxes[i].X() + dx)
	}
}

// Right returns the right edge of the last bounding box
func (p *Platform) Right() int {
	if len(p.boundingBoxes) == 0 {
		return 0
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}

// Barrier is a single hazardous obstacle; touching it always knocks the boy out
type Barrier struct {
	image Image
}

// NewBarrier creates a barrier from a placed image
func NewBarrier(image Image) *Barrier {
	return &Barrier{image: image}
}

// BoundingBox returns the hazardous area
func (b *Barrier) BoundingBox() Rect {
	return b.image.BoundingBox()
}

// CheckIntersection knocks the boy out on contact
func (b *Barrier) CheckIntersection(c Collider) {
	if c.BoundingBox().Intersects(b.image.BoundingBox()) {
		c.KnockOut()
	}
}

// Draw renders the barrier image
func (b *Barrier) Draw(surface Surface) {
	b.image.Draw(surface)
}

// MoveHorizontally shifts the barrier by dx
func (b *Barrier) MoveHorizontally(dx int) {
	b.image.MoveHorizontally(dx)
}

// Right returns the right edge of the barrier
func (b *Barrier) Right() int {
	return b.image.Right()
}
