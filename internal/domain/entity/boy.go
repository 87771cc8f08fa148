package entity

import "fmt"

// Bounding box trim applied to the sprite destination box
const (
	boxXOffset     = 18
	boxYOffset     = 14
	boxWidthOffset = 28
)

// Sounds plays the character's sound effects. A nil Sounds is silent.
type Sounds interface {
	PlayJump()
}

// RedHatBoy is the playable character
type RedHatBoy struct {
	state   BoyState
	sheet   *SpriteSheet
	physics Physics
	sounds  Sounds
}

// NewRedHatBoy creates an idle boy. It fails if the sheet lacks any frame
// the state machine can reach, so that drawing never misses a sprite later.
func NewRedHatBoy(sheet *SpriteSheet, p Physics, sounds Sounds) (*RedHatBoy, error) {
	if err := sheet.Require(reachableFrames()...); err != nil {
		return nil, fmt.Errorf("character sheet: %w", err)
	}
	return &RedHatBoy{
		state:   NewBoyState(p),
		sheet:   sheet,
		physics: p,
		sounds:  sounds,
	}, nil
}

// reachableFrames lists every frame name any state can display
func reachableFrames() []string {
	seen := make(map[string]struct{})
	var names []string
	for kind := StateIdle; kind <= StateKnockedOut; kind++ {
		anim := Animations[kind]
		for frame := 0; frame <= anim.Frames; frame++ {
			name := BoyState{Kind: kind, Context: Context{Frame: frame}}.FrameName()
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Reset returns a fresh idle boy sharing this boy's sheet, physics and sounds
func (b *RedHatBoy) Reset() *RedHatBoy {
	return b.ResetWith(b.physics)
}

// ResetWith is Reset with new physics tuning
func (b *RedHatBoy) ResetWith(p Physics) *RedHatBoy {
	return &RedHatBoy{
		state:   NewBoyState(p),
		sheet:   b.sheet,
		physics: p,
		sounds:  b.sounds,
	}
}

// Physics returns the tuning the boy simulates with
func (b *RedHatBoy) Physics() Physics {
	return b.physics
}

func (b *RedHatBoy) transition(e Event) {
	b.state = b.state.Transition(e, b.physics)
}

// Update advances the boy by one frame
func (b *RedHatBoy) Update() {
	b.transition(Update)
}

// RunRight starts running
func (b *RedHatBoy) RunRight() {
	b.transition(Run)
}

// Slide starts a slide
func (b *RedHatBoy) Slide() {
	b.transition(Slide)
}

// Jump starts a jump and plays the jump sound when the jump actually begins
func (b *RedHatBoy) Jump() {
	before := b.state.Kind
	b.transition(Jump)
	if before == StateRunning && b.state.Kind == StateJumping && b.sounds != nil {
		b.sounds.PlayJump()
	}
}

// LandOn lands the boy on a surface whose top is at y
func (b *RedHatBoy) LandOn(y int) {
	b.transition(Land(y))
}

// KnockOut knocks the boy over
func (b *RedHatBoy) KnockOut() {
	b.transition(KnockOut)
}

// State returns the current state
func (b *RedHatBoy) State() BoyState {
	return b.state
}

// KnockedOut reports whether the boy reached the terminal state
func (b *RedHatBoy) KnockedOut() bool {
	return b.state.Kind == StateKnockedOut
}

// PosY returns the vertical position
func (b *RedHatBoy) PosY() int {
	return b.state.Context.Position.Y
}

// VelocityY returns the vertical velocity (positive = descending)
func (b *RedHatBoy) VelocityY() int {
	return b.state.Context.Velocity.Y
}

// WalkingSpeed returns the horizontal velocity
func (b *RedHatBoy) WalkingSpeed() int {
	return b.state.Context.Velocity.X
}

// FrameName returns the name of the sprite currently displayed
func (b *RedHatBoy) FrameName() string {
	return b.state.FrameName()
}

func (b *RedHatBoy) currentSprite() Cell {
	return b.sheet.MustCell(b.FrameName())
}

// destinationBox is where the current sprite is drawn
func (b *RedHatBoy) destinationBox() Rect {
	sprite := b.currentSprite()
	pos := b.state.Context.Position
	return NewRect(
		pos.X+sprite.SpriteSourceSize.X,
		pos.Y+sprite.SpriteSourceSize.Y,
		sprite.Frame.W,
		sprite.Frame.H,
	)
}

// BoundingBox returns the collision box: the sprite box trimmed of its transparent margins
func (b *RedHatBoy) BoundingBox() Rect {
	box := b.destinationBox()
	box.SetX(box.X() + boxXOffset)
	box.Width -= boxWidthOffset
	box.SetY(box.Y() + boxYOffset)
	box.Height -= boxYOffset
	return box
}

// Draw renders the current sprite
func (b *RedHatBoy) Draw(surface Surface) {
	sprite := b.currentSprite()
	b.sheet.Draw(
		surface,
		NewRect(sprite.Frame.X, sprite.Frame.Y, sprite.Frame.W, sprite.Frame.H),
		b.destinationBox(),
	)
}
