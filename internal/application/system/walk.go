package system

import (
	"fmt"
	"slices"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/domain/level"
)

// WalkConfig holds the world tuning
type WalkConfig struct {
	TimelineMinimum int         // Generate a new segment while the timeline is below this
	ObstacleBuffer  int         // Gap between the timeline and the next segment
	Nudge           int         // Scroll-velocity change per held arrow key
	ClearArea       entity.Rect // Area erased before every draw
}

// DefaultWalkConfig returns the stock world tuning
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		TimelineMinimum: 1000,
		ObstacleBuffer:  20,
		Nudge:           3,
		ClearArea:       entity.NewRect(0, 0, 600, 570),
	}
}

// WorldAssets are the loaded sheets and textures a walk is built from.
// They are shared by every obstacle and never mutated.
type WorldAssets struct {
	CharacterSheet *entity.SpriteSheet
	TileSheet      *entity.SpriteSheet
	Background     entity.Texture
	Stone          entity.Texture
}

// Walk is the scrolling world: the boy, the looping background, the obstacles
// and the generation timeline
type Walk struct {
	boy         *entity.RedHatBoy
	backgrounds [2]entity.Image
	obstacles   []entity.Obstacle
	assets      WorldAssets
	generator   *level.Generator
	config      WalkConfig

	timeline int
	velocity int
	nudge    entity.Point
	distance int
}

// NewWalk validates the assets and builds the starting world
func NewWalk(assets WorldAssets, p entity.Physics, cfg WalkConfig, generator *level.Generator, sounds entity.Sounds) (*Walk, error) {
	if err := level.Validate(assets.TileSheet); err != nil {
		return nil, err
	}
	boy, err := entity.NewRedHatBoy(assets.CharacterSheet, p, sounds)
	if err != nil {
		return nil, fmt.Errorf("failed to create boy: %w", err)
	}
	return newWalk(boy, assets, cfg, generator), nil
}

func newWalk(boy *entity.RedHatBoy, assets WorldAssets, cfg WalkConfig, generator *level.Generator) *Walk {
	bgWidth := assets.Background.Bounds().Dx()
	obstacles := level.StoneAndPlatform(assets.Stone, assets.TileSheet, 0)

	return &Walk{
		boy: boy,
		backgrounds: [2]entity.Image{
			entity.NewImage(assets.Background, entity.Point{X: 0, Y: 0}),
			entity.NewImage(assets.Background, entity.Point{X: bgWidth, Y: 0}),
		},
		obstacles: obstacles,
		assets:    assets,
		generator: generator,
		config:    cfg,
		timeline:  level.Rightmost(obstacles),
	}
}

// Reset returns a fresh world with an idle boy, sharing assets and generator
func (w *Walk) Reset() *Walk {
	return newWalk(w.boy.Reset(), w.assets, w.config, w.generator)
}

// ResetWith is Reset with new tuning
func (w *Walk) ResetWith(p entity.Physics, cfg WalkConfig) *Walk {
	return newWalk(w.boy.ResetWith(p), w.assets, cfg, w.generator)
}

// Update advances the world by one frame
func (w *Walk) Update(input InputState) {
	w.applyInput(input)
	w.boy.Update()

	w.velocity = -w.boy.WalkingSpeed()
	w.distance -= w.velocity

	w.scrollBackgrounds()

	w.obstacles = pruneObstacles(w.obstacles)
	for _, obstacle := range w.obstacles {
		obstacle.MoveHorizontally(w.velocity)
		obstacle.CheckIntersection(w.boy)
	}

	if w.timeline < w.config.TimelineMinimum {
		next := w.generator.Next(w.assets.Stone, w.assets.TileSheet, w.timeline+w.config.ObstacleBuffer)
		w.timeline = level.Rightmost(next)
		w.obstacles = append(w.obstacles, next...)
	} else {
		w.timeline += w.velocity
	}
}

// applyInput translates held keys into boy events. Up, Left and Right only
// nudge the scroll request; the authoritative scroll speed comes from the boy.
func (w *Walk) applyInput(input InputState) {
	w.nudge = entity.Point{}
	if input.Down {
		w.boy.Slide()
	}
	if input.Up {
		w.nudge.Y -= w.config.Nudge
	}
	if input.Right {
		w.nudge.X += w.config.Nudge
		w.boy.RunRight()
	}
	if input.Left {
		w.nudge.X -= w.config.Nudge
	}
	if input.Space {
		w.boy.Jump()
	}
}

func (w *Walk) scrollBackgrounds() {
	first, second := &w.backgrounds[0], &w.backgrounds[1]
	first.MoveHorizontally(w.velocity)
	second.MoveHorizontally(w.velocity)

	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}
}

// pruneObstacles drops every obstacle that has scrolled fully off the left edge
func pruneObstacles(obstacles []entity.Obstacle) []entity.Obstacle {
	return slices.DeleteFunc(obstacles, func(o entity.Obstacle) bool {
		return o.Right() <= 0
	})
}

// Draw clears the canvas and renders backgrounds, boy and obstacles
func (w *Walk) Draw(surface entity.Surface) {
	surface.Clear(w.config.ClearArea)
	for i := range w.backgrounds {
		w.backgrounds[i].Draw(surface)
	}
	w.boy.Draw(surface)
	for _, obstacle := range w.obstacles {
		obstacle.Draw(surface)
	}
}

// Boy returns the character
func (w *Walk) Boy() *entity.RedHatBoy {
	return w.boy
}

// KnockedOut reports whether the run is over
func (w *Walk) KnockedOut() bool {
	return w.boy.KnockedOut()
}

// Obstacles returns the live obstacles in generation order
func (w *Walk) Obstacles() []entity.Obstacle {
	return w.obstacles
}

// Timeline returns the rightmost extent of generated terrain
func (w *Walk) Timeline() int {
	return w.timeline
}

// Velocity returns the scroll velocity of the last update
func (w *Walk) Velocity() int {
	return w.velocity
}

// Nudge returns the scroll request made by the arrow keys in the last update
func (w *Walk) Nudge() entity.Point {
	return w.nudge
}

// Distance returns how many pixels the world has scrolled
func (w *Walk) Distance() int {
	return w.distance
}

// Backgrounds returns the bounding boxes of the two background tiles
func (w *Walk) Backgrounds() [2]entity.Rect {
	return [2]entity.Rect{w.backgrounds[0].BoundingBox(), w.backgrounds[1].BoundingBox()}
}

// Seed returns the seed of the segment generator
func (w *Walk) Seed() int64 {
	return w.generator.Seed()
}
