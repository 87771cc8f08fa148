// Package level builds the terrain segments the world scrolls through.
package level

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/younwookim/runner/internal/domain/entity"
)

// Placement constants, in pixels
const (
	LowPlatform        = 420
	HighPlatform       = 375
	FirstPlatform      = 200
	InitialStoneOffset = 150
	StoneOnGround      = 520
)

// Floating platform composition: three sprites and a left cap, middle span
// and right cap box relative to the platform position.
var (
	FloatingPlatformSprites = []string{"13.png", "14.png", "15.png"}
	FloatingPlatformBoxes   = []entity.Rect{
		entity.NewRect(0, 0, 60, 54),
		entity.NewRect(60, 0, 264, 93),
		entity.NewRect(324, 0, 60, 54),
	}
)

// Segment produces the obstacles of one terrain cluster starting at offset
type Segment func(stone entity.Texture, sheet *entity.SpriteSheet, offset int) []entity.Obstacle

// Segments lists every template the generator picks from
var Segments = []Segment{StoneAndPlatform, PlatformAndStone}

// Validate checks that the tile sheet holds every sprite a segment can use
func Validate(sheet *entity.SpriteSheet) error {
	if err := sheet.Require(FloatingPlatformSprites...); err != nil {
		return fmt.Errorf("tile sheet: %w", err)
	}
	return nil
}

func floatingPlatform(sheet *entity.SpriteSheet, position entity.Point) *entity.Platform {
	return entity.NewPlatform(sheet, position, FloatingPlatformSprites, FloatingPlatformBoxes)
}

// StoneAndPlatform places a stone on the ground followed by a low platform
func StoneAndPlatform(stone entity.Texture, sheet *entity.SpriteSheet, offset int) []entity.Obstacle {
	return []entity.Obstacle{
		entity.NewBarrier(entity.NewImage(stone, entity.Point{X: offset + InitialStoneOffset, Y: StoneOnGround})),
		floatingPlatform(sheet, entity.Point{X: offset + FirstPlatform, Y: LowPlatform}),
	}
}

// PlatformAndStone places a high platform with a stone on the ground beneath its far end
func PlatformAndStone(stone entity.Texture, sheet *entity.SpriteSheet, offset int) []entity.Obstacle {
	return []entity.Obstacle{
		entity.NewBarrier(entity.NewImage(stone, entity.Point{X: offset + FirstPlatform, Y: StoneOnGround})),
		floatingPlatform(sheet, entity.Point{X: offset + InitialStoneOffset, Y: HighPlatform}),
	}
}

// Rightmost returns the largest right edge of the obstacles, or 0 for none
func Rightmost(obstacles []entity.Obstacle) int {
	right := 0
	for i, o := range obstacles {
		if i == 0 || o.Right() > right {
			right = o.Right()
		}
	}
	return right
}

// Generator picks segment templates at random. Each pick is independent of
// the previous ones.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// NewGenerator creates a generator. Seed 0 picks a time based seed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with
func (g *Generator) Seed() int64 {
	return g.seed
}

// Next builds a randomly chosen segment at offset
func (g *Generator) Next(stone entity.Texture, sheet *entity.SpriteSheet, offset int) []entity.Obstacle {
	return Segments[g.rng.Intn(len(Segments))](stone, sheet, offset)
}
