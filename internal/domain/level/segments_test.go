package level

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runner/internal/domain/entity"
)

func createTestTileSheet() *entity.SpriteSheet {
	return entity.NewSpriteSheet(entity.Sheet{Frames: map[string]entity.Cell{
		"13.png": {Frame: entity.SheetRect{X: 0, Y: 0, W: 128, H: 93}},
		"14.png": {Frame: entity.SheetRect{X: 128, Y: 0, W: 128, H: 93}},
		"15.png": {Frame: entity.SheetRect{X: 256, Y: 0, W: 128, H: 93}},
	}}, image.NewRGBA(image.Rect(0, 0, 384, 93)))
}

func createTestStone() entity.Texture {
	return image.NewRGBA(image.Rect(0, 0, 90, 54))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(createTestTileSheet()))

	incomplete := entity.NewSpriteSheet(entity.Sheet{Frames: map[string]entity.Cell{
		"13.png": {},
	}}, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	err := Validate(incomplete)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrMissingFrame))
}

func TestStoneAndPlatform(t *testing.T) {
	obstacles := StoneAndPlatform(createTestStone(), createTestTileSheet(), 1000)
	require.Len(t, obstacles, 2)

	stone, ok := obstacles[0].(*entity.Barrier)
	require.True(t, ok, "first obstacle is the stone")
	assert.Equal(t, entity.NewRect(1150, 520, 90, 54), stone.BoundingBox())

	platform, ok := obstacles[1].(*entity.Platform)
	require.True(t, ok, "second obstacle is the platform")
	assert.Equal(t, entity.Point{X: 1200, Y: LowPlatform}, platform.Position())
	assert.Equal(t, 1200+384, platform.Right())
}

func TestPlatformAndStone(t *testing.T) {
	obstacles := PlatformAndStone(createTestStone(), createTestTileSheet(), 0)
	require.Len(t, obstacles, 2)

	stone, ok := obstacles[0].(*entity.Barrier)
	require.True(t, ok)
	assert.Equal(t, entity.NewRect(200, 520, 90, 54), stone.BoundingBox())

	platform, ok := obstacles[1].(*entity.Platform)
	require.True(t, ok)
	assert.Equal(t, entity.Point{X: 150, Y: HighPlatform}, platform.Position())
	assert.Equal(t, []entity.Rect{
		entity.NewRect(150, 375, 60, 54),
		entity.NewRect(210, 375, 264, 93),
		entity.NewRect(474, 375, 60, 54),
	}, platform.BoundingBoxes())
}

func TestSegmentsDoNotShareBoxes(t *testing.T) {
	sheet := createTestTileSheet()
	first := StoneAndPlatform(createTestStone(), sheet, 0)
	second := StoneAndPlatform(createTestStone(), sheet, 0)

	first[1].MoveHorizontally(-100)

	assert.Equal(t, 584, second[1].Right())
	assert.Equal(t, entity.NewRect(0, 0, 60, 54), FloatingPlatformBoxes[0])
}

func TestRightmost(t *testing.T) {
	assert.Equal(t, 0, Rightmost(nil))

	obstacles := StoneAndPlatform(createTestStone(), createTestTileSheet(), 0)
	assert.Equal(t, 584, Rightmost(obstacles))

	// order does not matter
	reversed := []entity.Obstacle{obstacles[1], obstacles[0]}
	assert.Equal(t, 584, Rightmost(reversed))

	// negative extents are reported as they are
	obstacles[0].MoveHorizontally(-1000)
	obstacles[1].MoveHorizontally(-1000)
	assert.Equal(t, -416, Rightmost(obstacles))
}

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	sheet := createTestTileSheet()
	stone := createTestStone()
	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 50; i++ {
		sa := a.Next(stone, sheet, i*600)
		sb := b.Next(stone, sheet, i*600)
		require.Equal(t, Rightmost(sa), Rightmost(sb), "segment %d", i)
		require.Equal(t, sa[0].Right(), sb[0].Right(), "segment %d", i)
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestGenerator_PicksBothTemplates(t *testing.T) {
	sheet := createTestTileSheet()
	stone := createTestStone()
	g := NewGenerator(7)

	seen := map[int]int{}
	for i := 0; i < 200; i++ {
		segment := g.Next(stone, sheet, 0)
		seen[segment[0].Right()]++
	}

	// stone right edge identifies the template
	assert.Greater(t, seen[150+90], 0, "stone and platform")
	assert.Greater(t, seen[200+90], 0, "platform and stone")
	assert.Len(t, seen, 2)
}

func TestGenerator_ZeroSeedIsRandomized(t *testing.T) {
	g := NewGenerator(0)

	assert.NotZero(t, g.Seed())
}

func TestGenerator_RightmostAheadOfOffset(t *testing.T) {
	sheet := createTestTileSheet()
	stone := createTestStone()
	g := NewGenerator(3)

	offset := 0
	for i := 0; i < 20; i++ {
		segment := g.Next(stone, sheet, offset)
		right := Rightmost(segment)
		assert.Greater(t, right, offset)
		offset = right
	}
}
