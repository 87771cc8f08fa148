package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

func TestLoadSheet(t *testing.T) {
	cfg := &config.SheetConfig{
		Frames: map[string]config.CellConfig{
			"Run (1).png": {
				Frame:            config.RectConfig{X: 10, Y: 20, W: 117, H: 120},
				SpriteSourceSize: config.RectConfig{X: 3, Y: 4, W: 117, H: 120},
			},
			"13.png": {
				Frame: config.RectConfig{X: 0, Y: 0, W: 128, H: 93},
			},
		},
	}
	texture := createTestTexture(200, 200)

	sheet := LoadSheet(cfg, texture)

	require.NotNil(t, sheet)
	assert.Same(t, texture, sheet.Texture())

	run, ok := sheet.Cell("Run (1).png")
	require.True(t, ok)
	assert.Equal(t, entity.SheetRect{X: 10, Y: 20, W: 117, H: 120}, run.Frame)
	assert.Equal(t, entity.SheetRect{X: 3, Y: 4, W: 117, H: 120}, run.SpriteSourceSize)

	tile, ok := sheet.Cell("13.png")
	require.True(t, ok)
	assert.Equal(t, entity.SheetRect{}, tile.SpriteSourceSize)

	_, ok = sheet.Cell("14.png")
	assert.False(t, ok)
}

func TestLoadWorldAssets(t *testing.T) {
	assets := &config.Assets{
		CharacterSheet: &config.SheetConfig{Frames: map[string]config.CellConfig{"Idle (1).png": {}}},
		CharacterImage: image.NewRGBA(image.Rect(0, 0, 10, 10)),
		TileSheet:      &config.SheetConfig{Frames: map[string]config.CellConfig{"13.png": {}}},
		TileImage:      image.NewRGBA(image.Rect(0, 0, 20, 20)),
		Background:     image.NewRGBA(image.Rect(0, 0, 30, 30)),
		Stone:          image.NewRGBA(image.Rect(0, 0, 40, 40)),
	}

	converted := 0
	world := LoadWorldAssets(assets, func(img image.Image) entity.Texture {
		converted++
		return ImageTexture(img)
	})

	assert.Equal(t, 4, converted)
	assert.Equal(t, 10, world.CharacterSheet.Texture().Bounds().Dx())
	assert.Equal(t, 20, world.TileSheet.Texture().Bounds().Dx())
	assert.Equal(t, 30, world.Background.Bounds().Dx())
	assert.Equal(t, 40, world.Stone.Bounds().Dx())
	_, ok := world.TileSheet.Cell("13.png")
	assert.True(t, ok)
}

func TestLoadWalkConfig(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.World.TimelineMinimum = 1200
	tuning.Display.ScreenWidth = 800

	cfg := LoadWalkConfig(tuning)

	assert.Equal(t, 1200, cfg.TimelineMinimum)
	assert.Equal(t, 20, cfg.ObstacleBuffer)
	assert.Equal(t, 3, cfg.Nudge)
	assert.Equal(t, entity.NewRect(0, 0, 800, 570), cfg.ClearArea)
	assert.Equal(t, DefaultWalkConfig(), LoadWalkConfig(config.DefaultTuning()))
}
