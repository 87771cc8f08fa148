package config

import (
	_ "embed"

	"github.com/younwookim/runner/internal/domain/entity"
)

//go:embed defaults/runner.yaml
var defaultTuningYAML []byte

// TuningConfig is the root config for runner.yaml
type TuningConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	World   WorldConfig   `yaml:"world"`
	Assets  AssetsConfig  `yaml:"assets"`
	Audio   AudioConfig   `yaml:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"`
	Title        string `yaml:"title"`
}

// PhysicsConfig mirrors entity.Physics
type PhysicsConfig struct {
	Floor            int `yaml:"floor"`
	Height           int `yaml:"height"`
	StartingPoint    int `yaml:"starting_point"`
	RunningSpeed     int `yaml:"running_speed"`
	JumpSpeed        int `yaml:"jump_speed"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
}

type WorldConfig struct {
	TimelineMinimum int `yaml:"timeline_minimum"` // Look-ahead threshold for segment generation
	ObstacleBuffer  int `yaml:"obstacle_buffer"`  // Gap between the timeline and the next segment
	Nudge           int `yaml:"nudge"`            // Scroll-velocity change per held arrow key
}

// AssetsConfig names the files inside the assets directory
type AssetsConfig struct {
	CharacterSheet string `yaml:"character_sheet"`
	CharacterImage string `yaml:"character_image"`
	TileSheet      string `yaml:"tile_sheet"`
	TileImage      string `yaml:"tile_image"`
	Background     string `yaml:"background"`
	Stone          string `yaml:"stone"`
	JumpSound      string `yaml:"jump_sound"`
	Music          string `yaml:"music"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MusicVolume  float64 `yaml:"music_volume"`
	EffectVolume float64 `yaml:"effect_volume"`
}

// DefaultTuning returns the hardcoded tuning, used when no YAML can be read
func DefaultTuning() TuningConfig {
	p := entity.DefaultPhysics()
	return TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:  600,
			ScreenHeight: 600,
			Scale:        1,
			TPS:          60,
			Title:        "Walk the Dog",
		},
		Physics: PhysicsConfig{
			Floor:            p.Floor,
			Height:           p.Height,
			StartingPoint:    p.StartingPoint,
			RunningSpeed:     p.RunningSpeed,
			JumpSpeed:        p.JumpSpeed,
			Gravity:          p.Gravity,
			TerminalVelocity: p.TerminalVelocity,
		},
		World: WorldConfig{
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
			Nudge:           3,
		},
		Assets: AssetsConfig{
			CharacterSheet: "rhb.json",
			CharacterImage: "rhb.png",
			TileSheet:      "tiles.json",
			TileImage:      "tiles.png",
			Background:     "BG.png",
			Stone:          "Stone.png",
			JumpSound:      "SFX_Jump_23.mp3",
			Music:          "background_song.mp3",
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MusicVolume:  0.1,
			EffectVolume: 1.0,
		},
	}
}

// EntityPhysics converts the physics section for the character simulation
func (c TuningConfig) EntityPhysics() entity.Physics {
	return entity.Physics{
		Floor:            c.Physics.Floor,
		Height:           c.Physics.Height,
		StartingPoint:    c.Physics.StartingPoint,
		RunningSpeed:     c.Physics.RunningSpeed,
		JumpSpeed:        c.Physics.JumpSpeed,
		Gravity:          c.Physics.Gravity,
		TerminalVelocity: c.Physics.TerminalVelocity,
	}
}
