package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/runner/internal/application/game"
	"github.com/younwookim/runner/internal/application/scene/walking"
	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/infrastructure/audio"
	"github.com/younwookim/runner/internal/infrastructure/config"
	"github.com/younwookim/runner/internal/infrastructure/render"
)

var (
	flagRecord string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play",
	Long: `Open a window and play.

With --record every frame's input is written to the given file on game over
and on exit. With --watch the config file is watched and changes are applied
when the next game starts.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to this replay file")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on the next new game after it changes")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(flagDebug)

	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		return err
	}

	world, err := loadWorld(flagAssets, tuning, render.Texture)
	if err != nil {
		return err
	}

	opts := walking.Options{
		Tuning:     tuning,
		Seed:       flagSeed,
		Input:      system.NewInputSystem(system.EbitenKeys{}).GetInput,
		Logger:     logger,
		RecordPath: flagRecord,
		Debug:      flagDebug,
	}

	if tuning.Audio.Enabled {
		player := newAudio(flagAssets, tuning, logger)
		defer func() { _ = player.Close() }()
		opts.Sounds = player
		opts.Music = player
	}

	if flagWatch {
		path := flagConfig
		if path == "" {
			path = defaultConfigPath
		}
		watcher, err := config.NewWatcher(path)
		if err != nil {
			logger.Warn("config watch disabled", "path", path, "err", err)
		} else {
			defer func() { _ = watcher.Close() }()
			opts.Tunings = watcher
			logger.Info("watching config", "path", watcher.Path())
		}
	}

	s := walking.New(opts)
	if err := s.Initialize(world); err != nil {
		return err
	}

	g := game.New(s, tuning.Display)
	defer g.Close()

	scale := max(tuning.Display.Scale, 1)
	ebiten.SetWindowSize(tuning.Display.ScreenWidth*scale, tuning.Display.ScreenHeight*scale)
	ebiten.SetWindowTitle(tuning.Display.Title)
	ebiten.SetTPS(tuning.Display.TPS)

	logger.Info("starting", "seed", s.Walk().Seed(), "assets", flagAssets)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// newAudio loads the jump effect and the music. A sound that fails to load
// is skipped with a warning; the game runs silent instead.
func newAudio(dir string, tuning config.TuningConfig, logger *log.Logger) *audio.Player {
	ctx := ebitenaudio.NewContext(tuning.Audio.SampleRate)
	player := audio.NewPlayer(ctx, tuning.Audio.EffectVolume, tuning.Audio.MusicVolume)
	loader := config.NewLoader(dir)

	if data, err := loader.LoadSound(tuning.Assets.JumpSound); err != nil {
		logger.Warn("jump sound unavailable", "err", err)
	} else if err := player.LoadJump(tuning.Assets.JumpSound, data); err != nil {
		logger.Warn("jump sound unavailable", "err", err)
	}

	if data, err := loader.LoadSound(tuning.Assets.Music); err != nil {
		logger.Warn("music unavailable", "err", err)
	} else if err := player.LoadMusic(tuning.Assets.Music, data); err != nil {
		logger.Warn("music unavailable", "err", err)
	}

	return player
}
