// Package walking provides the endless-runner gameplay scene.
package walking

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/runner/internal/application/scene"
	"github.com/younwookim/runner/internal/application/state"
	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/domain/level"
	"github.com/younwookim/runner/internal/infrastructure/config"
	"github.com/younwookim/runner/internal/infrastructure/render"
)

// ErrAlreadyInitialized is returned by a second Initialize call
var ErrAlreadyInitialized = errors.New("walking: scene already initialized")

// ErrNotInitialized is returned by Update before Initialize succeeded
var ErrNotInitialized = errors.New("walking: scene not initialized")

var colorGameOver = color.RGBA{0, 0, 0, 160}

// Music is the looping background track
type Music interface {
	PlayMusic()
}

// TuningSource reports tuning changes made since the last poll
type TuningSource interface {
	Poll() (config.TuningConfig, bool, error)
}

// Options configure a walking scene
type Options struct {
	Tuning     config.TuningConfig
	Seed       int64                    // Segment generator seed; 0 picks one from the clock
	Input      func() system.InputState // Sampled once per Update
	Sounds     entity.Sounds
	Music      Music
	Logger     *log.Logger
	RecordPath string       // Non-empty enables input recording
	Tunings    TuningSource // Polled when a new game starts
	Headless   bool         // Skip the ebitenui overlay
	Debug      bool
}

// Scene runs Ready, Walking and GameOver over one Walk
type Scene struct {
	opts   Options
	tuning config.TuningConfig
	logger *log.Logger

	state     state.GameState
	walk      *system.Walk
	generator *level.Generator

	recorder *Recorder
	ui       *ebitenui.UI
	face     text.Face
	clicked  bool
}

// New creates a scene. Initialize must be called before the first Update.
func New(opts Options) *Scene {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Input == nil {
		opts.Input = func() system.InputState { return system.InputState{} }
	}

	s := &Scene{
		opts:      opts,
		tuning:    opts.Tuning,
		logger:    logger,
		state:     state.StateReady,
		generator: level.NewGenerator(opts.Seed),
		face:      text.NewGoXFace(basicfont.Face7x13),
	}

	if opts.RecordPath != "" {
		s.recorder = NewRecorder(s.generator.Seed())
		logger.Info("recording enabled", "path", opts.RecordPath, "seed", s.generator.Seed())
	}
	if !opts.Headless {
		s.ui = newGameOverUI(s.face, s.opts.Tuning.Display, func() { s.clicked = true })
	}
	return s
}

// Initialize builds the world from loaded assets
func (s *Scene) Initialize(assets system.WorldAssets) error {
	if s.walk != nil {
		return ErrAlreadyInitialized
	}
	walk, err := system.NewWalk(assets, s.tuning.EntityPhysics(), system.LoadWalkConfig(s.tuning), s.generator, s.opts.Sounds)
	if err != nil {
		return fmt.Errorf("failed to initialize walk: %w", err)
	}
	s.walk = walk
	s.logger.Debug("walk initialized", "seed", s.generator.Seed(), "timeline", walk.Timeline())
	return nil
}

// Update samples input and advances one frame (implements scene.Scene)
func (s *Scene) Update(_ float64) (scene.Scene, error) {
	if s.walk == nil {
		return nil, ErrNotInitialized
	}
	if s.state == state.StateGameOver && s.ui != nil {
		s.ui.Update()
	}

	in := s.opts.Input()
	if s.clicked {
		in.Enter = true
		s.clicked = false
	}
	s.Step(in)
	return nil, nil
}

// Step advances the scene by one frame with the given input
func (s *Scene) Step(in system.InputState) {
	if s.walk == nil {
		return
	}
	if s.recorder != nil {
		s.recorder.RecordFrame(in)
	}

	switch s.state {
	case state.StateReady:
		s.walk.Boy().Update()
		if in.Right {
			s.walk.Boy().RunRight()
			s.state = state.StateWalking
			s.logger.Debug("walking")
		}
	case state.StateWalking:
		s.walk.Update(in)
		if s.walk.KnockedOut() {
			s.state = state.StateGameOver
			s.logger.Info("game over", "distance", s.walk.Distance())
			s.saveRecording()
		}
	case state.StateGameOver:
		if in.Enter {
			s.newGame()
		}
	}
}

// newGame reloads tuning when it changed on disk and resets the world
func (s *Scene) newGame() {
	if s.opts.Tunings != nil {
		cfg, changed, err := s.opts.Tunings.Poll()
		switch {
		case err != nil:
			s.logger.Warn("failed to reload tuning", "err", err)
		case changed:
			s.tuning = cfg
			s.logger.Info("tuning reloaded")
		}
	}

	s.walk = s.walk.ResetWith(s.tuning.EntityPhysics(), system.LoadWalkConfig(s.tuning))
	s.state = state.StateReady
	s.logger.Debug("new game")
}

// saveRecording saves the current recording to file
func (s *Scene) saveRecording() {
	if s.recorder == nil || s.recorder.FrameCount() == 0 {
		return
	}

	filename := s.opts.RecordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := s.recorder.Save(filename); err != nil {
		s.logger.Error("failed to save recording", "err", err)
		return
	}
	s.logger.Info("recording saved", "path", filename, "frames", s.recorder.FrameCount())
}

// Draw renders the world, the HUD and the game-over overlay
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.walk == nil {
		return
	}
	s.walk.Draw(render.NewSurface(screen))
	s.drawHUD(screen)

	if s.state == state.StateGameOver {
		s.drawGameOverOverlay(screen)
	}
}

func (s *Scene) drawHUD(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, fmt.Sprintf("Distance: %d", s.walk.Distance()), s.face, op)

	if s.opts.Debug {
		debug := fmt.Sprintf("%s | boy %s | velocity %d | timeline %d | obstacles %d | seed %d",
			s.state, s.walk.Boy().State(), s.walk.Velocity(), s.walk.Timeline(), len(s.walk.Obstacles()), s.walk.Seed())
		ebitenutil.DebugPrintAt(screen, debug, 10, 30)
	}
}

func (s *Scene) drawGameOverOverlay(screen *ebiten.Image) {
	w, h := s.tuning.Display.ScreenWidth, s.tuning.Display.ScreenHeight
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorGameOver)

	if s.ui != nil {
		s.ui.Draw(screen)
		return
	}
	ebitenutil.DebugPrintAt(screen, "GAME OVER\n\nPress Enter for a new game", w/2-80, h/2-20)
}

// OnEnter starts the background music
func (s *Scene) OnEnter() {
	if s.opts.Music != nil {
		s.opts.Music.PlayMusic()
	}
}

// OnExit saves the recording
func (s *Scene) OnExit() {
	s.saveRecording()
}

// State returns the current scene state
func (s *Scene) State() state.GameState {
	return s.state
}

// Walk returns the world, nil before Initialize
func (s *Scene) Walk() *system.Walk {
	return s.walk
}

// Recorder returns the input recorder, nil when recording is off
func (s *Scene) Recorder() *Recorder {
	return s.recorder
}

// Tuning returns the tuning the current game was built with
func (s *Scene) Tuning() config.TuningConfig {
	return s.tuning
}
