package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/runner/internal/application/replay"
	"github.com/younwookim/runner/internal/application/scene/walking"
	"github.com/younwookim/runner/internal/application/state"
	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

var flagReplay string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-run a recorded session without a window",
	Long: `Re-run a recorded session frame by frame without opening a window and
print where it ended. The segment generator is seeded from the recording, so
the same file always ends in the same place.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay file written by play --record")
	_ = verifyCmd.MarkFlagRequired("replay")
}

// VerifyResult is where a replayed session ended
type VerifyResult struct {
	Seed     int64
	Frames   int
	State    state.GameState
	Distance int
	Timeline int
}

func runVerify(cmd *cobra.Command, _ []string) error {
	logger := newLogger(flagDebug)

	data, err := replay.LoadReplay(flagReplay)
	if err != nil {
		return err
	}

	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		return err
	}

	world, err := loadWorld(flagAssets, tuning, system.ImageTexture)
	if err != nil {
		return err
	}

	result, err := verifyReplay(*data, tuning, world, logger)
	if err != nil {
		return err
	}

	logger.Info("replay finished", "file", flagReplay, "frames", result.Frames)
	fmt.Fprintf(cmd.OutOrStdout(), "seed=%d frames=%d state=%s distance=%d timeline=%d\n",
		result.Seed, result.Frames, result.State, result.Distance, result.Timeline)
	return nil
}

// verifyReplay feeds every recorded frame through a headless scene
func verifyReplay(data replay.ReplayData, tuning config.TuningConfig, world system.WorldAssets, logger *log.Logger) (VerifyResult, error) {
	s := walking.New(walking.Options{
		Tuning:   tuning,
		Seed:     data.Seed,
		Logger:   logger,
		Headless: true,
	})
	if err := s.Initialize(world); err != nil {
		return VerifyResult{}, err
	}

	replayer := replay.NewReplayer(data)
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		s.Step(walking.InputFromReplay(in))
	}

	return VerifyResult{
		Seed:     s.Walk().Seed(),
		Frames:   replayer.CurrentFrame(),
		State:    s.State(),
		Distance: s.Walk().Distance(),
		Timeline: s.Walk().Timeline(),
	}, nil
}
