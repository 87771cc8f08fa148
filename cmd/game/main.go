// runner is an endless side-scrolling runner: the Red Hat Boy runs, slides
// and jumps over stones and floating platforms until he is knocked out.
//
// Usage:
//
//	runner play                   - Open a window and play
//	runner verify --replay <file> - Re-run a recorded session without a window
//
// Global flags:
//
//	--assets <dir>   - Directory with sprite sheets, images and sounds (default: assets)
//	--config <path>  - Path to runner.yaml (default: configs/runner.yaml, then embedded)
//	--seed <value>   - Segment generator seed (0 = random based on time)
//	--debug          - Debug logging and HUD
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

const defaultConfigPath = "configs/runner.yaml"

var (
	// Global flags
	flagAssets string
	flagConfig string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Walk the Dog - an endless runner",
	Long: `An endless side-scrolling runner.

Controls:
  Right      - Start running
  Down       - Slide
  Space      - Jump
  Enter      - New game (after game over)

Examples:
  runner play
  runner play --seed 42 --record run.json
  runner play --config ./runner.yaml --watch
  runner verify --replay run.json`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory containing game assets")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner.yaml")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Segment generator seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and HUD")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(verifyCmd)
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadWorld reads and decodes every asset named by the tuning
func loadWorld(dir string, tuning config.TuningConfig, texture system.TextureFunc) (system.WorldAssets, error) {
	assets, err := config.NewLoader(dir).LoadAssets(tuning.Assets)
	if err != nil {
		return system.WorldAssets{}, fmt.Errorf("failed to load assets from %s: %w", dir, err)
	}
	return system.LoadWorldAssets(assets, texture), nil
}
