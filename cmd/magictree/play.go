package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/magic-tree/internal/assets"
	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/config"
	"github.com/vovakirdan/magic-tree/internal/core"
	"github.com/vovakirdan/magic-tree/internal/games/magictree"
	"github.com/vovakirdan/magic-tree/internal/platform/tui"
	"github.com/vovakirdan/magic-tree/internal/settings"
)

var flagScreenshots string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Magic Tree",
	Long: `Start playing Magic Tree in the terminal.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Jump
  Space/X          - Drop an apple
  Enter            - Start / restart
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot
  Ctrl+Y           - Copy the screen to the clipboard
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  magictree play
  magictree play --seed 42
  magictree play --config ./my-tree.yaml
  magictree play --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshots, "screenshots", "", "Screenshot directory (default ~/.magictree/screenshots)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closeLog = log.New(io.Discard), func() {}
	}
	defer closeLog()

	cfg, err := config.LoadMagicTree(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	catalog, err := loadAssets(ctx, logger)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	prefs := settings.Open(logger).Get()
	mixer := audio.NewMixer(catalog.Clips(), prefs.Levels(), logger)
	if prefs.Bell {
		mixer.SetBell(os.Stdout)
	}

	game := magictree.New(cfg, magictree.WithAudio(mixer))

	runErr := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ViewW:    cfg.Viewport.Width,
			ViewH:    cfg.Viewport.Height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:        logger,
		Catalog:       catalog,
		Mixer:         mixer,
		ScreenshotDir: flagScreenshots,
		Width:         width,
		Height:        height,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// loadAssets loads the embedded asset pack, reporting progress on stderr.
// Assets that fail still count as loaded; only cancellation is an error.
func loadAssets(ctx context.Context, logger *log.Logger) (*assets.Catalog, error) {
	fsys := assets.FS()
	manifest, err := assets.LoadManifest(fsys)
	if err != nil {
		return nil, err
	}

	loader := assets.NewLoader(fsys, logger, assets.WithProgress(func(settled, total int) {
		fmt.Fprintf(os.Stderr, "\rLoading assets %d/%d", settled, total)
	}))
	catalog, err := loader.Load(ctx, manifest)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if failed := catalog.Failed(); len(failed) > 0 {
		logger.Warn("some assets failed to load", "assets", failed)
	}
	return catalog, nil
}
