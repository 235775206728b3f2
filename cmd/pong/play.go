package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/console-pong/internal/audio"
	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/game"
	"github.com/vovakirdan/console-pong/internal/logging"
	"github.com/vovakirdan/console-pong/internal/platform/tui"
	"github.com/vovakirdan/console-pong/internal/shape"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a two-player match.

Controls:
  W / S        - Left paddle up / down
  Up / Down    - Right paddle up / down
  ?            - Toggle help
  q / Esc      - Quit

The playfield is 100x35 cells; the terminal needs at least 101x37.

Terminals send key presses and auto-repeats but no releases, so a paddle
keeps moving for input.hold_window_ms after its key is let go. Most
terminals auto-repeat only the last key pressed: when both players hold
a key at once, whether both paddles keep moving depends on the terminal.

Examples:
  pong play
  pong play --tick 30
  pong play --seed 7 --log-file ~/.pong/pong.log --log-level debug`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := game.Surface()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < width || h < height+1) {
		logger.Warn("terminal smaller than the playfield", "terminal", fmt.Sprintf("%dx%d", w, h),
			"needed", fmt.Sprintf("%dx%d", width, height+1))
	}

	screen := core.NewScreen(width, height)
	keys := tui.NewKeyState(cfg.HoldWindow())

	tone := audio.NewTone(cfg.Sound, os.Stderr, logger)
	// Without a speaker Beep rings the terminal bell; Init logs why.
	_ = tone.Init()
	defer tone.Close()

	loader := shape.NewLoader(cfg.ShapesDir)
	proc := game.NewProcessor(game.Options{
		Shapes:   loader,
		Renderer: screen,
		Input:    keys,
		Beeper:   tone,
		Rand:     rand.New(rand.NewSource(seed)),
		Logger:   logger,
	})
	if err := proc.Start(); err != nil {
		logger.Error("cannot start", "error", err)
		return err
	}

	logger.Info("match started",
		"seed", seed,
		"shapes", loader.Source(),
		"tick", cfg.TickDelay(),
		"hold", cfg.HoldWindow())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, tui.Options{
		Processor: proc,
		Screen:    screen,
		Keys:      keys,
		TickDelay: cfg.TickDelay(),
	})
}
