package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Open the kitchen full screen in this terminal.

Controls:
  Left click  - Walk to the floor spot, or up to a clicked station
  1-4         - Walk to a station
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Logs go nowhere unless --log is set, since the terminal is the screen.

Examples:
  kitchen play
  kitchen play --fps 30
  kitchen play --config ./my-kitchen.yaml --log kitchen.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadKitchen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog, err := newLogger(io.Discard, "kitchen")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   cfg.Terminal.TickRate,
		MaxDeltaMs: cfg.Terminal.MaxDeltaMs,
	}
	logger.Info("starting", "cols", width, "rows", height, "fps", rt.TickRate)

	runErr := tui.Run(cfg, rt, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running kitchen: %v\n", runErr)
		os.Exit(1)
	}
}
