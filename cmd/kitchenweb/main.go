// kitchenweb runs the kitchen in a window, or in the browser when built with
// GOOS=js GOARCH=wasm.
//
// Usage:
//
//	kitchenweb [--config <path>] [--width 800] [--height 600] [--debug]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/platform/web"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kitchenweb",
	Short: "Kitchen - graphical window",
	Long: `Opens the kitchen in a resizable window.

Controls:
  Left click / tap  - Walk to the floor spot, or up to a clicked station
  1-4               - Walk to a station
  Esc               - Quit`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	rootCmd.Flags().IntVar(&flagWidth, "width", 800, "Initial window width in px")
	rootCmd.Flags().IntVar(&flagHeight, "height", 600, "Initial window height in px")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kitchenweb",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	game, err := web.NewGame(cfg, flagWidth, flagHeight, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(flagWidth, flagHeight)
	ebiten.SetWindowTitle("Kitchen")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Terminal.TickRate)

	logger.Info("starting", "width", flagWidth, "height", flagHeight, "tps", cfg.Terminal.TickRate)
	return ebiten.RunGame(game)
}
