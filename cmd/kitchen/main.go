// kitchen is a point-and-click kitchen scene for the terminal.
//
// Usage:
//
//	kitchen play               - Play in this terminal (mouse or keys 1-4)
//	kitchen serve              - Start SSH server for remote play
//	kitchen stations           - Show the station layout for a viewport
//	kitchen walk <target>      - Walk headless to a station or point and log events
//
// Global flags:
//
//	--config <path> - Custom kitchen YAML (default search: ~/.kitchen/configs, ./configs)
//	--fps <rate>    - Override tick rate
//	--speed <px/s>  - Override walking speed
//	--log <path>    - Append logs to a file
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSpeed  float64
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kitchen",
	Short: "Kitchen - walk around a tiny kitchen in your terminal",
	Long: `Kitchen is a point-and-click scene: click the floor to walk there, or
click a station (fridge, stove, sink, table) to walk up to it.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  stations  - Show the station layout
  walk      - Headless walk that logs scene events

Examples:
  kitchen play
  kitchen play --speed 300
  kitchen serve --ssh :2222
  kitchen stations --width 1280 --height 720
  kitchen walk mesa`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 0, "Walking speed override in px/s (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(walkCmd)
}

// loadKitchen loads the config and applies the global flag overrides.
func loadKitchen() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS > 0 {
		cfg.Terminal.TickRate = flagFPS
	}
	if flagSpeed > 0 {
		cfg.Movement.Speed = flagSpeed
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates a logger writing to w, or to the --log file when set.
// The returned close func must be called when done.
func newLogger(w io.Writer, prefix string) (*log.Logger, func(), error) {
	closer := func() {}
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
