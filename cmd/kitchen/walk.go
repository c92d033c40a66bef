package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/event"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/scene"
)

var (
	flagWalkWidth   float64
	flagWalkHeight  float64
	flagStepMs      float64
	flagMaxTicks    int
	flagResize      string
	flagResizeAfter int
)

var walkCmd = &cobra.Command{
	Use:   "walk <station|x,y>",
	Short: "Walk headless and log scene events",
	Long: `Runs a kitchen without a screen: sends the actor to a station id or
clicks a pixel point, steps the scene with a fixed frame time and logs
every event until the actor stops.

Examples:
  kitchen walk mesa
  kitchen walk 120,480 --step 33
  kitchen walk pia --resize 1600x1200 --resize-after 20 --debug`,
	Args: cobra.ExactArgs(1),
	Run:  runWalk,
}

func init() {
	walkCmd.Flags().Float64Var(&flagWalkWidth, "width", 800, "Viewport width in px")
	walkCmd.Flags().Float64Var(&flagWalkHeight, "height", 600, "Viewport height in px")
	walkCmd.Flags().Float64Var(&flagStepMs, "step", 16, "Frame time in ms")
	walkCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Give up after this many frames")
	walkCmd.Flags().StringVar(&flagResize, "resize", "", "Resize the viewport mid-walk (WxH)")
	walkCmd.Flags().IntVar(&flagResizeAfter, "resize-after", 10, "Frame at which --resize applies")
}

func runWalk(_ *cobra.Command, args []string) {
	cfg, err := loadKitchen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var resize *core.Size
	if flagResize != "" {
		size, sizeErr := parseSize(flagResize)
		if sizeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sizeErr)
			os.Exit(1)
		}
		resize = &size
	}

	logger, closeLog, err := newLogger(os.Stderr, "walk")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sess := scene.New(cfg, core.Sz(flagWalkWidth, flagWalkHeight), logger)
	if err := startWalk(sess, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'kitchen stations' to see station ids.")
		closeLog()
		os.Exit(1)
	}

	var elapsed float64
	ticks := 0
	logEvents(logger, ticks, sess.Events().Drain())
	for sess.IsMoving() && ticks < flagMaxTicks {
		if resize != nil && ticks == flagResizeAfter {
			sess.Resize(*resize)
		}
		sess.Tick(flagStepMs)
		ticks++
		elapsed += flagStepMs
		logEvents(logger, ticks, sess.Events().Drain())
	}

	actor := sess.Actor()
	if sess.IsMoving() {
		logger.Warn("gave up", "ticks", ticks, "position", formatPoint(actor.Position))
		closeLog()
		os.Exit(1)
	}
	logger.Info("stopped",
		"ticks", ticks,
		"elapsed_ms", elapsed,
		"position", formatPoint(actor.Position),
		"facing", actor.Facing,
	)
}

// startWalk sends the actor to a station id or clicks an "x,y" point.
func startWalk(sess *scene.Session, target string) error {
	if !strings.Contains(target, ",") {
		return sess.MoveToStation(target)
	}

	p, err := parsePoint(target)
	if err != nil {
		return err
	}
	sess.Click(p)
	return nil
}

func logEvents(logger *log.Logger, tick int, events []event.Event) {
	for _, e := range events {
		switch e.(type) {
		case event.ActorMoved:
			logger.Debug(event.Describe(e), "tick", tick)
		default:
			logger.Info(event.Describe(e), "tick", tick)
		}
	}
}

var errBadArg = errors.New("bad argument")

// parsePoint parses "x,y".
func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("point %q: %w", s, errBadArg)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return core.Point{}, fmt.Errorf("point %q: %w", s, errBadArg)
	}
	return core.Pt(x, y), nil
}

// parseSize parses "WxH" with positive dimensions.
func parseSize(s string) (core.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return core.Size{}, fmt.Errorf("size %q: %w", s, errBadArg)
	}
	w, errW := strconv.ParseFloat(ws, 64)
	h, errH := strconv.ParseFloat(hs, 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return core.Size{}, fmt.Errorf("size %q: %w", s, errBadArg)
	}
	return core.Sz(w, h), nil
}
