package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/scene"
)

var (
	flagWidth  float64
	flagHeight float64
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Show the station layout",
	Long: `Lays the kitchen out for a viewport and prints every station with its
pixel position, hit box and the spot the actor walks to.

Examples:
  kitchen stations
  kitchen stations --width 1280 --height 720`,
	Args: cobra.NoArgs,
	Run:  runStations,
}

func init() {
	stationsCmd.Flags().Float64Var(&flagWidth, "width", 800, "Viewport width in px")
	stationsCmd.Flags().Float64Var(&flagHeight, "height", 600, "Viewport height in px")
}

func runStations(_ *cobra.Command, _ []string) {
	cfg, err := loadKitchen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := scene.New(cfg, core.Sz(flagWidth, flagHeight), nil)
	fmt.Println(stationTable(sess))
}

// stationTable renders the session's stations as a table.
func stationTable(sess *scene.Session) string {
	columns := []table.Column{
		{Title: "Key", Width: 3},
		{Title: "ID", Width: 10},
		{Title: "Label", Width: 10},
		{Title: "Position", Width: 12},
		{Title: "Hit box", Width: 20},
		{Title: "Walk to", Width: 12},
	}

	stations := sess.Stations()
	rows := make([]table.Row, len(stations))
	for i, st := range stations {
		b := st.Box()
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			st.ID,
			st.Label,
			formatPoint(st.Position),
			fmt.Sprintf("%.0f,%.0f %.0fx%.0f", b.X, b.Y, b.W, b.H),
			formatPoint(sess.ApproachPoint(st)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header plus its border
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	v := sess.Viewport()
	walk := sess.WalkArea()
	title := titleStyle.Render(fmt.Sprintf("KITCHEN %.0fx%.0f", v.Width, v.Height))
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf("walk area %.0f,%.0f %.0fx%.0f  speed %.0f px/s",
			walk.X, walk.Y, walk.W, walk.H, sess.Speed()))

	return lipgloss.JoinVertical(lipgloss.Left, title, t.View(), footer)
}

func formatPoint(p core.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}
