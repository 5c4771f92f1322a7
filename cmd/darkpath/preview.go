package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/darkpath/internal/level"
	"github.com/vovakirdan/darkpath/internal/terrain"
)

var (
	flagLevel      int
	flagPortalRoom bool
	flagExtend     int
)

var (
	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	previewHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	previewBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// barScale is the number of height units per bar character.
const barScale = 8

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated level as text",
	Long: `Generate a single level and print its terrain samples and entities.

The same seed and level number always produce the same output, which makes
this useful to inspect generation without playing.

Examples:
  darkpath preview --seed 42
  darkpath preview --seed 42 --level 3 --extend 10
  darkpath preview --portal-room --extend 1`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number")
	previewCmd.Flags().BoolVar(&flagPortalRoom, "portal-room", false, "Generate a portal room instead of a normal level")
	previewCmd.Flags().IntVar(&flagExtend, "extend", 0, "Extend the level by this amount after generation")
}

func runPreview(_ *cobra.Command, _ []string) error {
	if flagLevel < 0 {
		return fmt.Errorf("level must be >= 0, got %d", flagLevel)
	}
	l := level.New(flagSeed, flagLevel, flagPortalRoom)
	if flagExtend != 0 {
		l.Extend(flagExtend)
	}
	return writePreview(os.Stdout, l)
}

// writePreview prints the level's samples and entities.
func writePreview(w io.Writer, l *level.Level) error {
	s := l.Stats()
	kind := "level"
	if s.PortalRoom {
		kind = "portal room"
	}

	var sb strings.Builder
	sb.WriteString(previewTitleStyle.Render(fmt.Sprintf("%s %d  seed %d  frontier %d", kind, s.Number, s.Seed, s.Frontier)))
	sb.WriteString("\n\n")

	sb.WriteString(previewHeaderStyle.Render(fmt.Sprintf("%5s %6s %5s %5s", "index", "x", "base", "mezz")))
	sb.WriteString("\n")
	base, mezz := l.Terrain.Base(), l.Terrain.Mezzanine()
	for i := range base {
		x := -l.Thickness * float64(i-1)
		fmt.Fprintf(&sb, "%5d %6.0f %5d %5d %s\n", i, x, base[i], mezz[i],
			previewBarStyle.Render(strings.Repeat("█", base[i]/barScale)))
	}

	sb.WriteString("\n")
	sb.WriteString(previewHeaderStyle.Render(fmt.Sprintf("%3s %-7s %8s %6s  %-18s %s", "#", "kind", "x", "y", "payload", "state")))
	sb.WriteString("\n")
	for i := range l.Entities {
		e := &l.Entities[i]
		y := fmt.Sprintf("%.0f", l.ResolveY(e))
		if e.Position.FollowTerrain {
			y += "~"
		}
		state := "active"
		if !e.Active {
			state = "consumed"
		}
		if l.Height(e.Position.X, terrain.Base, false) == terrain.OutOfRange {
			state += ", beyond frontier"
		}
		fmt.Fprintf(&sb, "%3d %-7s %8.0f %6s  %-18s %s\n", i, e.Kind, e.Position.X, y, payloadString(e), state)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func payloadString(e *level.Entity) string {
	p := e.Payload
	switch {
	case e.Kind == level.KindPortal:
		return fmt.Sprintf("to level %d", p.Target)
	case !p.HasTarget:
		return fmt.Sprintf("hub +%d", p.Amount)
	default:
		return fmt.Sprintf("level %d +%d", p.Target, p.Amount)
	}
}
