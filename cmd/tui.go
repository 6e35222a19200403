package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/service"
	"github.com/theirongolddev/subtrack/internal/tui"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	// Stored settings win over the config file for the theme, so the
	// in-app theme switcher sticks between launches.
	themeName := e.cfg.Appearance.Theme
	if s, err := e.settings.Get(); err == nil && s.Theme != "" {
		themeName = s.Theme
	}
	theme.SetActive(themeName)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Services{
		Subs:       e.subs,
		Budgets:    e.budgets,
		Categories: e.categories,
		Settings:   e.settings,
		Dispatch:   service.NewDispatcher(e.subs),
		Horizon:    e.cfg.General.RenewalHorizon,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
