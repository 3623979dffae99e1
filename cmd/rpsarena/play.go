package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/rpsarena/cmd/rpsarena/shared"
	"github.com/lox/rpsarena/internal/client"
	"github.com/lox/rpsarena/internal/tui"
)

// PlayCmd plays one or more matches interactively.
type PlayCmd struct {
	URL   string `kong:"default='http://localhost:8080',help='Server URL'"`
	P1    string `kong:"help='Player 1 name (skips the name prompt)'"`
	P2    string `kong:"help='Player 2 name (skips the name prompt)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger("info", c.Debug)
	api := client.New(c.URL, logger)

	p := tea.NewProgram(tui.New(api, c.P1, c.P2))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}
	return nil
}
