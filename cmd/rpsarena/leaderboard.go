package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/rpsarena/cmd/rpsarena/shared"
	"github.com/lox/rpsarena/internal/client"
	"github.com/lox/rpsarena/internal/player"
)

// LeaderboardCmd prints the leaderboard in both sort orders.
type LeaderboardCmd struct {
	URL    string `kong:"default='http://localhost:8080',help='Server URL'"`
	ByName bool   `kong:"help='Sort alphabetically instead of by score'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *LeaderboardCmd) Run() error {
	logger := shared.SetupLogger("info", c.Debug)
	api := client.New(c.URL, logger)

	view, err := api.Leaderboard(context.Background())
	if err != nil {
		return err
	}

	players := view.ByScore
	title := "Leaderboard (by score)"
	if c.ByName {
		players = view.ByName
		title = "Leaderboard (by name)"
	}

	if len(players) == 0 {
		fmt.Println("No players registered yet.")
		return nil
	}

	fmt.Println(lipgloss.NewStyle().Bold(true).Render(title))
	fmt.Println(renderTable(players))
	return nil
}

func renderTable(players []player.Stats) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("NAME", "SCORE", "W", "L", "T", "GAMES")

	for _, p := range players {
		t.Row(
			p.Name,
			strconv.Itoa(p.Score),
			strconv.Itoa(p.Wins),
			strconv.Itoa(p.Losses),
			strconv.Itoa(p.Ties),
			strconv.Itoa(p.GamesPlayed),
		)
	}
	return t.String()
}
