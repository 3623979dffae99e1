package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lox/rpsarena/cmd/rpsarena/shared"
	"github.com/lox/rpsarena/internal/client"
	"github.com/lox/rpsarena/internal/game"
	"github.com/lox/rpsarena/internal/server"
)

// WatchCmd follows the live WebSocket feed and prints state changes.
type WatchCmd struct {
	URL   string `kong:"default='http://localhost:8080',help='Server URL'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *WatchCmd) Run() error {
	logger := shared.SetupLogger("info", c.Debug)
	api := client.New(c.URL, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	msgs, err := api.WatchFeed(ctx)
	if err != nil {
		return err
	}

	logger.Info("Watching live feed", "url", c.URL)
	for msg := range msgs {
		switch msg.Type {
		case server.FeedTypeState:
			var state game.Summary
			if err := json.Unmarshal(msg.Data, &state); err != nil {
				logger.Warn("Unreadable state message", "error", err)
				continue
			}
			printState(state)
		case server.FeedTypeLeaderboard:
			// Leaderboard deltas are noisy on the console; the
			// leaderboard command renders them on demand.
		default:
			logger.Debug("Ignoring feed message", "type", msg.Type)
		}
	}
	return nil
}

func printState(s game.Summary) {
	switch {
	case !s.Active && s.Round == 0:
		fmt.Println("no match in progress")
	case s.Active && s.Round == 0:
		fmt.Printf("match started: %s vs %s (best of %d)\n", s.P1, s.P2, s.MaxRounds)
	case s.Active:
		rec := s.RoundHistory[len(s.RoundHistory)-1]
		winner := rec.RoundWinner
		if winner == "" {
			winner = "tie"
		}
		fmt.Printf("round %d/%d: %s vs %s → %s  [%d:%d]\n",
			s.Round, s.MaxRounds, rec.P1Move, rec.P2Move, winner, s.P1RoundWins, s.P2RoundWins)
	case s.OverallTie:
		fmt.Printf("match over: draw at %d:%d — %s keeps the table\n", s.P1RoundWins, s.P2RoundWins, s.P1)
	default:
		fmt.Printf("match over: %s wins %d:%d\n", s.Winner, s.P1RoundWins, s.P2RoundWins)
	}
}
