package server

import (
	"encoding/json"
	"time"

	"github.com/lox/rpsarena/internal/game"
	"github.com/lox/rpsarena/internal/leaderboard"
	"github.com/lox/rpsarena/internal/player"
)

// Request bodies. Absent or malformed fields decode to zero values and
// are rejected by the engine's own validation rather than defaulted.

type RegisterRequest struct {
	Name string `json:"name"`
}

type StartMatchRequest struct {
	P1 string `json:"p1"`
	P2 string `json:"p2"`
}

type PlayRoundRequest struct {
	P1Move string `json:"p1_move"`
	P2Move string `json:"p2_move"`
}

// Response bodies. Every endpoint reports ok plus either its payload or
// an error message.

type RegisterResponse struct {
	OK     bool          `json:"ok"`
	Player *player.Stats `json:"player,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type StateResponse struct {
	OK    bool          `json:"ok"`
	State *game.Summary `json:"state,omitempty"`
	Error string        `json:"error,omitempty"`
}

type LeaderboardResponse struct {
	OK          bool              `json:"ok"`
	Leaderboard *leaderboard.View `json:"leaderboard,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Feed message types pushed to /ws subscribers.
const (
	FeedTypeState       = "state"
	FeedTypeLeaderboard = "leaderboard"
)

// FeedMessage is the envelope for WebSocket feed broadcasts.
type FeedMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewFeedMessage wraps a payload in a feed envelope.
func NewFeedMessage(messageType string, data any, now time.Time) (*FeedMessage, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &FeedMessage{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}
