// Package client is a thin programmatic client for the rpsarena JSON
// API, used by the CLI commands and the play TUI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/rpsarena/internal/game"
	"github.com/lox/rpsarena/internal/leaderboard"
	"github.com/lox/rpsarena/internal/player"
	"github.com/lox/rpsarena/internal/server"
)

// Client talks to one rpsarena server.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

// New creates a client for the server at baseURL (e.g.
// "http://localhost:8080").
func New(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		logger:  logger.WithPrefix("client"),
	}
}

// RegisterPlayer creates (or looks up) a player by name.
func (c *Client) RegisterPlayer(ctx context.Context, name string) (*player.Stats, error) {
	var resp server.RegisterResponse
	err := c.post(ctx, "/api/player/register", server.RegisterRequest{Name: name}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, errors.New(resp.Error)
	}
	return resp.Player, nil
}

// StartMatch starts a new match between two players.
func (c *Client) StartMatch(ctx context.Context, p1, p2 string) (*game.Summary, error) {
	var resp server.StateResponse
	err := c.post(ctx, "/api/game/start", server.StartMatchRequest{P1: p1, P2: p2}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, errors.New(resp.Error)
	}
	return resp.State, nil
}

// PlayRound submits one pair of moves for the active match.
func (c *Client) PlayRound(ctx context.Context, p1Move, p2Move string) (*game.Summary, error) {
	var resp server.StateResponse
	err := c.post(ctx, "/api/game/play_round", server.PlayRoundRequest{P1Move: p1Move, P2Move: p2Move}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, errors.New(resp.Error)
	}
	return resp.State, nil
}

// Leaderboard fetches both sort orders.
func (c *Client) Leaderboard(ctx context.Context) (*leaderboard.View, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/leaderboard", nil)
	if err != nil {
		return nil, err
	}
	var resp server.LeaderboardResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, errors.New(resp.Error)
	}
	return resp.Leaderboard, nil
}

// WatchFeed subscribes to the server's WebSocket feed. The returned
// channel closes when the connection drops or ctx is cancelled.
func (c *Client) WatchFeed(ctx context.Context) (<-chan server.FeedMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = "/ws"

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to feed: %w", err)
	}
	c.logger.Debug("Feed connected", "url", u.String())

	msgs := make(chan server.FeedMessage, 16)

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(msgs)
		defer conn.Close()
		for {
			var msg server.FeedMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil {
					c.logger.Debug("Feed closed", "error", err)
				}
				return
			}
			select {
			case msgs <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return msgs, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes a request and decodes the JSON response. Validation
// failures arrive with a 400 status and an ok=false body; the caller
// surfaces the body's error message, so non-2xx is not itself an error
// as long as the body decodes.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("server returned %s with unreadable body: %w", resp.Status, err)
	}
	return nil
}
