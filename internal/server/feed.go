package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

// Feed pushes match state and leaderboard updates to WebSocket
// subscribers. Subscribers are read-only spectators; all mutations go
// through the JSON API.
type Feed struct {
	logger   *log.Logger
	clock    quartz.Clock
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	conns    map[*feedConn]struct{}
}

// NewFeed creates a feed hub.
func NewFeed(logger *log.Logger, clock quartz.Clock) *Feed {
	return &Feed{
		logger: logger.WithPrefix("feed"),
		clock:  clock,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Spectator feed is read-only, any origin may watch.
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[*feedConn]struct{}),
	}
}

// Run blocks until ctx is cancelled, then closes every subscriber.
func (f *Feed) Run(ctx context.Context) error {
	<-ctx.Done()
	f.closeAll()
	return ctx.Err()
}

func (f *Feed) add(conn *feedConn) {
	f.mu.Lock()
	f.conns[conn] = struct{}{}
	total := len(f.conns)
	f.mu.Unlock()
	f.logger.Info("Spectator connected", "total", total)
}

func (f *Feed) remove(conn *feedConn) {
	f.mu.Lock()
	_, ok := f.conns[conn]
	if ok {
		delete(f.conns, conn)
	}
	total := len(f.conns)
	f.mu.Unlock()
	if ok {
		_ = conn.Close()
		f.logger.Info("Spectator disconnected", "total", total)
	}
}

func (f *Feed) closeAll() {
	f.mu.Lock()
	conns := f.conns
	f.conns = make(map[*feedConn]struct{})
	f.mu.Unlock()
	for conn := range conns {
		_ = conn.Close()
	}
}

// HandleWS upgrades an HTTP request to a feed subscription. The welcome
// messages bring the new subscriber up to date with current state.
func (f *Feed) HandleWS(w http.ResponseWriter, r *http.Request, welcome ...*FeedMessage) {
	ws, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := newFeedConn(ws, f.logger)
	f.add(conn)
	conn.Start()

	for _, msg := range welcome {
		if err := conn.Send(msg); err != nil {
			break
		}
	}

	go func() {
		<-conn.Done()
		f.remove(conn)
	}()
}

// Broadcast wraps data in a feed envelope and sends it to every
// subscriber. Slow subscribers are dropped rather than blocking.
func (f *Feed) Broadcast(messageType string, data any) {
	msg, err := NewFeedMessage(messageType, data, f.clock.Now().UTC())
	if err != nil {
		f.logger.Error("Failed to create feed message", "error", err, "type", messageType)
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for conn := range f.conns {
		if err := conn.Send(msg); err != nil {
			f.logger.Debug("Dropping feed message", "error", err)
		}
	}
}

// Subscribers returns the current subscriber count.
func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.conns)
}
