package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// ErrConnClosed is returned when sending on a closed feed connection.
var ErrConnClosed = errors.New("feed connection closed")

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Feed subscribers never send payloads, only control frames.
	maxMessageSize = 512
)

// feedConn wraps one spectator's WebSocket connection with a buffered
// outbound queue and keepalive pumps.
type feedConn struct {
	conn      *websocket.Conn
	send      chan *FeedMessage
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newFeedConn(conn *websocket.Conn, logger *log.Logger) *feedConn {
	ctx, cancel := context.WithCancel(context.Background())
	return &feedConn{
		conn:   conn,
		send:   make(chan *FeedMessage, 64),
		logger: logger.WithPrefix("conn"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins the read and write pumps.
func (c *feedConn) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed when the connection has shut down.
func (c *feedConn) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close shuts the connection down exactly once.
func (c *feedConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Send queues a message for delivery. A full buffer closes the
// connection instead of blocking the broadcaster.
func (c *feedConn) Send(msg *FeedMessage) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnClosed
	default:
		c.logger.Warn("Feed send buffer full, closing connection")
		_ = c.Close()
		return ErrConnClosed
	}
}

func (c *feedConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("Feed write failed", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// readPump discards inbound frames; it exists to process control
// messages and notice when the peer goes away.
func (c *feedConn) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
