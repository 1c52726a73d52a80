package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/blackjack/internal/bankroll"
	"github.com/lox/blackjack/internal/session"
)

// Connection is one browser tab: a WebSocket plus the session it plays
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	session   *session.Session
	advisor   bool
	dealDelay time.Duration
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, s *session.Session, opts Options, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:      conn,
		send:      make(chan *Message, 64),
		session:   s,
		advisor:   opts.Advisor,
		dealDelay: opts.DealDelay,
		logger:    logger.WithPrefix("conn"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins handling the connection and sends the opening state
func (c *Connection) Start() {
	c.sendState()
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection has shut down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close() // Ignore close errors
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// readPump handles incoming messages from the client. The session is only
// ever touched from here.
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }() // Ignore close errors during cleanup

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		var req ActionRequest
		if err := json.Unmarshal(data, &req); err != nil {
			c.sendError("invalid_message", "Failed to parse message")
			continue
		}
		c.handleAction(req.Action)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// handleAction applies one player action and answers with the new state
func (c *Connection) handleAction(action string) {
	c.logger.Debug("Received action", "action", action)

	if action == ActionAdvisor {
		c.advisor = !c.advisor
		c.sendState()
		return
	}

	if err := c.session.Apply(action); err != nil {
		c.logger.Info("Action refused", "action", action, "error", err)
		c.sendError(errorCode(err), err.Error())
		return
	}
	c.sendState()
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, session.ErrUnknownAction):
		return "unknown_action"
	case errors.Is(err, session.ErrRoundInProgress):
		return "round_in_progress"
	case errors.Is(err, bankroll.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "action_failed"
	}
}

func (c *Connection) sendState() {
	msg, err := NewMessage(MessageTypeState, NewState(c.session, c.advisor, c.dealDelay))
	if err != nil {
		c.logger.Error("Failed to create state message", "error", err)
		return
	}
	_ = c.SendMessage(msg) // Ignore send errors, the read pump notices a dead peer
}

// sendError sends an error message to the client
func (c *Connection) sendError(code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}

	_ = c.SendMessage(errorMsg) // Ignore send errors during error handling
}
