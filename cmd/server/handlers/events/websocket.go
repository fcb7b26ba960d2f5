package events

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"planboard/cmd/server/ctxkeys"
	"planboard/cmd/server/handlers/httperr"
	"planboard/internal/logger"
	"planboard/internal/services/events"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

const (
	// WSClosePolicyViolation represents WebSocket close code for policy violation
	WSClosePolicyViolation = 1008

	// WebSocket timeout constants
	wsWriteTimeout     = 10 * time.Second // Timeout for writing messages to WebSocket
	wsPingInterval     = 25 * time.Second // Interval for sending ping messages
	wsPingWriteTimeout = 5 * time.Second  // Timeout for writing ping messages

	msgFailedToCloseWebSocketConnection = "failed to close WebSocket connection"
)

// Hub interface for WebSocket subscription management
type Hub interface {
	Subscribe(connULID ulid.ULID) (*events.Subscriber, func())
	Unsubscribe(connULID ulid.ULID)
}

// WebSocketHandlers contains WebSocket-related handlers
type WebSocketHandlers struct {
	hub           Hub
	maxSessionSec int
}

// NewWebSocketHandlers creates new WebSocket handlers
func NewWebSocketHandlers(hub Hub, maxSessionSec int) *WebSocketHandlers {
	return &WebSocketHandlers{
		hub:           hub,
		maxSessionSec: maxSessionSec,
	}
}

// WSUpgrade upgrades HTTP connections to WebSocket for the event stream
func (h *WebSocketHandlers) WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		// Use Fiber's request-bound context so WSEventStream gets a real context.Context.
		c.Locals(ctxkeys.ParentCtxKey, c.UserContext())
		return c.Next()
	}

	logger.L().Warn("websocket upgrade required", "handler", "WSUpgrade", "path", c.Path())
	return httperr.Fail(httperr.E{
		Status:  400,
		Message: "WebSocket upgrade required",
	})
}

// WSEventStream streams document change events to the client until the
// session cap elapses or either side closes.
func (h *WebSocketHandlers) WSEventStream(c *websocket.Conn) {
	conn, parentCtx, err := h.initializeConnection(c)
	if err != nil {
		h.closeConnection(c)
		return
	}

	ctx, cancelCtx := context.WithCancel(parentCtx)
	defer cancelCtx()

	subscriber, cancel := h.hub.Subscribe(conn.connULID)
	defer cancel()

	logger.L().Info("WebSocket connection established", "conn_id", conn.connID)

	sessionTimer := h.startSessionTimer(c, conn, cancelCtx)
	defer h.stopSessionTimer(sessionTimer)

	ping := h.startKeepAlive(c, conn)
	defer ping.Stop()

	go h.handleOutgoingMessages(c, conn, subscriber, ctx)

	h.handleIncomingMessages(c)

	logger.L().Info("WebSocket connection closed", "conn_id", conn.connID)
	cancelCtx()
}

// wsConnection holds connection-specific data
type wsConnection struct {
	connULID ulid.ULID
	connID   string
}

// initializeConnection sets up the WebSocket connection metadata
func (h *WebSocketHandlers) initializeConnection(c *websocket.Conn) (*wsConnection, context.Context, error) {
	parentCtx, ok := c.Locals(ctxkeys.ParentCtxKey).(context.Context)
	if !ok {
		logger.L().Error(ctxkeys.ParentCtxKey + " not found in WebSocket context")
		return nil, nil, fmt.Errorf(ctxkeys.ParentCtxKey + " not found")
	}

	connULID := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader)
	conn := &wsConnection{
		connULID: connULID,
		connID:   connULID.String(),
	}
	return conn, parentCtx, nil
}

// closeConnection safely closes the WebSocket connection
func (h *WebSocketHandlers) closeConnection(c *websocket.Conn) {
	if err := c.Close(); err != nil {
		logger.L().Error(msgFailedToCloseWebSocketConnection, "error", err)
	}
}

// startSessionTimer creates and starts the session timeout timer
func (h *WebSocketHandlers) startSessionTimer(c *websocket.Conn, conn *wsConnection, cancelCtx context.CancelFunc) *time.Timer {
	return time.AfterFunc(time.Duration(h.maxSessionSec)*time.Second, func() {
		logger.L().Info("WebSocket session timeout", "conn_id", conn.connID)
		h.sendCloseMessage(c, conn)
		h.closeConnection(c)
		cancelCtx()
	})
}

// stopSessionTimer safely stops the session timer
func (h *WebSocketHandlers) stopSessionTimer(timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
}

// sendCloseMessage sends a close frame to the client
func (h *WebSocketHandlers) sendCloseMessage(c *websocket.Conn, conn *wsConnection) {
	err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(WSClosePolicyViolation, "session timeout"))
	if err != nil {
		logger.L().Error("failed to send close message", "error", err, "conn_id", conn.connID)
	}
}

// startKeepAlive starts the keep-alive ping mechanism
func (h *WebSocketHandlers) startKeepAlive(c *websocket.Conn, conn *wsConnection) *time.Ticker {
	ping := time.NewTicker(wsPingInterval)
	go func() {
		for range ping.C {
			if h.sendPing(c, conn) != nil {
				return
			}
		}
	}()
	return ping
}

// sendPing sends a ping message to the client
func (h *WebSocketHandlers) sendPing(c *websocket.Conn, conn *wsConnection) error {
	if err := c.SetWriteDeadline(time.Now().Add(wsPingWriteTimeout)); err != nil {
		logger.L().Error("failed to set write deadline", "error", err, "conn_id", conn.connID)
		return err
	}
	if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
		logger.L().Warn("failed to write ping message", "error", err, "conn_id", conn.connID)
		return err
	}
	return nil
}

// handleOutgoingMessages forwards hub events to the client
func (h *WebSocketHandlers) handleOutgoingMessages(c *websocket.Conn, conn *wsConnection, subscriber *events.Subscriber, ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error("panic in WebSocket sender", "error", r, "conn_id", conn.connID)
		}
	}()

	for {
		select {
		case event, ok := <-subscriber.Ch:
			if !ok {
				return
			}
			if h.sendEvent(c, conn, event) != nil {
				return
			}
		case <-subscriber.Done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// sendEvent sends an event to the client
func (h *WebSocketHandlers) sendEvent(c *websocket.Conn, conn *wsConnection, event events.Event) error {
	if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		logger.L().Error("failed to set write deadline", "error", err, "conn_id", conn.connID)
		return err
	}
	if err := c.WriteJSON(event); err != nil {
		logger.L().Error("failed to write WebSocket message", "error", err, "conn_id", conn.connID)
		return err
	}
	return nil
}

// handleIncomingMessages drains client frames until the peer closes; the
// stream is one-way, so inbound payloads are discarded.
func (h *WebSocketHandlers) handleIncomingMessages(c *websocket.Conn) {
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
