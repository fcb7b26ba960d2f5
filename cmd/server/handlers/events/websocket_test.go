package events

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"planboard/cmd/server/ctxkeys"
	"planboard/cmd/server/testutil"
	"planboard/internal/config"
	"planboard/internal/logger"
	"planboard/internal/services/events"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	gorillaws "github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wsMaxIncomingBytes = 1 << 20 // 1 MiB
)

// MockHub implements the Hub interface for testing
type MockHub struct {
	subscribers map[ulid.ULID]*events.Subscriber
}

func NewMockHub() *MockHub {
	return &MockHub{
		subscribers: make(map[ulid.ULID]*events.Subscriber),
	}
}

func (m *MockHub) Subscribe(connULID ulid.ULID) (*events.Subscriber, func()) {
	sub := &events.Subscriber{
		Ch:   make(chan events.Event, 10),
		Done: make(chan struct{}),
	}
	m.subscribers[connULID] = sub

	cancel := func() {
		m.Unsubscribe(connULID)
	}
	return sub, cancel
}

func (m *MockHub) Unsubscribe(connULID ulid.ULID) {
	if sub, exists := m.subscribers[connULID]; exists {
		close(sub.Ch)
		close(sub.Done)
		delete(m.subscribers, connULID)
	}
}

func (m *MockHub) GetSubscriberCount() int {
	return len(m.subscribers)
}

func TestWSUpgradeNonWebSocketRequest(t *testing.T) {
	cfg := config.Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
	_, err := logger.Init(cfg)
	require.NoError(t, err)

	app := testutil.CreateTestApp(t)
	wsHandlers := NewWebSocketHandlers(NewMockHub(), 900)
	app.Get("/ws/events", wsHandlers.WSUpgrade, func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	resp, err := app.Test(testutil.CreateJSONRequest("GET", "/ws/events", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestWSUpgradePassesParentContext(t *testing.T) {
	app := testutil.CreateTestApp(t)
	wsHandlers := NewWebSocketHandlers(NewMockHub(), 900)
	app.Get("/ws/events", wsHandlers.WSUpgrade, func(c *fiber.Ctx) error {
		if c.Locals(ctxkeys.ParentCtxKey) == nil {
			return c.SendStatus(500)
		}
		return c.SendStatus(200)
	})

	resp, err := app.Test(testutil.CreateWebSocketRequest("/ws/events"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestWSSessionTimeout(t *testing.T) {
	cfg := config.Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
	_, err := logger.Init(cfg)
	require.NoError(t, err)

	hub := NewMockHub()
	maxSessionSec := 2

	wsHandlers := NewWebSocketHandlers(hub, maxSessionSec)

	// Create a test WebSocket server
	app := fiber.New()
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			// Pass the correct context type so WSEventStream doesn't reject the upgrade.
			c.Locals(ctxkeys.ParentCtxKey, c.UserContext())
			return c.Next()
		}
		return c.SendStatus(400)
	})
	app.Get("/ws", websocket.New(wsHandlers.WSEventStream))

	ln, _ := net.Listen("tcp", "127.0.0.1:0")
	port := ln.Addr().(*net.TCPAddr).Port
	listenerCloseErr := ln.Close() // Close the listener since Fiber will create its own
	require.NoError(t, listenerCloseErr)

	go func() {
		err := app.Listen(":" + fmt.Sprintf("%d", port))
		require.NoError(t, err)
	}()

	// Wait for server to start
	time.Sleep(100 * time.Millisecond)

	// Connect to WebSocket
	dialer := gorillaws.Dialer{}
	conn, _, err := dialer.Dial(fmt.Sprintf("ws://127.0.0.1:%d/ws", port), nil)
	if err != nil {
		t.Fatalf("Could not establish WebSocket connection for timeout test: %v", err)
	}
	conn.SetReadLimit(wsMaxIncomingBytes)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close WebSocket connection: %v", err)
		}
	}()

	// Set read deadline to detect close
	deadline := time.Now().UTC().Add(5 * time.Second)
	setReadDeadlineErr := conn.SetReadDeadline(deadline)
	require.NoError(t, setReadDeadlineErr)

	// Wait for the connection to be closed due to timeout
	start := time.Now().UTC()
	_, _, readMessageErr := conn.ReadMessage()
	require.Error(t, readMessageErr)
	elapsed := time.Since(start)

	// Check if it's a close error with the expected close code
	var closeErr *gorillaws.CloseError
	if errors.As(readMessageErr, &closeErr) {
		assert.Equal(t, WSClosePolicyViolation, closeErr.Code, "Expected policy violation close code")
	}

	// Verify timing - should be close to maxSessionSec
	assert.True(t, elapsed >= 2*time.Second, "Connection should have been closed after session timeout")
	assert.True(t, elapsed < 4*time.Second, "Connection should have been closed promptly")
}

// Integration test that verifies proper cleanup when WebSocket closes
func TestWSConnectionCleanup(t *testing.T) {
	hub := NewMockHub()

	var sub *events.Subscriber // will be set later

	// -- FIRST cleanup: runs **after** the cancel registered below
	t.Cleanup(func() {
		require.Eventually(t, func() bool {
			return hub.GetSubscriberCount() == 0 // should now be 0
		}, 100*time.Millisecond, 10*time.Millisecond,
			"Hub should have no subscribers after cleanup")

		select {
		case <-sub.Done:
		case <-time.After(50 * time.Millisecond):
			t.Fatal("Done channel should be closed after cleanup")
		}

		assert.Panics(t, func() {
			sub.Ch <- events.Event{Type: events.TypeNoteCreated} // channel is closed
		}, "should panic when sending to closed channel")
	})

	// subscribe **after** the assertion cleanup is registered
	connULID := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader)
	var cancel func()
	sub, cancel = hub.Subscribe(connULID)
	t.Cleanup(cancel)
	require.Equal(t, 1, hub.GetSubscriberCount())
}
