package telemetry

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/platform-fighter/core"
	"github.com/lixenwraith/platform-fighter/parameter"
)

// Message is the JSON envelope sent to every client
type Message struct {
	Type  string `json:"type"`
	Frame uint64 `json:"frame"`
	Data  any    `json:"data"`
}

// Hub fans JSON messages out to websocket clients
// Slow clients lose their oldest queued messages rather than stalling the game
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	clients    map[*client]struct{}
	count      atomic.Int64
	dropped    atomic.Int64
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub; Run must be started before clients connect
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, parameter.TelemetryClientBuffer),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local debugging tool, any origin may watch
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run owns the client set until ctx is done, then closes every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.remove(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Store(int64(len(h.clients)))
			h.logger.Info("telemetry client connected", "remote", c.conn.RemoteAddr().String(), "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.remove(c)
				h.logger.Info("telemetry client disconnected", "clients", len(h.clients))
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				h.enqueue(c, msg)
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.count.Store(int64(len(h.clients)))
}

// enqueue drops the oldest queued message when the client is full
func (h *Hub) enqueue(c *client, msg []byte) {
	for {
		select {
		case c.send <- msg:
			return
		default:
		}
		select {
		case <-c.send:
			h.dropped.Add(1)
		default:
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int { return int(h.count.Load()) }

// Pending counts published messages not yet fanned out to clients
func (h *Hub) Pending() int { return len(h.broadcast) }

// Dropped counts messages discarded for slow clients or a full hub
func (h *Hub) Dropped() int64 { return h.dropped.Load() }

// Publish encodes and queues a message without blocking
// Nothing is encoded while no client is connected
func (h *Hub) Publish(typ string, frame uint64, data any) error {
	if h.ClientCount() == 0 {
		return nil
	}
	payload, err := json.Marshal(Message{Type: typ, Frame: frame, Data: data})
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- payload:
	default:
		h.dropped.Add(1)
	}
	return nil
}

// ServeHTTP upgrades the request and starts the client pumps
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("telemetry upgrade failed", "error", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, parameter.TelemetryClientBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	core.Go(func() { h.writePump(c) })
	core.Go(func() { h.readPump(c) })
}

// readPump discards client input and unregisters on disconnect
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(parameter.TelemetryPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.TelemetryWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.TelemetryWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
