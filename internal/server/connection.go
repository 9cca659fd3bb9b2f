package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/network"
	"github.com/gravitas-games/hexpaint/pkg/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Largest viewport side and pointer coordinate accepted from a host, in
	// pixels
	maxViewportSide = 16384

	// Largest wheel delta accepted in one event
	maxWheelDelta = 10000
)

// Connection is a WebSocket connection to one host
type Connection struct {
	id      string
	ws      *websocket.Conn
	server  *Server
	session *Session
	host    *models.Host
	limiter *rate.Limiter

	// Buffered channel for outbound messages
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewConnection creates a connection for an authenticated host
func NewConnection(ws *websocket.Conn, server *Server, host *models.Host) *Connection {
	cfg := server.config.Host
	return &Connection{
		id:      uuid.NewString(),
		ws:      ws,
		server:  server,
		session: server.session,
		host:    host,
		limiter: rate.NewLimiter(rate.Limit(cfg.CommandsPerSecond), cfg.CommandBurst),
		send:    make(chan []byte, 256),
		done:    make(chan struct{}),
	}
}

// Handle manages the connection lifecycle
func (c *Connection) Handle() {
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go c.writePump()
	c.readPump() // Blocking
}

// readPump pumps messages from the WebSocket connection to the session
func (c *Connection) readPump() {
	defer c.Close()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		if !c.limiter.Allow() {
			c.reject(network.ErrCodeRateLimited, "Too many messages")
			continue
		}

		var clientMsg network.ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Failed to parse host message: %v", err)
			c.reject(network.ErrCodeBadMessage, "Failed to parse message")
			continue
		}
		c.handleMessage(&clientMsg)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-c.server.ctx.Done():
			return
		}
	}
}

// handleMessage routes messages to the bridge or the input latch
func (c *Connection) handleMessage(msg *network.ClientMessage) {
	switch msg.Type {
	case network.MsgTypeSetTool:
		var p network.SetToolPayload
		if c.decode(msg.Payload, &p) && c.allowPaint() {
			c.session.Bridge.SubmitToolSelection(p.Name)
		}

	case network.MsgTypeToggleLabels:
		c.session.Bridge.SubmitLabelToggle()

	case network.MsgTypePointer:
		var p network.PointerPayload
		if c.decode(msg.Payload, &p) {
			if p.Inside && (!withinViewport(p.X) || !withinViewport(p.Y)) {
				c.reject(network.ErrCodeBadMessage, "Pointer outside any viewport")
				return
			}
			if p.Inside {
				c.session.Latch.SetPointer(hex.Point{X: p.X, Y: p.Y})
			} else {
				c.session.Latch.ClearPointer()
			}
		}

	case network.MsgTypeButtons:
		var p network.ButtonsPayload
		if c.decode(msg.Payload, &p) && (!p.Primary || c.allowPaint()) {
			c.session.Latch.SetPrimary(p.Primary)
		}

	case network.MsgTypeWheel:
		var p network.WheelPayload
		if c.decode(msg.Payload, &p) {
			if p.Delta < -maxWheelDelta || p.Delta > maxWheelDelta {
				c.reject(network.ErrCodeBadMessage, "Wheel delta out of range")
				return
			}
			c.session.Latch.AddWheel(p.Delta)
		}

	case network.MsgTypePan:
		var p network.PanPayload
		if c.decode(msg.Payload, &p) {
			c.session.Latch.SetPan(camera.Directions{Left: p.Left, Right: p.Right, Up: p.Up, Down: p.Down})
		}

	case network.MsgTypeViewport:
		var p network.ViewportPayload
		if c.decode(msg.Payload, &p) {
			if p.Width <= 0 || p.Height <= 0 || p.Width > maxViewportSide || p.Height > maxViewportSide {
				c.reject(network.ErrCodeBadMessage, "Viewport size out of range")
				return
			}
			c.session.Latch.SetViewport(p.Width, p.Height)
		}

	case network.MsgTypePing:
		c.SendMessage(&network.ServerMessage{
			Type:    network.MsgTypePong,
			Payload: map[string]interface{}{"timestamp": time.Now().Unix()},
		})

	default:
		log.Printf("Unknown message type: %s", msg.Type)
		c.reject(network.ErrCodeUnknownType, "Unknown message type")
	}
}

func withinViewport(v float64) bool {
	return v >= -maxViewportSide && v <= maxViewportSide
}

func (c *Connection) decode(payload json.RawMessage, v interface{}) bool {
	if len(payload) == 0 {
		return true
	}
	if err := json.Unmarshal(payload, v); err != nil {
		c.reject(network.ErrCodeBadMessage, "Invalid payload")
		return false
	}
	return true
}

func (c *Connection) allowPaint() bool {
	if c.host.CanPaint() {
		return true
	}
	c.reject(network.ErrCodeForbidden, "Host may not paint")
	return false
}

func (c *Connection) reject(code, message string) {
	c.server.metrics.MessagesRejected.WithLabelValues(code).Inc()
	c.SendError(code, message)
}

// SendMessage queues a message for the host, dropping it if the host is
// not keeping up
func (c *Connection) SendMessage(msg *network.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal message: %v", err)
		return
	}

	select {
	case <-c.done:
	case c.send <- data:
	default:
		log.Printf("Send buffer full for %s, dropping message", c.id)
	}
}

// SendError sends an error message to the host
func (c *Connection) SendError(code, message string) {
	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeError,
		Payload: network.ErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}

// Close removes the host from the session and stops the write pump
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.session.RemoveHost(c.id)
		close(c.done)
	})
}
