package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"crm-dashboard-backend/internal/database/models"
	"crm-dashboard-backend/internal/logger"
	"crm-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// clientMessage is the only client-to-server schema: a named action
type clientMessage struct {
	Action string `json:"action"`
}

// Client is one subscribed WebSocket connection
type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	orgID uuid.UUID
	log   *logger.Logger
}

// Server upgrades connections and serves the dashboard live channel
type Server struct {
	hub       *Hub
	dashboard *service.DashboardService
	log       *logger.Logger
}

// NewServer creates a live channel server over the given hub
func NewServer(hub *Hub, dashboard *service.DashboardService) *Server {
	return &Server{
		hub:       hub,
		dashboard: dashboard,
		log:       logger.New().WithField("component", "ws_server"),
	}
}

// Serve upgrades the request and subscribes it to the organization's topic.
// Callers must have authenticated the request and resolved the tenant; an
// org-less caller is rejected before the upgrade.
func (s *Server) Serve(c *gin.Context, org *models.Organization) {
	if org == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "organization required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Errorf("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:   s.hub,
		conn:  conn,
		send:  make(chan []byte, sendBufferSize),
		orgID: org.ID,
		log:   s.log.WithField("organization_id", org.ID.String()),
	}
	s.hub.subscribe(client)

	go client.writePump()
	go client.readPump(func() { s.refresh(org) })
}

// refresh computes the lightweight snapshot and broadcasts it to the topic
func (s *Server) refresh(org *models.Organization) {
	snapshot, err := s.dashboard.Snapshot(org)
	if err != nil {
		s.log.Errorf("snapshot computation failed: %v", err)
		return
	}
	s.hub.Broadcast(org.ID, Envelope{Type: "dashboard_update", Data: snapshot})
}

// readPump consumes client messages until the connection drops
func (c *Client) readPump(onRefresh func()) {
	defer func() {
		c.hub.unsubscribe(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debugf("connection closed unexpectedly: %v", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Action == "refresh" {
			onRefresh()
		}
	}
}

// writePump pushes broadcasts and keepalive pings to the connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
