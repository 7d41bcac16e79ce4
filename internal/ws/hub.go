// Package ws implements the live dashboard broadcast channel. Subscribers
// join a per-organization topic; a "refresh" action from any subscriber
// recomputes the dashboard snapshot and fans it out to the whole topic.
package ws

import (
	"encoding/json"
	"sync"

	"crm-dashboard-backend/internal/logger"

	"github.com/google/uuid"
)

// Envelope is the message pushed to subscribers
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks subscriptions per organization topic and fans messages out.
// Delivery is fire-and-forget: a subscriber whose send buffer is full is
// dropped rather than blocking the broadcast.
type Hub struct {
	mu     sync.RWMutex
	topics map[uuid.UUID]map[*Client]struct{}
	log    *logger.Logger
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		topics: make(map[uuid.UUID]map[*Client]struct{}),
		log:    logger.New().WithField("component", "ws_hub"),
	}
}

func (h *Hub) subscribe(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subscribers, ok := h.topics[client.orgID]
	if !ok {
		subscribers = make(map[*Client]struct{})
		h.topics[client.orgID] = subscribers
	}
	subscribers[client] = struct{}{}
	h.log.WithField("organization_id", client.orgID).Debug("subscriber joined")
}

func (h *Hub) unsubscribe(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subscribers, ok := h.topics[client.orgID]
	if !ok {
		return
	}
	if _, present := subscribers[client]; !present {
		return
	}
	delete(subscribers, client)
	close(client.send)
	if len(subscribers) == 0 {
		delete(h.topics, client.orgID)
	}
}

// Broadcast publishes an envelope to every subscriber of the organization's
// topic
func (h *Hub) Broadcast(orgID uuid.UUID, envelope Envelope) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		h.log.Errorf("failed to encode broadcast: %v", err)
		return
	}

	// Sends stay under the read lock so a concurrent unsubscribe (which
	// closes the send channel under the write lock) cannot interleave with
	// them. The sends are non-blocking, so holding the lock is cheap.
	h.mu.RLock()
	var slow []*Client
	for client := range h.topics[orgID] {
		select {
		case client.send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	// Slow consumers are dropped instead of stalling the topic.
	for _, client := range slow {
		h.unsubscribe(client)
	}
}

// SubscriberCount reports the current subscriber count of a topic
func (h *Hub) SubscriberCount(orgID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[orgID])
}
