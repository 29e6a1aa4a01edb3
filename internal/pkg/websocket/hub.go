package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mentorlink/backend/internal/app/models"
)

// WebSocket event names. The join event exists for protocol compatibility;
// a connection is joined to its participant's room at upgrade time, so an
// explicit join frame is an idempotent no-op.
const (
	EventJoin           = "join"
	EventSendMessage    = "sendMessage"
	EventReceiveMessage = "receiveMessage"
)

// Payload is the chat message shape carried over the socket. Field names
// match the HTTP messaging surface.
type Payload struct {
	// Message ID from the database, set once the message is stored
	ID int64 `json:"id,omitempty"`

	Sender        int64  `json:"sender"`
	SenderModel   string `json:"senderModel"`
	Receiver      int64  `json:"receiver"`
	ReceiverModel string `json:"receiverModel"`

	// Message body
	Body string `json:"message"`

	// Timestamp assigned by the store
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// SenderRef returns the sending participant's reference.
func (p *Payload) SenderRef() models.ParticipantRef {
	return models.ParticipantRef{ID: p.Sender, Kind: models.ParticipantKind(p.SenderModel)}
}

// ReceiverRef returns the receiving participant's reference.
func (p *Payload) ReceiverRef() models.ParticipantRef {
	return models.ParticipantRef{ID: p.Receiver, Kind: models.ParticipantKind(p.ReceiverModel)}
}

// Frame is the envelope for every socket message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outboundFrame struct {
	Event string   `json:"event"`
	Data  *Payload `json:"data"`
}

// Hub maintains the set of live connections grouped into rooms keyed by
// participant reference, and fans out relayed messages to them. Delivery is
// best-effort, at most once per connected device; durability is the message
// store's job, not the hub's.
type Hub struct {
	// Live connections per participant room. A participant may hold several
	// simultaneous connections (multi-device); all share one room.
	rooms map[models.ParticipantRef]map[*Client]bool

	// Channel for messages to fan out
	relay chan *Payload

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to the rooms map
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[models.ParticipantRef]map[*Client]bool),
		relay:      make(chan *Payload, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and message fan-out.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case payload := <-h.relay:
			h.deliver(payload)
		}
	}
}

// Relay queues a stored message for delivery to the receiver's room and, so
// the sender's other devices stay in sync, to the sender's room as well.
func (h *Hub) Relay(p *Payload) {
	h.relay <- p
}

// ClientCount returns the number of live connections in a participant's room.
func (h *Hub) ClientCount(ref models.ParticipantRef) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[ref])
}

// registerClient adds a connection to its participant's room. Registering
// the same connection twice is a no-op.
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ref := client.participant
	if _, ok := h.rooms[ref]; !ok {
		h.rooms[ref] = make(map[*Client]bool)
	}
	h.rooms[ref][client] = true

	h.logger.Info().
		Int64("participantID", ref.ID).
		Str("participantKind", string(ref.Kind)).
		Int("devices", len(h.rooms[ref])).
		Msg("Client joined room")
}

// unregisterClient removes a connection from its room, dropping the room
// once empty.
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeClientLocked(client)
}

func (h *Hub) removeClientLocked(client *Client) {
	ref := client.participant
	room, ok := h.rooms[ref]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}

	delete(room, client)
	close(client.send)
	if len(room) == 0 {
		delete(h.rooms, ref)
	}

	h.logger.Info().
		Int64("participantID", ref.ID).
		Str("participantKind", string(ref.Kind)).
		Msg("Client left room")
}

// deliver fans a payload out to the receiver's and the sender's rooms. A
// disconnected or absent receiver is not an error; the message is already
// durable and will show up in history.
func (h *Hub) deliver(p *Payload) {
	frame := outboundFrame{Event: EventReceiveMessage, Data: p}
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal payload for delivery")
		return
	}

	targets := []models.ParticipantRef{p.ReceiverRef()}
	if p.SenderRef() != p.ReceiverRef() {
		targets = append(targets, p.SenderRef())
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ref := range targets {
		room, ok := h.rooms[ref]
		if !ok {
			continue
		}
		for client := range room {
			select {
			case client.send <- data:
			default:
				// Send buffer full: the device is slow or gone. Drop it;
				// at-most-once delivery makes this safe.
				h.removeClientLocked(client)
			}
		}
	}
}
