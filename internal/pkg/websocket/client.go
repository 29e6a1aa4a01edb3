package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mentorlink/backend/internal/app/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 64 * 1024
)

var (
	newline = []byte{'\n'}
	space   = []byte{' '}
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development, in production you should restrict this
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Sender persists an inbound chat message and triggers its fan-out. The
// messaging facade implements it; the hub never talks to storage itself.
type Sender interface {
	SendMessage(ctx context.Context, p *Payload) (*Payload, error)
}

// Client is a middleman between one websocket connection and the hub
type Client struct {
	hub *Hub

	// The WebSocket connection
	conn *websocket.Conn

	// Buffered channel of outbound messages
	send chan []byte

	// Identity of the connected participant, fixed at upgrade time
	participant models.ParticipantRef

	// Sink for inbound sendMessage frames
	sender Sender

	logger zerolog.Logger
}

// readPump pumps frames from the websocket connection into the application
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().
					Int64("participantID", c.participant.ID).
					Str("participantKind", string(c.participant.Kind)).
					Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().
					Err(err).
					Int64("participantID", c.participant.ID).
					Msg("Unexpected WebSocket close")
			} else {
				c.logger.Debug().
					Err(err).
					Int64("participantID", c.participant.ID).
					Msg("WebSocket read error")
			}
			break
		}

		raw = bytes.TrimSpace(bytes.Replace(raw, newline, space, -1))

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.logger.Error().
				Err(err).
				Int64("participantID", c.participant.ID).
				Str("frame", string(raw)).
				Msg("Failed to unmarshal client frame")
			continue
		}

		switch frame.Event {
		case EventJoin:
			// Already a member of the participant's room since upgrade.

		case EventSendMessage:
			c.handleSendMessage(frame.Data)

		default:
			c.logger.Debug().
				Str("event", frame.Event).
				Int64("participantID", c.participant.ID).
				Msg("Ignoring unknown frame event")
		}
	}
}

func (c *Client) handleSendMessage(data json.RawMessage) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		c.logger.Error().
			Err(err).
			Int64("participantID", c.participant.ID).
			Msg("Failed to unmarshal sendMessage payload")
		return
	}

	// Make sure a connection can't spoof messages as another participant
	p.Sender = c.participant.ID
	p.SenderModel = string(c.participant.Kind)

	if _, err := c.sender.SendMessage(context.Background(), &p); err != nil {
		c.logger.Error().
			Err(err).
			Int64("participantID", c.participant.ID).
			Int64("receiver", p.Receiver).
			Str("receiverModel", p.ReceiverModel).
			Msg("Failed to handle inbound chat message")
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued chat messages
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write(newline)
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
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
