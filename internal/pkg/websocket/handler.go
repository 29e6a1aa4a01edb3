package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mentorlink/backend/internal/app/models"
)

// Handler upgrades authenticated HTTP requests to WebSocket connections.
type Handler struct {
	hub    *Hub
	sender Sender
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, sender Sender, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		sender: sender,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for real-time chat
// @Description Upgrades the HTTP connection; the authenticated participant joins its own delivery room and may send {"event":"sendMessage","data":{...}} frames
// @Tags chat, websocket
// @Security BearerAuth
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	// Identity comes from the auth middleware; the socket itself never
	// chooses its room.
	idVal, idOK := c.Get("participantID")
	kindVal, kindOK := c.Get("participantKind")
	if !idOK || !kindOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Participant identity not found in context",
		})
		return
	}

	id, ok := idVal.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid participant ID format",
		})
		return
	}

	kind := models.ParticipantKind(kindVal.(string))
	if !kind.Valid() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid participant kind",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("participantID", id).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:         h.hub,
		conn:        conn,
		send:        make(chan []byte, 256),
		participant: models.ParticipantRef{ID: id, Kind: kind},
		sender:      h.sender,
		logger:      h.logger,
	}
	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Int64("participantID", id).
		Str("participantKind", string(kind)).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
