package dto

import (
	"time"

	"github.com/mentorlink/backend/internal/app/models"
)

// SendMessageRequest represents one chat message submission. Sender and
// receiver are tagged identities; the kind fields carry the participant
// variant names.
type SendMessageRequest struct {
	Sender        int64  `json:"sender" binding:"required,min=1"`
	SenderModel   string `json:"senderModel" binding:"required"`
	Receiver      int64  `json:"receiver" binding:"required,min=1"`
	ReceiverModel string `json:"receiverModel" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

// SenderRef returns the sending participant's reference.
func (r *SendMessageRequest) SenderRef() models.ParticipantRef {
	return models.ParticipantRef{ID: r.Sender, Kind: models.ParticipantKind(r.SenderModel)}
}

// ReceiverRef returns the receiving participant's reference.
func (r *SendMessageRequest) ReceiverRef() models.ParticipantRef {
	return models.ParticipantRef{ID: r.Receiver, Kind: models.ParticipantKind(r.ReceiverModel)}
}

// GetConversationRequest identifies an unordered pair of participants whose
// message history is requested. Which participant is user1 and which is
// user2 does not matter.
type GetConversationRequest struct {
	User1  int64  `json:"user1" binding:"required,min=1"`
	Model1 string `json:"model1" binding:"required"`
	User2  int64  `json:"user2" binding:"required,min=1"`
	Model2 string `json:"model2" binding:"required"`
}

// Ref1 returns the first participant's reference.
func (r *GetConversationRequest) Ref1() models.ParticipantRef {
	return models.ParticipantRef{ID: r.User1, Kind: models.ParticipantKind(r.Model1)}
}

// Ref2 returns the second participant's reference.
func (r *GetConversationRequest) Ref2() models.ParticipantRef {
	return models.ParticipantRef{ID: r.User2, Kind: models.ParticipantKind(r.Model2)}
}

// MessageResponse represents a stored chat message in API responses
type MessageResponse struct {
	ID            int64     `json:"id"`
	Sender        int64     `json:"sender"`
	SenderModel   string    `json:"senderModel"`
	Receiver      int64     `json:"receiver"`
	ReceiverModel string    `json:"receiverModel"`
	Message       string    `json:"message"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewMessageResponse maps a message model to its response shape
func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		Sender:        m.SenderID,
		SenderModel:   string(m.SenderKind),
		Receiver:      m.ReceiverID,
		ReceiverModel: string(m.ReceiverKind),
		Message:       m.Body,
		Read:          m.Read,
		CreatedAt:     m.CreatedAt,
	}
}

// NewMessageListResponse maps a slice of message models
func NewMessageListResponse(messages []*models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewMessageResponse(m))
	}
	return out
}
