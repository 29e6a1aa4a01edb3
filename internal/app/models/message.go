package models

import "time"

// Message is one chat message between two participants. Messages are
// immutable once created; the store is an append-only log.
type Message struct {
	ID           int64           `json:"id" db:"id"`
	SenderID     int64           `json:"sender" db:"sender_id"`
	SenderKind   ParticipantKind `json:"senderModel" db:"sender_kind"`
	ReceiverID   int64           `json:"receiver" db:"receiver_id"`
	ReceiverKind ParticipantKind `json:"receiverModel" db:"receiver_kind"`
	Body         string          `json:"message" db:"body"`

	// Reserved: written false at creation, no mutation path yet.
	Read bool `json:"read" db:"read"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Sender returns the sending participant's reference.
func (m *Message) Sender() ParticipantRef {
	return ParticipantRef{ID: m.SenderID, Kind: m.SenderKind}
}

// Receiver returns the receiving participant's reference.
func (m *Message) Receiver() ParticipantRef {
	return ParticipantRef{ID: m.ReceiverID, Kind: m.ReceiverKind}
}
