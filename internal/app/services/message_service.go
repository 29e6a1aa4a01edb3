package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/websocket"
)

// MessageService is the single entry point for chat: it validates, persists
// and then fans out every message, whether it arrived over HTTP or over a
// live socket. Persistence is the source of truth; fan-out is best-effort.
type MessageService struct {
	messages     MessageStore
	participants ParticipantLookup
	relay        MessageRelay
	logger       zerolog.Logger
}

// NewMessageService creates a new MessageService. A nil relay disables live
// fan-out; messages are still stored and served from history.
func NewMessageService(
	messages MessageStore,
	participants ParticipantLookup,
	relay MessageRelay,
	logger zerolog.Logger,
) *MessageService {
	return &MessageService{
		messages:     messages,
		participants: participants,
		relay:        relay,
		logger:       logger,
	}
}

// Send validates, stores and relays one message. The stored message is
// returned with its id and timestamp filled in. Relay happens only after a
// successful append, so a delivered message is always also in history.
func (s *MessageService) Send(ctx context.Context, message *models.Message) (*models.Message, error) {
	if strings.TrimSpace(message.Body) == "" {
		return nil, apperrors.NewValidationError("message body must not be empty")
	}
	if err := s.checkParticipant(ctx, message.Sender()); err != nil {
		return nil, err
	}
	if err := s.checkParticipant(ctx, message.Receiver()); err != nil {
		return nil, err
	}

	message.Read = false
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.relay != nil {
		s.relay.Relay(&websocket.Payload{
			ID:            message.ID,
			Sender:        message.SenderID,
			SenderModel:   string(message.SenderKind),
			Receiver:      message.ReceiverID,
			ReceiverModel: string(message.ReceiverKind),
			Body:          message.Body,
			CreatedAt:     message.CreatedAt,
		})
	}

	s.logger.Debug().
		Int64("messageID", message.ID).
		Int64("sender", message.SenderID).
		Str("senderModel", string(message.SenderKind)).
		Int64("receiver", message.ReceiverID).
		Str("receiverModel", string(message.ReceiverKind)).
		Msg("Message stored and relayed")

	return message, nil
}

// SendMessage adapts socket payloads onto Send, satisfying the hub's Sender
// interface.
func (s *MessageService) SendMessage(ctx context.Context, p *websocket.Payload) (*websocket.Payload, error) {
	message := &models.Message{
		SenderID:     p.Sender,
		SenderKind:   models.ParticipantKind(p.SenderModel),
		ReceiverID:   p.Receiver,
		ReceiverKind: models.ParticipantKind(p.ReceiverModel),
		Body:         p.Body,
	}

	stored, err := s.Send(ctx, message)
	if err != nil {
		return nil, err
	}

	p.ID = stored.ID
	p.CreatedAt = stored.CreatedAt
	return p, nil
}

// History returns every message exchanged between two participants, oldest
// first. The pair is unordered. An empty conversation is an empty slice,
// not an error.
func (s *MessageService) History(ctx context.Context, a, b models.ParticipantRef) ([]*models.Message, error) {
	if !a.Kind.Valid() {
		return nil, apperrors.NewValidationError("unknown participant kind: " + string(a.Kind))
	}
	if !b.Kind.Valid() {
		return nil, apperrors.NewValidationError("unknown participant kind: " + string(b.Kind))
	}

	return s.messages.Conversation(ctx, a, b)
}

func (s *MessageService) checkParticipant(ctx context.Context, ref models.ParticipantRef) error {
	if ref.ID <= 0 {
		return apperrors.NewValidationError("participant id must be positive")
	}
	if !ref.Kind.Valid() {
		return apperrors.NewValidationError("unknown participant kind: " + string(ref.Kind))
	}

	exists, err := s.participants.Exists(ctx, ref)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrParticipantNotFound
	}
	return nil
}
