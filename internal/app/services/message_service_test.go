package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/websocket"
)

type fakeMessageStore struct {
	messages []*models.Message
	nextID   int64
}

func (f *fakeMessageStore) Create(ctx context.Context, m *models.Message) error {
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = time.Unix(1700000000+f.nextID, 0)
	stored := *m
	f.messages = append(f.messages, &stored)
	return nil
}

func (f *fakeMessageStore) Conversation(ctx context.Context, a, b models.ParticipantRef) ([]*models.Message, error) {
	out := make([]*models.Message, 0)
	for _, m := range f.messages {
		if (m.Sender() == a && m.Receiver() == b) || (m.Sender() == b && m.Receiver() == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeLookup struct {
	known map[models.ParticipantRef]bool
}

func (f *fakeLookup) Exists(ctx context.Context, ref models.ParticipantRef) (bool, error) {
	return f.known[ref], nil
}

type fakeRelay struct {
	payloads []*websocket.Payload
}

func (f *fakeRelay) Relay(p *websocket.Payload) {
	f.payloads = append(f.payloads, p)
}

var (
	msgStudent = models.ParticipantRef{ID: 1, Kind: models.KindStudent}
	msgMentor  = models.ParticipantRef{ID: 2, Kind: models.KindCollegeMentor}
)

type messageFixture struct {
	svc   *MessageService
	store *fakeMessageStore
	relay *fakeRelay
}

func newMessageFixture(relay MessageRelay) *messageFixture {
	store := &fakeMessageStore{}
	lookup := &fakeLookup{known: map[models.ParticipantRef]bool{
		msgStudent: true,
		msgMentor:  true,
	}}

	var fr *fakeRelay
	if r, ok := relay.(*fakeRelay); ok {
		fr = r
	}

	return &messageFixture{
		svc:   NewMessageService(store, lookup, relay, zerolog.Nop()),
		store: store,
		relay: fr,
	}
}

func newMessage(body string) *models.Message {
	return &models.Message{
		SenderID:     msgStudent.ID,
		SenderKind:   msgStudent.Kind,
		ReceiverID:   msgMentor.ID,
		ReceiverKind: msgMentor.Kind,
		Body:         body,
	}
}

func TestSendPersistsThenRelays(t *testing.T) {
	relay := &fakeRelay{}
	fx := newMessageFixture(relay)

	stored, err := fx.svc.Send(context.Background(), newMessage("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.Read)

	require.Len(t, relay.payloads, 1)
	p := relay.payloads[0]
	assert.Equal(t, stored.ID, p.ID, "relayed payload carries the stored id")
	assert.Equal(t, "hello", p.Body)
	assert.Equal(t, msgStudent, p.SenderRef())
	assert.Equal(t, msgMentor, p.ReceiverRef())
}

func TestSendRejectsEmptyBody(t *testing.T) {
	relay := &fakeRelay{}
	fx := newMessageFixture(relay)

	_, err := fx.svc.Send(context.Background(), newMessage("   "))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, fx.store.messages, "nothing may be stored on validation failure")
	assert.Empty(t, relay.payloads)
}

func TestSendRejectsUnknownParticipant(t *testing.T) {
	fx := newMessageFixture(&fakeRelay{})

	m := newMessage("hi")
	m.ReceiverID = 99

	_, err := fx.svc.Send(context.Background(), m)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParticipantNotFound)
	assert.Empty(t, fx.store.messages)
}

func TestSendRejectsUnknownKind(t *testing.T) {
	fx := newMessageFixture(&fakeRelay{})

	m := newMessage("hi")
	m.SenderKind = "Admin"

	_, err := fx.svc.Send(context.Background(), m)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSendWithoutRelayStillStores(t *testing.T) {
	// No hub wired at all; persistence must not depend on it.
	fx := newMessageFixture(nil)

	stored, err := fx.svc.Send(context.Background(), newMessage("offline"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	require.Len(t, fx.store.messages, 1)
}

func TestSendMessageAdaptsSocketPayload(t *testing.T) {
	relay := &fakeRelay{}
	fx := newMessageFixture(relay)

	p := &websocket.Payload{
		Sender:        msgStudent.ID,
		SenderModel:   string(msgStudent.Kind),
		Receiver:      msgMentor.ID,
		ReceiverModel: string(msgMentor.Kind),
		Body:          "via socket",
	}

	out, err := fx.svc.SendMessage(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.False(t, out.CreatedAt.IsZero())
	require.Len(t, fx.store.messages, 1)
	assert.Equal(t, "via socket", fx.store.messages[0].Body)
}

func TestHistoryIsSymmetric(t *testing.T) {
	fx := newMessageFixture(&fakeRelay{})

	_, err := fx.svc.Send(context.Background(), newMessage("first"))
	require.NoError(t, err)

	reply := &models.Message{
		SenderID:     msgMentor.ID,
		SenderKind:   msgMentor.Kind,
		ReceiverID:   msgStudent.ID,
		ReceiverKind: msgStudent.Kind,
		Body:         "second",
	}
	_, err = fx.svc.Send(context.Background(), reply)
	require.NoError(t, err)

	forward, err := fx.svc.History(context.Background(), msgStudent, msgMentor)
	require.NoError(t, err)
	backward, err := fx.svc.History(context.Background(), msgMentor, msgStudent)
	require.NoError(t, err)

	require.Len(t, forward, 2)
	assert.Equal(t, forward, backward, "pair order must not matter")
	assert.Equal(t, "first", forward[0].Body)
	assert.Equal(t, "second", forward[1].Body)
}

func TestHistoryEmptyConversation(t *testing.T) {
	fx := newMessageFixture(&fakeRelay{})

	history, err := fx.svc.History(context.Background(), msgStudent, msgMentor)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)
}

func TestHistoryRejectsUnknownKind(t *testing.T) {
	fx := newMessageFixture(&fakeRelay{})

	_, err := fx.svc.History(context.Background(), msgStudent, models.ParticipantRef{ID: 2, Kind: "Ghost"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
