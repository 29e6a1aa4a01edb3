package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/backend/internal/app/models"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(zerolog.Nop())
	go h.Run()
	return h
}

func newTestClient(h *Hub, ref models.ParticipantRef) *Client {
	return &Client{
		hub:         h,
		send:        make(chan []byte, 8),
		participant: ref,
		logger:      zerolog.Nop(),
	}
}

func join(t *testing.T, h *Hub, c *Client) {
	t.Helper()
	h.register <- c
	require.Eventually(t, func() bool {
		return h.ClientCount(c.participant) > 0
	}, time.Second, 5*time.Millisecond)
}

func receiveFrame(t *testing.T, c *Client) outboundFrame {
	t.Helper()
	select {
	case raw := <-c.send:
		var frame struct {
			Event string   `json:"event"`
			Data  *Payload `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &frame))
		return outboundFrame{Event: frame.Event, Data: frame.Data}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
		return outboundFrame{}
	}
}

func assertNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case raw := <-c.send:
		t.Fatalf("unexpected delivery: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

var (
	studentRef = models.ParticipantRef{ID: 1, Kind: models.KindStudent}
	mentorRef  = models.ParticipantRef{ID: 1, Kind: models.KindCollegeMentor}
)

func TestRelayReachesReceiverRoom(t *testing.T) {
	h := newTestHub(t)

	receiver := newTestClient(h, mentorRef)
	join(t, h, receiver)

	h.Relay(&Payload{
		ID:            42,
		Sender:        studentRef.ID,
		SenderModel:   string(studentRef.Kind),
		Receiver:      mentorRef.ID,
		ReceiverModel: string(mentorRef.Kind),
		Body:          "hello",
	})

	frame := receiveFrame(t, receiver)
	assert.Equal(t, EventReceiveMessage, frame.Event)
	require.NotNil(t, frame.Data)
	assert.Equal(t, int64(42), frame.Data.ID)
	assert.Equal(t, "hello", frame.Data.Body)
}

func TestRelayEchoesToSenderDevices(t *testing.T) {
	h := newTestHub(t)

	senderPhone := newTestClient(h, studentRef)
	receiver := newTestClient(h, mentorRef)
	join(t, h, senderPhone)
	join(t, h, receiver)

	h.Relay(&Payload{
		Sender:        studentRef.ID,
		SenderModel:   string(studentRef.Kind),
		Receiver:      mentorRef.ID,
		ReceiverModel: string(mentorRef.Kind),
		Body:          "sync me",
	})

	assert.Equal(t, "sync me", receiveFrame(t, receiver).Data.Body)
	assert.Equal(t, "sync me", receiveFrame(t, senderPhone).Data.Body)
}

func TestMultiDeviceRoomDeliversToAllConnections(t *testing.T) {
	h := newTestHub(t)

	laptop := newTestClient(h, mentorRef)
	phone := newTestClient(h, mentorRef)
	join(t, h, laptop)
	join(t, h, phone)
	assert.Equal(t, 2, h.ClientCount(mentorRef))

	h.Relay(&Payload{
		Sender:        studentRef.ID,
		SenderModel:   string(studentRef.Kind),
		Receiver:      mentorRef.ID,
		ReceiverModel: string(mentorRef.Kind),
		Body:          "both devices",
	})

	assert.Equal(t, "both devices", receiveFrame(t, laptop).Data.Body)
	assert.Equal(t, "both devices", receiveFrame(t, phone).Data.Body)
}

func TestJoinIsIdempotent(t *testing.T) {
	h := newTestHub(t)

	c := newTestClient(h, studentRef)
	join(t, h, c)
	join(t, h, c)
	assert.Equal(t, 1, h.ClientCount(studentRef))

	h.Relay(&Payload{
		Sender:        mentorRef.ID,
		SenderModel:   string(mentorRef.Kind),
		Receiver:      studentRef.ID,
		ReceiverModel: string(studentRef.Kind),
		Body:          "once",
	})

	assert.Equal(t, "once", receiveFrame(t, c).Data.Body)
	assertNoFrame(t, c)
}

func TestRelayToEmptyRoomIsDropped(t *testing.T) {
	h := newTestHub(t)

	// Nobody connected; relay must neither block nor panic.
	h.Relay(&Payload{
		Sender:        studentRef.ID,
		SenderModel:   string(studentRef.Kind),
		Receiver:      mentorRef.ID,
		ReceiverModel: string(mentorRef.Kind),
		Body:          "into the void",
	})

	require.Eventually(t, func() bool {
		return len(h.relay) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestDisconnectLeavesRoom(t *testing.T) {
	h := newTestHub(t)

	c := newTestClient(h, studentRef)
	join(t, h, c)

	h.unregister <- c
	require.Eventually(t, func() bool {
		return h.ClientCount(studentRef) == 0
	}, time.Second, 5*time.Millisecond)

	// Send channel is closed by the hub on unregister.
	_, open := <-c.send
	assert.False(t, open)
}
