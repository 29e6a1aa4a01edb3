package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/app/services"
)

type memMessageStore struct {
	messages []*models.Message
}

func (s *memMessageStore) Create(ctx context.Context, m *models.Message) error {
	m.ID = int64(len(s.messages) + 1)
	m.CreatedAt = time.Unix(1700000000+m.ID, 0)
	stored := *m
	s.messages = append(s.messages, &stored)
	return nil
}

func (s *memMessageStore) Conversation(ctx context.Context, a, b models.ParticipantRef) ([]*models.Message, error) {
	out := make([]*models.Message, 0)
	for _, m := range s.messages {
		if (m.Sender() == a && m.Receiver() == b) || (m.Sender() == b && m.Receiver() == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

type allowAllLookup struct{}

func (allowAllLookup) Exists(ctx context.Context, ref models.ParticipantRef) (bool, error) {
	return true, nil
}

// identityStub stands in for the JWT middleware, injecting a fixed caller.
func identityStub(ref models.ParticipantRef) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("participantID", ref.ID)
		c.Set("participantKind", string(ref.Kind))
		c.Next()
	}
}

func newMessageRouter(t *testing.T, store *memMessageStore, caller models.ParticipantRef) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewMessageService(store, allowAllLookup{}, nil, zerolog.Nop())
	controller := NewMessageController(svc)

	router := gin.New()
	group := router.Group("/api/v1/messages", identityStub(caller))
	group.POST("/send", controller.Send)
	group.POST("/get", controller.GetConversation)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var (
	callerStudent = models.ParticipantRef{ID: 1, Kind: models.KindStudent}
	targetMentor  = models.ParticipantRef{ID: 2, Kind: models.KindCollegeMentor}
)

func sendBody(body string) map[string]interface{} {
	return map[string]interface{}{
		"sender":        callerStudent.ID,
		"senderModel":   string(callerStudent.Kind),
		"receiver":      targetMentor.ID,
		"receiverModel": string(targetMentor.Kind),
		"message":       body,
	}
}

func TestSendStoresMessage(t *testing.T) {
	store := &memMessageStore{}
	router := newMessageRouter(t, store, callerStudent)

	w := postJSON(t, router, "/api/v1/messages/send", sendBody("hello mentor"))

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.messages, 1)
	assert.Equal(t, "hello mentor", store.messages[0].Body)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID      int64  `json:"id"`
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.Data.ID)
	assert.Equal(t, "hello mentor", resp.Data.Message)
}

func TestSendRejectsMissingFields(t *testing.T) {
	store := &memMessageStore{}
	router := newMessageRouter(t, store, callerStudent)

	body := sendBody("hi")
	delete(body, "receiverModel")

	w := postJSON(t, router, "/api/v1/messages/send", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.messages)
}

func TestSendRejectsSpoofedSender(t *testing.T) {
	store := &memMessageStore{}
	// Authenticated as a different participant than the declared sender.
	router := newMessageRouter(t, store, models.ParticipantRef{ID: 9, Kind: models.KindStudent})

	w := postJSON(t, router, "/api/v1/messages/send", sendBody("as someone else"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, store.messages)
}

func TestGetConversationReturnsHistoryOldestFirst(t *testing.T) {
	store := &memMessageStore{}
	router := newMessageRouter(t, store, callerStudent)

	w := postJSON(t, router, "/api/v1/messages/send", sendBody("first"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = postJSON(t, router, "/api/v1/messages/send", sendBody("second"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Pair order reversed relative to how the messages were sent.
	w = postJSON(t, router, "/api/v1/messages/get", map[string]interface{}{
		"user1":  targetMentor.ID,
		"model1": string(targetMentor.Kind),
		"user2":  callerStudent.ID,
		"model2": string(callerStudent.Kind),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "first", resp.Data[0].Message)
	assert.Equal(t, "second", resp.Data[1].Message)
}

func TestGetConversationEmptyPair(t *testing.T) {
	router := newMessageRouter(t, &memMessageStore{}, callerStudent)

	w := postJSON(t, router, "/api/v1/messages/get", map[string]interface{}{
		"user1":  callerStudent.ID,
		"model1": string(callerStudent.Kind),
		"user2":  targetMentor.ID,
		"model2": string(targetMentor.Kind),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestGetConversationRejectsUnknownKind(t *testing.T) {
	router := newMessageRouter(t, &memMessageStore{}, callerStudent)

	w := postJSON(t, router, "/api/v1/messages/get", map[string]interface{}{
		"user1":  callerStudent.ID,
		"model1": "Ghost",
		"user2":  targetMentor.ID,
		"model2": string(targetMentor.Kind),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
