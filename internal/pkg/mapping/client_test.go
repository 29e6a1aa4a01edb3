package mapping

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/backend/internal/pkg/apperrors"
)

func TestMapStudentReturnsSuggestionsInOrder(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/map_student", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mentors":[{"mentor_id":7,"score":0.91},{"mentor_id":3}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())

	refs, err := client.MapStudent(context.Background(), StudentProfile{
		Course:   "CS",
		Year:     2,
		DeptName: "CSE",
	})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, int64(7), refs[0].MentorID)
	assert.Equal(t, int64(3), refs[1].MentorID)

	// Request payload uses the service's field names.
	assert.Equal(t, "CS", gotBody["course"])
	assert.Equal(t, float64(2), gotBody["year"])
	assert.Equal(t, "CSE", gotBody["deptName"])
}

func TestMapStudentNonSuccessStatusIsExternalServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())

	refs, err := client.MapStudent(context.Background(), StudentProfile{Course: "CS"})
	assert.Nil(t, refs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrExternalService))
}

func TestMapStudentTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"mentors":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 20*time.Millisecond, zerolog.Nop())

	start := time.Now()
	_, err := client.MapStudent(context.Background(), StudentProfile{Course: "CS"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 150*time.Millisecond, "call must be abandoned at the timeout")
}

func TestMapStudentEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"mentors":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())

	refs, err := client.MapStudent(context.Background(), StudentProfile{Course: "CS"})
	require.NoError(t, err)
	assert.Empty(t, refs)
}
