// Package mapping is the client for the external student→mentor mapping
// service. Any failure (network, timeout, non-2xx, empty result) is reported
// as an error so the caller can degrade to its local scoring fallback; the
// service is never retried within a single resolution.
package mapping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mentorlink/backend/internal/pkg/apperrors"
)

// DefaultTimeout bounds a single mapping call.
const DefaultTimeout = 5 * time.Second

// StudentProfile is the request payload for POST /map_student.
type StudentProfile struct {
	Course   string `json:"course"`
	Year     int    `json:"year"`
	DeptName string `json:"deptName"`
}

// MentorRef is one suggested mentor in the mapping response. Only the id is
// contractual; the service may attach extra fields which are ignored.
type MentorRef struct {
	MentorID int64 `json:"mentor_id"`
}

type mapStudentResponse struct {
	Mentors []MentorRef `json:"mentors"`
}

// Client calls the mapping service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a mapping client. A non-positive timeout falls back to
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// MapStudent asks the mapping service for mentor suggestions. The returned
// slice preserves the service's ranking order; callers take the first entry.
func (c *Client) MapStudent(ctx context.Context, profile StudentProfile) ([]MentorRef, error) {
	body, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mapping request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/map_student", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build mapping request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapping service call failed: %w", apperrors.NewExternalServiceError(err.Error()))
	}
	defer resp.Body.Close()

	// Any non-2xx status is treated as "no result", not a partial answer.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mapping service returned status %d: %w",
			resp.StatusCode, apperrors.ErrExternalService)
	}

	var parsed mapStudentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode mapping response: %w", apperrors.NewExternalServiceError(err.Error()))
	}

	c.logger.Debug().
		Str("course", profile.Course).
		Int("suggestions", len(parsed.Mentors)).
		Msg("Mapping service responded")

	return parsed.Mentors, nil
}
