package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad"), fiber.StatusBadRequest},
		{"uniqueness conflict", NewConflictError("taken"), fiber.StatusBadRequest},
		{"state conflict", NewStateConflictError("not pending"), fiber.StatusConflict},
		{"unauthorized", NewUnauthorizedError("no"), fiber.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), fiber.StatusForbidden},
		{"not found", NewNotFoundError("Swap request", 3), fiber.StatusNotFound},
		{"invalid transition", NewInvalidTransitionError("rejected", "accepted"), fiber.StatusConflict},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestAppError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")

	nf := NewNotFoundError("User", 42)
	assert.Equal(t, "User not found", nf.Message)
	assert.Contains(t, nf.Error(), "User 42")
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		wantBody ErrorResponse
	}{
		{
			name:     "validation message is passed through",
			err:      NewValidationError("Invalid status"),
			status:   fiber.StatusBadRequest,
			wantBody: ErrorResponse{Error: "Invalid status", Code: CodeValidation},
		},
		{
			name:     "internal cause is hidden",
			err:      NewInternalError(errors.New("pq: connection refused")),
			status:   fiber.StatusInternalServerError,
			wantBody: ErrorResponse{Error: "Internal server error", Code: CodeInternal},
		},
		{
			name:     "foreign error becomes internal",
			err:      errors.New("raw"),
			status:   fiber.StatusInternalServerError,
			wantBody: ErrorResponse{Error: "Internal server error", Code: CodeInternal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return RespondWithError(c, tt.status, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantBody, body)
			assert.NotContains(t, string(raw), "connection refused")
		})
	}
}

func TestEnums(t *testing.T) {
	assert.True(t, SkillTypeOffered.Valid())
	assert.True(t, SkillTypeWanted.Valid())
	assert.False(t, SkillType("teaching").Valid())

	assert.True(t, SkillLevelIntermediate.Valid())
	assert.False(t, SkillLevel("beginner").Valid())

	assert.False(t, SwapStatusPending.IsTransitionTarget())
	assert.True(t, SwapStatusCancelled.IsTransitionTarget())
	assert.False(t, SwapStatus("done").IsTransitionTarget())
}

func TestSwapRequest_Participants(t *testing.T) {
	s := &SwapRequest{RequesterID: 1, RequestedID: 2}

	assert.True(t, s.IsParticipant(1))
	assert.True(t, s.IsParticipant(2))
	assert.False(t, s.IsParticipant(3))
	assert.Equal(t, uint(2), s.Counterparty(1))
	assert.Equal(t, uint(1), s.Counterparty(2))
}
