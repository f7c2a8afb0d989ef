package service

import (
	"context"
	"strings"
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpdateProfile_ReplacesAllFields(t *testing.T) {
	users := noopUserRepo()
	var got repository.ProfileUpdate
	users.updateProfileFn = func(_ context.Context, id uint, u repository.ProfileUpdate) error {
		assert.Equal(t, uint(2), id)
		got = u
		return nil
	}
	svc := NewProfileService(users, noopSkillRepo())

	profile, err := svc.UpdateProfile(context.Background(), 2, UpdateProfileInput{
		Name: "Sarah", Location: " Berlin ", IsPublic: false,
	})
	require.NoError(t, err)
	assert.Equal(t, repository.ProfileUpdate{Name: "Sarah", Location: "Berlin"}, got)
	assert.NotNil(t, profile.Skills)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	svc := NewProfileService(noopUserRepo(), noopSkillRepo())

	_, err := svc.UpdateProfile(context.Background(), 2, UpdateProfileInput{Name: " "})
	requireAppError(t, err, models.CodeValidation)

	_, err = svc.UpdateProfile(context.Background(), 2, UpdateProfileInput{Name: strings.Repeat("n", 101)})
	requireAppError(t, err, models.CodeValidation)
}

func TestProfileService_Browse_TrimsSearch(t *testing.T) {
	users := noopUserRepo()
	users.browseFn = func(_ context.Context, viewerID uint, search string) ([]models.UserSummary, error) {
		assert.Equal(t, uint(2), viewerID)
		assert.Equal(t, "design", search)
		return []models.UserSummary{{ID: 3, Username: "mike_designer"}}, nil
	}
	svc := NewProfileService(users, noopSkillRepo())

	rows, err := svc.Browse(context.Background(), 2, "  design ")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
