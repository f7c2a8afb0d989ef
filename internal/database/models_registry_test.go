package database

import (
	"testing"

	modelspkg "skillswap/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_UsersFirst(t *testing.T) {
	all := PersistentModels()
	require.Len(t, all, 5)

	_, ok := all[0].(*modelspkg.User)
	require.True(t, ok, "users must be migrated before the tables that reference them")

	found := false
	for _, model := range all {
		if _, ok := model.(*modelspkg.Rating); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include Rating")
}
