package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserNormalize(t *testing.T) {
	t.Run("copies legacy id when _id is absent", func(t *testing.T) {
		user := User{LegacyID: "u1", Name: "Ana"}

		normalized := user.Normalize()

		assert.Equal(t, "u1", normalized.ID)
	})

	t.Run("keeps _id when both are present", func(t *testing.T) {
		user := User{ID: "u1", LegacyID: "legacy"}

		normalized := user.Normalize()

		assert.Equal(t, "u1", normalized.ID)
	})

	t.Run("leaves other fields untouched", func(t *testing.T) {
		user := User{LegacyID: "u1", Name: "Ana", Email: "ana@mail.com", Role: RoleAuthor}

		normalized := user.Normalize()

		assert.Equal(t, "Ana", normalized.Name)
		assert.Equal(t, "ana@mail.com", normalized.Email)
		assert.Equal(t, RoleAuthor, normalized.Role)
	})
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleAuthor}.IsAdmin())
	assert.False(t, User{}.IsAdmin())
}
