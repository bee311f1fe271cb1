package entity

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRefUnmarshal(t *testing.T) {
	t.Run("decodes a bare id string", func(t *testing.T) {
		var blog Blog
		err := jsoniter.Unmarshal([]byte(`{"_id":"b1","author":"u1"}`), &blog)

		require.NoError(t, err)
		assert.Equal(t, AuthorRef("u1"), blog.Author)
	})

	t.Run("decodes an embedded user object down to its id", func(t *testing.T) {
		var blog Blog
		err := jsoniter.Unmarshal([]byte(`{"_id":"b1","author":{"_id":"u1","name":"Ana"}}`), &blog)

		require.NoError(t, err)
		assert.Equal(t, AuthorRef("u1"), blog.Author)
	})

	t.Run("normalizes a legacy id inside an embedded user", func(t *testing.T) {
		var blog Blog
		err := jsoniter.Unmarshal([]byte(`{"_id":"b1","author":{"id":"u1","name":"Ana"}}`), &blog)

		require.NoError(t, err)
		assert.Equal(t, AuthorRef("u1"), blog.Author)
	})
}

func TestAuthorRefMarshal(t *testing.T) {
	// Outbound payloads always carry the bare id, never an object.
	blog := Blog{ID: "b1", Author: AuthorRef("u1")}

	encoded, err := jsoniter.Marshal(blog)

	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"author":"u1"`)
}
