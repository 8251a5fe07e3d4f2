package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userId := primitive.NewObjectID().Hex()

	signed, err := SignToken(userId, secret, time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, userId, parsed)
}

func TestParseToken_Rejections(t *testing.T) {
	secret := "test-secret"
	userId := primitive.NewObjectID().Hex()

	t.Run("WrongSecret", func(t *testing.T) {
		signed, err := SignToken(userId, secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(signed, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		signed, err := SignToken(userId, secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(signed, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken("not.a.token", secret)
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseToken("", secret)
		assert.Error(t, err)
	})
}
