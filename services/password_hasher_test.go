package services

import (
	"context"
	"strings"
	"testing"

	"blog-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_SaltsEveryHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	first, err := h.Hash(ctx, "s3cret")
	require.NoError(t, err)
	second, err := h.Hash(ctx, "s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, "s3cret", first)
	assert.True(t, h.Verify(ctx, "s3cret", first))
	assert.True(t, h.Verify(ctx, "s3cret", second))
}

func TestPasswordHasher_Verify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 1)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "s3cret")
	require.NoError(t, err)

	assert.False(t, h.Verify(ctx, "wrong", hash))
	assert.False(t, h.Verify(ctx, "", hash))
	assert.False(t, h.Verify(ctx, "s3cret", "not-a-bcrypt-hash"))
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 1)

	_, err := h.Hash(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrEmptyPassword)
}

func TestPasswordHasher_LengthLimitCountsBytes(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 1)
	ctx := context.Background()

	_, err := h.Hash(ctx, strings.Repeat("a", 72))
	require.NoError(t, err)

	_, err = h.Hash(ctx, strings.Repeat("a", 73))
	assert.ErrorIs(t, err, models.ErrPasswordTooLong)

	// 37 runes, 74 bytes
	_, err = h.Hash(ctx, strings.Repeat("é", 37))
	assert.ErrorIs(t, err, models.ErrPasswordTooLong)
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost+1, 1)

	hash, err := h.Hash(context.Background(), "pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)

	h = NewPasswordHasher(0, 1)
	hash, err = h.Hash(context.Background(), "pw")
	require.NoError(t, err)
	cost, err = bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestPasswordHasher_CanceledContext(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 1)
	hb := h.(*bcryptHasher)
	// hold the only slot so Acquire has to wait on the context
	require.NoError(t, hb.sem.Acquire(context.Background(), 1))
	defer hb.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "pw")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, h.Verify(ctx, "pw", "$2a$04$abc"))
}
