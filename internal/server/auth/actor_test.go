package auth

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorContext(t *testing.T) {
	_, err := ActorFromContext(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	want := Actor{ID: "u1", Name: "Ana", Role: models.RoleUser}
	got, err := ActorFromContext(WithActor(context.Background(), want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, got.IsAdmin())
}

func TestActor_DisplayName(t *testing.T) {
	assert.Equal(t, "Ana", Actor{Name: "Ana"}.DisplayName())
	assert.Equal(t, common.DefaultAuthorName, Actor{Name: "  "}.DisplayName())
}

func TestActorFromProfile(t *testing.T) {
	a := ActorFromProfile(&models.Profile{ID: "p1", Name: "Bruno", Role: models.RoleAdmin})
	assert.Equal(t, Actor{ID: "p1", Name: "Bruno", Role: models.RoleAdmin}, a)
	assert.True(t, a.IsAdmin())
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3nha")
	require.NoError(t, err)

	require.NoError(t, CheckPassword(hash, "s3nha"))
	require.ErrorIs(t, CheckPassword(hash, "errada"), common.ErrorUnauthorized)
}
