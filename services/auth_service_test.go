package services

import (
	"context"
	"testing"
	"time"

	"anket.link/pkg/testdb"
	"anket.link/pkg/tokens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	manager := tokens.NewManager("gizli", time.Hour)
	auth := NewAuthService(testdb.Open(t), manager)

	user, err := auth.Register(ctx, RegisterInput{Name: "Ayşe", Email: " Ayse@Example.com ", Password: "parola123"})
	require.NoError(t, err)
	assert.Equal(t, "ayse@example.com", user.Email)
	assert.NotEqual(t, "parola123", user.Password)

	_, err = auth.Register(ctx, RegisterInput{Name: "Başka", Email: "ayse@example.com", Password: "parola123"})
	assert.ErrorIs(t, err, ErrAuthEmailTaken)

	_, err = auth.Register(ctx, RegisterInput{Name: "Kısa", Email: "k@example.com", Password: "123"})
	assert.ErrorIs(t, err, ErrAuthInvalidInput)

	_, err = auth.Login(ctx, "ayse@example.com", "yanlis-parola")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	_, err = auth.Login(ctx, "yok@example.com", "parola123")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	result, err := auth.Login(ctx, "AYSE@example.com", "parola123")
	require.NoError(t, err)
	claims, err := manager.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)

	profile, err := auth.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayşe", profile.Name)

	_, err = auth.GetProfile(ctx, "olmayan")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
