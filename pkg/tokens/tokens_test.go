package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("gizli", time.Hour)

	raw, err := m.Issue("u-1", "ayse@example.com", "Ayşe")
	require.NoError(t, err)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.ID)
	assert.Equal(t, "ayse@example.com", claims.Email)
	assert.Equal(t, "Ayşe", claims.Name)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	raw, err := NewManager("bir", time.Hour).Issue("u-1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = NewManager("iki", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewManager("gizli", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, err := m.Issue("u-1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestMissingSecret(t *testing.T) {
	m := NewManager("", time.Hour)
	_, err := m.Issue("u-1", "a@b.c", "A")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
