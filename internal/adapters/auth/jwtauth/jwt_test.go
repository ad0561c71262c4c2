package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medical-practice/internal/ports/auth"
)

func TestIssueAndVerify(t *testing.T) {
	p := New("test-secret", time.Hour)

	tok, err := p.Issue(context.Background(), auth.Claims{UserID: "doc-1", Email: "a@b.com"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := p.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	p := New("secret-a", time.Hour)
	tok, err := p.Issue(context.Background(), auth.Claims{UserID: "doc-1"})
	require.NoError(t, err)

	other := New("secret-b", time.Hour)
	_, err = other.Verify(context.Background(), tok)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	p := New("secret", time.Minute)
	tok, err := p.Issue(context.Background(), auth.Claims{UserID: "doc-1"})
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = p.Verify(context.Background(), tok)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	p := New("secret", time.Hour)
	_, err := p.Verify(context.Background(), "not-a-token")
	assert.Error(t, err)
}
