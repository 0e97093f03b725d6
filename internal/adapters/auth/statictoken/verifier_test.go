package statictoken

import (
	"context"
	"testing"

	"pet-insurance-leads/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier(t *testing.T) {
	ctx := context.Background()
	v := NewVerifier(" s3cret ")

	c, err := v.Verify(ctx, "s3cret")
	require.NoError(t, err)
	assert.True(t, c.Admin)

	for _, tok := range []string{"", "s3cre", "s3cret!", "S3CRET"} {
		_, err := v.Verify(ctx, tok)
		assert.ErrorIs(t, err, auth.ErrUnauthorized, "token %q", tok)
	}
}

func TestVerifier_EmptySecretRejectsAll(t *testing.T) {
	ctx := context.Background()
	for _, tok := range []string{"", " ", "anything"} {
		_, err := NewVerifier("").Verify(ctx, tok)
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	}

	var nilVerifier *Verifier
	_, err := nilVerifier.Verify(ctx, "x")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}
