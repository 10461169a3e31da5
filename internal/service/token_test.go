package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo-api/internal/model"
)

const testSecret = "test-secret-key-for-signing"

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, "HS256")
	expires := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	token, err := codec.Encode(Claims{Subject: "alice", ExpiresAt: expires})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", decoded.Subject)
	assert.True(t, decoded.ExpiresAt.Equal(expires))
}

func TestTokenCodec_ExpiredTokenRejected(t *testing.T) {
	codec := NewTokenCodec(testSecret, "HS256")

	token, err := codec.Encode(Claims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenCodec_TokenWithoutExpirationRejected(t *testing.T) {
	codec := NewTokenCodec(testSecret, "HS256")

	// A correctly signed token that never expires must still be refused.
	eternal := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
	})
	signed, err := eternal.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.Decode(signed)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenCodec_TamperedTokenRejected(t *testing.T) {
	codec := NewTokenCodec(testSecret, "HS256")

	token, err := codec.Encode(Claims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	require.NoError(t, err)

	// Flip one character in each segment of the token.
	for _, idx := range []int{2, len(token) / 2, len(token) - 2} {
		mutated := []byte(token)
		if mutated[idx] == 'a' {
			mutated[idx] = 'b'
		} else {
			mutated[idx] = 'a'
		}

		_, err := codec.Decode(string(mutated))
		assert.ErrorIs(t, err, model.ErrInvalidToken, "mutation at index %d", idx)
	}
}

func TestTokenCodec_WrongSecretRejected(t *testing.T) {
	issuer := NewTokenCodec(testSecret, "HS256")
	verifier := NewTokenCodec("a-different-secret", "HS256")

	token, err := issuer.Encode(Claims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenCodec_MalformedTokenRejected(t *testing.T) {
	codec := NewTokenCodec(testSecret, "HS256")

	for _, input := range []string{"", "garbage", "a.b", strings.Repeat("x", 500)} {
		_, err := codec.Decode(input)
		assert.ErrorIs(t, err, model.ErrInvalidToken, "input %q", input)
	}
}

func TestTokenCodec_UnknownAlgorithmFailsEncoding(t *testing.T) {
	codec := NewTokenCodec(testSecret, "HS999")

	_, err := codec.Encode(Claims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	assert.ErrorIs(t, err, model.ErrTokenEncoding)
}

func TestTokenCodec_NonHMACAlgorithmFailsEncoding(t *testing.T) {
	codec := NewTokenCodec(testSecret, "RS256")

	_, err := codec.Encode(Claims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	assert.ErrorIs(t, err, model.ErrTokenEncoding)
}

func TestTokenCodec_AlternateHMACAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		codec := NewTokenCodec(testSecret, alg)

		token, err := codec.Encode(Claims{
			Subject:   "alice",
			ExpiresAt: time.Now().Add(30 * time.Minute),
		})
		require.NoError(t, err, "alg %s", alg)

		decoded, err := codec.Decode(token)
		require.NoError(t, err, "alg %s", alg)
		assert.Equal(t, "alice", decoded.Subject)
	}
}
