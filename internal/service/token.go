package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-todo-api/internal/model"
)

// Claims is the payload carried inside a signed token: who it was
// issued for and when it stops being valid. It is never persisted.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenCodec signs claims into opaque bearer tokens and verifies them
// back. Signing is symmetric: issuance and verification happen in the
// same process, so a shared secret is sufficient.
type TokenCodec struct {
	secret    []byte
	algorithm string
}

func NewTokenCodec(secret string, algorithm string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), algorithm: algorithm}
}

// Encode serializes and signs claims. A misconfigured algorithm or a
// failing signer is a server fault and surfaces as
// model.ErrTokenEncoding.
func (c *TokenCodec) Encode(claims Claims) (string, error) {
	method := jwt.GetSigningMethod(c.algorithm)
	if method == nil {
		return "", fmt.Errorf("%w: unknown algorithm %q", model.ErrTokenEncoding, c.algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return "", fmt.Errorf("%w: algorithm %q is not HMAC", model.ErrTokenEncoding, c.algorithm)
	}

	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": claims.Subject,
		"exp": claims.ExpiresAt.Unix(),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrTokenEncoding, err)
	}
	return signed, nil
}

// Decode verifies the signature and expiration of tokenString; a token
// carrying no expiration claim at all is refused too. Forged,
// malformed and expired tokens all collapse into model.ErrInvalidToken;
// callers cannot tell the sub-cases apart from the return value.
func (c *TokenCodec) Decode(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Claims{}, model.ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, model.ErrInvalidToken
	}

	claims := Claims{}
	claims.Subject, _ = claimsMap["sub"].(string)
	if exp, expErr := claimsMap.GetExpirationTime(); expErr == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
