package service

import (
	"context"
	"log/slog"
	"time"

	"go-todo-api/internal/metrics"
	"go-todo-api/internal/model"
)

// UserStore is the slice of the persistence layer the auth and user
// services depend on.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// AuthService verifies credentials, issues access tokens and resolves
// bearer tokens back to user records.
type AuthService struct {
	users    UserStore
	hasher   *PasswordHasher
	codec    *TokenCodec
	tokenTTL time.Duration
	metrics  metrics.Recorder
}

func NewAuthService(users UserStore, hasher *PasswordHasher, codec *TokenCodec, tokenTTL time.Duration, recorder metrics.Recorder) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		codec:    codec,
		tokenTTL: tokenTTL,
		metrics:  recorder,
	}
}

// Authenticate checks username/password. Unknown usernames and wrong
// passwords both come back as model.ErrInvalidCredentials so that a
// caller cannot probe which usernames exist.
func (s *AuthService) Authenticate(ctx context.Context, username string, password string) (model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.metrics.RecordLoginFailure()
		return model.User{}, model.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.metrics.RecordLoginFailure()
		return model.User{}, model.ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(user.PasswordHash) {
		s.upgradePasswordHash(ctx, user, password)
	}

	s.metrics.RecordLoginSuccess()
	return user, nil
}

// IssueToken signs an access token for username, valid for the
// configured TTL.
func (s *AuthService) IssueToken(username string) (string, error) {
	token, err := s.codec.Encode(Claims{
		Subject:   username,
		ExpiresAt: time.Now().Add(s.tokenTTL),
	})
	if err != nil {
		return "", err
	}

	s.metrics.RecordTokenIssued()
	return token, nil
}

// Resolve turns a bearer token into the user it was issued for. Every
// failure mode (bad signature, expired, missing subject, user gone)
// collapses into model.ErrUnauthorized.
func (s *AuthService) Resolve(ctx context.Context, token string) (model.User, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		s.metrics.RecordTokenRejected("decode")
		return model.User{}, model.ErrUnauthorized
	}

	if claims.Subject == "" {
		s.metrics.RecordTokenRejected("missing_subject")
		return model.User{}, model.ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		s.metrics.RecordTokenRejected("unknown_subject")
		return model.User{}, model.ErrUnauthorized
	}

	return user, nil
}

// HashPassword and VerifyPassword stay on this service because what
// counts as a valid credential is decided here, not in the hasher.
func (s *AuthService) HashPassword(plain string) (string, error) {
	return s.hasher.Hash(plain)
}

func (s *AuthService) VerifyPassword(plain string, hash string) bool {
	return s.hasher.Verify(plain, hash)
}

// upgradePasswordHash re-hashes the just-verified password with the
// current cost. Best effort: a failure here must not fail the login.
func (s *AuthService) upgradePasswordHash(ctx context.Context, user model.User, password string) {
	rehashed, err := s.hasher.Hash(password)
	if err != nil {
		slog.Warn("password rehash failed", "user_id", user.ID, "error", err)
		return
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, rehashed); err != nil {
		slog.Warn("storing upgraded password hash failed", "user_id", user.ID, "error", err)
		return
	}

	slog.Info("password hash upgraded", "user_id", user.ID)
}
