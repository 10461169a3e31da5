package service

import (
	"context"

	"go-todo-api/internal/model"
)

type UserService struct {
	users  UserStore
	hasher *PasswordHasher
}

func NewUserService(users UserStore, hasher *PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Register creates a new user with a hashed password. Username and
// email uniqueness is enforced by the store; a concurrent duplicate
// registration loses with model.ErrUserAlreadyExists.
func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest) (model.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.User{}, err
	}

	return s.users.Create(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
}

// Update applies a partial update to user: only the fields present in
// req change, and an empty req leaves the record untouched.
func (s *UserService) Update(ctx context.Context, user model.User, req model.UpdateUserRequest) (model.User, error) {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return model.User{}, err
		}
		user.PasswordHash = hash
	}

	return s.users.Update(ctx, user)
}

// Delete removes the account; the store cascades to owned todos.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
