package service

import (
	"context"
	"sync"

	"go-todo-api/internal/model"
)

// memUserStore is an in-memory UserStore mirroring the repository
// semantics: unique usernames and emails, sentinel errors, cascading
// todo deletion is out of its scope.
type memUserStore struct {
	mu              sync.Mutex
	nextID          int64
	users           map[int64]model.User
	passwordUpdates int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[int64]model.User{}}
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return model.User{}, model.ErrUserAlreadyExists
		}
	}

	s.nextID++
	u.ID = s.nextID
	s.users[u.ID] = u
	return u, nil
}

func (s *memUserStore) Update(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return model.User{}, model.ErrUserNotFound
	}
	for id, existing := range s.users {
		if id == u.ID {
			continue
		}
		if existing.Username == u.Username || existing.Email == u.Email {
			return model.User{}, model.ErrUserAlreadyExists
		}
	}

	s.users[u.ID] = u
	return u, nil
}

func (s *memUserStore) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}

	user.PasswordHash = passwordHash
	s.users[id] = user
	s.passwordUpdates++
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// memTodoStore is an in-memory TodoStore with the same ownership
// scoping as the pgx repository.
type memTodoStore struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]model.Todo
}

func newMemTodoStore() *memTodoStore {
	return &memTodoStore{todos: map[int64]model.Todo{}}
}

func (s *memTodoStore) Create(_ context.Context, t model.Todo) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	s.todos[t.ID] = t
	return t, nil
}

func (s *memTodoStore) ListByUser(_ context.Context, userID int64) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Todo, 0)
	for id := int64(1); id <= s.nextID; id++ {
		if todo, ok := s.todos[id]; ok && todo.UserID == userID {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (s *memTodoStore) FindByIDForUser(_ context.Context, id int64, userID int64) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return model.Todo{}, model.ErrTodoNotFound
	}
	return todo, nil
}

func (s *memTodoStore) Update(_ context.Context, t model.Todo) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.todos[t.ID]
	if !ok || existing.UserID != t.UserID {
		return model.Todo{}, model.ErrTodoNotFound
	}

	s.todos[t.ID] = t
	return t, nil
}

func (s *memTodoStore) Delete(_ context.Context, id int64, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return model.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}
