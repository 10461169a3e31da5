package service

import (
	"context"

	"go-todo-api/internal/model"
)

// TodoStore is the persistence slice for todos. Every operation is
// keyed by the owning user so records are invisible across tenants.
type TodoStore interface {
	Create(ctx context.Context, t model.Todo) (model.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Todo, error)
	FindByIDForUser(ctx context.Context, id int64, userID int64) (model.Todo, error)
	Update(ctx context.Context, t model.Todo) (model.Todo, error)
	Delete(ctx context.Context, id int64, userID int64) error
}

type TodoService struct {
	todos TodoStore
}

func NewTodoService(todos TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) Create(ctx context.Context, userID int64, req model.CreateTodoRequest) (model.Todo, error) {
	return s.todos.Create(ctx, model.Todo{
		Title:   req.Title,
		Detail:  req.Detail,
		DueDate: req.DueDate,
		UserID:  userID,
	})
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]model.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

func (s *TodoService) Get(ctx context.Context, id int64, userID int64) (model.Todo, error) {
	return s.todos.FindByIDForUser(ctx, id, userID)
}

// Update applies a partial update to the todo identified by id, after
// confirming it belongs to userID. Absent fields keep their values.
func (s *TodoService) Update(ctx context.Context, id int64, userID int64, req model.UpdateTodoRequest) (model.Todo, error) {
	todo, err := s.todos.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return model.Todo{}, err
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Detail != nil {
		todo.Detail = *req.Detail
	}
	if req.DueDate != nil {
		todo.DueDate = *req.DueDate
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}

	return s.todos.Update(ctx, todo)
}

func (s *TodoService) Delete(ctx context.Context, id int64, userID int64) error {
	return s.todos.Delete(ctx, id, userID)
}
