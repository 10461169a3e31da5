package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-todo-api/internal/model"
)

// TodoRepository is ownership-scoped: every query filters by the owning
// user's id, so a record owned by someone else behaves as missing.
type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO todos (title, detail, due_date, done, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		t.Title, t.Detail, t.DueDate.Time, t.Done, t.UserID).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return t, nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, detail, due_date, done, user_id, created_at, updated_at
		 FROM todos WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		t, scanErr := scanTodo(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) FindByIDForUser(ctx context.Context, id int64, userID int64) (model.Todo, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, title, detail, due_date, done, user_id, created_at, updated_at
		 FROM todos WHERE id = $1 AND user_id = $2`, id, userID)

	t, err := scanTodo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Todo{}, model.ErrTodoNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("find todo: %w", err)
	}
	return t, nil
}

func (r *TodoRepository) Update(ctx context.Context, t model.Todo) (model.Todo, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE todos
		 SET title = $3, detail = $4, due_date = $5, done = $6, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING created_at, updated_at`,
		t.ID, t.UserID, t.Title, t.Detail, t.DueDate.Time, t.Done).
		Scan(&t.CreatedAt, &t.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Todo{}, model.ErrTodoNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("update todo: %w", err)
	}
	return t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64, userID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

func scanTodo(row pgx.Row) (model.Todo, error) {
	var (
		t       model.Todo
		dueDate time.Time
	)
	err := row.Scan(&t.ID, &t.Title, &t.Detail, &dueDate, &t.Done, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.Todo{}, err
	}
	t.DueDate = model.DateOf(dueDate)
	return t, nil
}
