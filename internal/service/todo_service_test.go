package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo-api/internal/model"
)

func boolptr(b bool) *bool { return &b }

func createTodo(t *testing.T, svc *TodoService, userID int64, title string) model.Todo {
	t.Helper()
	todo, err := svc.Create(context.Background(), userID, model.CreateTodoRequest{
		Title:   title,
		Detail:  "some detail",
		DueDate: model.NewDate(2026, time.September, 15),
	})
	require.NoError(t, err)
	return todo
}

func TestTodoService_CreateAndGet(t *testing.T) {
	svc := NewTodoService(newMemTodoStore())

	todo := createTodo(t, svc, 1, "buy milk")
	assert.NotZero(t, todo.ID)
	assert.Equal(t, int64(1), todo.UserID)
	assert.False(t, todo.Done)

	found, err := svc.Get(context.Background(), todo.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, todo, found)
}

func TestTodoService_ListScopedToOwner(t *testing.T) {
	svc := NewTodoService(newMemTodoStore())
	createTodo(t, svc, 1, "alice one")
	createTodo(t, svc, 1, "alice two")
	createTodo(t, svc, 2, "bob one")

	aliceTodos, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, aliceTodos, 2)
	for _, todo := range aliceTodos {
		assert.Equal(t, int64(1), todo.UserID)
	}

	bobTodos, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, bobTodos, 1)
}

func TestTodoService_OwnershipHidesForeignRecords(t *testing.T) {
	svc := NewTodoService(newMemTodoStore())
	todo := createTodo(t, svc, 1, "alice's todo")

	_, err := svc.Get(context.Background(), todo.ID, 2)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)

	_, err = svc.Update(context.Background(), todo.ID, 2, model.UpdateTodoRequest{Done: boolptr(true)})
	assert.ErrorIs(t, err, model.ErrTodoNotFound)

	err = svc.Delete(context.Background(), todo.ID, 2)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)

	// Still intact for the owner.
	found, err := svc.Get(context.Background(), todo.ID, 1)
	require.NoError(t, err)
	assert.False(t, found.Done)
}

func TestTodoService_UpdatePartial(t *testing.T) {
	svc := NewTodoService(newMemTodoStore())
	todo := createTodo(t, svc, 1, "original title")

	t.Run("empty payload changes nothing", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), todo.ID, 1, model.UpdateTodoRequest{})
		require.NoError(t, err)
		assert.Equal(t, todo, updated)
	})

	t.Run("done flag only", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), todo.ID, 1, model.UpdateTodoRequest{
			Done: boolptr(true),
		})
		require.NoError(t, err)
		assert.True(t, updated.Done)
		assert.Equal(t, "original title", updated.Title)
	})

	t.Run("due date", func(t *testing.T) {
		due := model.NewDate(2027, time.January, 1)
		updated, err := svc.Update(context.Background(), todo.ID, 1, model.UpdateTodoRequest{
			DueDate: &due,
		})
		require.NoError(t, err)
		assert.Equal(t, "2027-01-01", updated.DueDate.String())
	})
}

func TestTodoService_Delete(t *testing.T) {
	svc := NewTodoService(newMemTodoStore())
	todo := createTodo(t, svc, 1, "to be deleted")

	require.NoError(t, svc.Delete(context.Background(), todo.ID, 1))

	_, err := svc.Get(context.Background(), todo.ID, 1)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), todo.ID, 1), model.ErrTodoNotFound)
}
