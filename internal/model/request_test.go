package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterUserRequest_Validate(t *testing.T) {
	valid := RegisterUserRequest{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "secret123",
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing username", func(t *testing.T) {
		r := valid
		r.Username = ""
		assert.Error(t, r.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		r := valid
		r.Email = "not-an-email"
		assert.Error(t, r.Validate())
	})

	t.Run("short password", func(t *testing.T) {
		r := valid
		r.Password = "short"
		assert.Error(t, r.Validate())
	})
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	assert.NoError(t, UpdateUserRequest{}.Validate())

	email := "new@test.com"
	assert.NoError(t, UpdateUserRequest{Email: &email}.Validate())

	bad := "nope"
	assert.Error(t, UpdateUserRequest{Email: &bad}.Validate())

	empty := ""
	assert.Error(t, UpdateUserRequest{Username: &empty}.Validate())
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	valid := CreateTodoRequest{
		Title:   "buy milk",
		Detail:  "two liters",
		DueDate: NewDate(2026, time.September, 15),
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing title", func(t *testing.T) {
		r := valid
		r.Title = ""
		assert.Error(t, r.Validate())
	})

	t.Run("missing due date", func(t *testing.T) {
		r := valid
		r.DueDate = Date{}
		assert.Error(t, r.Validate())
	})
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	assert.NoError(t, UpdateTodoRequest{}.Validate())

	empty := ""
	assert.Error(t, UpdateTodoRequest{Title: &empty}.Validate())
}
