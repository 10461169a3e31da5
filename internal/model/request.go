package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 256), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

// UpdateUserRequest carries a partial update: nil fields are left
// untouched, a provided password is re-hashed before storage.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, validation.Length(3, 256), is.Email),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(8, 72)),
	)
}

type CreateTodoRequest struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	DueDate Date   `json:"due_date"`
}

func (r CreateTodoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Detail, validation.Required, validation.Length(1, 1000)),
		validation.Field(&r.DueDate, validation.By(dateRequired)),
	)
}

// dateRequired rejects the zero Date. Required does not see through the
// wrapper struct, so the zero value is checked explicitly.
func dateRequired(value any) error {
	date, ok := value.(Date)
	if !ok || date.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}

type UpdateTodoRequest struct {
	Title   *string `json:"title"`
	Detail  *string `json:"detail"`
	DueDate *Date   `json:"due_date"`
	Done    *bool   `json:"done"`
}

func (r UpdateTodoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.Detail, validation.NilOrNotEmpty, validation.Length(1, 1000)),
	)
}
