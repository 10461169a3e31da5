package model

import "time"

type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	DueDate   Date      `json:"due_date"`
	Done      bool      `json:"done"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
