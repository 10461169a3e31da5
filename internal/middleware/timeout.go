package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"go-todo-api/internal/model"
)

// Timeout bounds every API request so a slow database query cannot pin
// a connection forever. The cutoff body uses the same envelope the
// handlers write.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	body, _ := json.Marshal(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    "REQUEST_TIMEOUT",
			Message: "Request timed out",
		},
	})

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
