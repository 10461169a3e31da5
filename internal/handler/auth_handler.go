package handler

import (
	"net/http"
	"strings"

	"go-todo-api/internal/model"
	"go-todo-api/internal/service"
	"go-todo-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token is the credential endpoint: it accepts a form-encoded
// username/password pair and answers with a bearer access token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseForm(); err != nil {
		writeError(w, apierror.BadRequest("invalid form body", ""))
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, apierror.BadRequest("username and password are required", ""))
		return
	}

	user, err := h.service.Authenticate(r.Context(), username, password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.service.IssueToken(user.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Token{
		AccessToken: token,
		TokenType:   model.TokenType,
	})
}
