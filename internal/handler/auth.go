package handler

import (
	"errors"
	"net/http"

	"github.com/accrypt/accrypt-go/internal/model"
	"github.com/accrypt/accrypt-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.service.Register(req)
	switch {
	case errors.Is(err, service.ErrMissingRegisterFields):
		writeJSON(w, http.StatusBadRequest, messageResponse("Missing username, password, or email"))
	case errors.Is(err, service.ErrUserExists):
		writeJSON(w, http.StatusConflict, messageResponse("User already exists"))
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	default:
		writeJSON(w, http.StatusCreated, messageResponse("User registered successfully"))
	}
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.service.Login(req)
	switch {
	case errors.Is(err, service.ErrMissingLoginFields):
		writeJSON(w, http.StatusBadRequest, messageResponse("Missing username or password"))
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, messageResponse("Invalid username or password"))
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	default:
		writeJSON(w, http.StatusOK, messageResponse("Login successful!"))
	}
}
