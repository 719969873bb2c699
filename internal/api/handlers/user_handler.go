package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mateusbarbosa/go-auth-api/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for registration and authentication.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthPayload defines the structure for login requests.
type AuthPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Welcome is the public root endpoint.
func (h *UserHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"msg": "welcome to the auth api"})
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
		return
	}

	err := h.service.Register(r.Context(), services.RegisterInput{
		Name:            payload.Name,
		Email:           payload.Email,
		Password:        payload.Password,
		ConfirmPassword: payload.ConfirmPassword,
	})
	if err != nil {
		status, msg := mapRegisterError(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		}
		writeJSON(w, status, map[string]string{"msg": msg})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": "user created"})
}

// Login handles user authentication and token issuance.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
		return
	}

	token, err := h.service.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		status, msg := mapLoginError(err)
		switch status {
		case http.StatusInternalServerError:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to authenticate user")
		default:
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		}
		writeJSON(w, status, map[string]string{"msg": msg})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"msg":   "authenticated",
		"token": token,
	})
}

// Get handles retrieving a user by their ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"msg": "user not found"})
			return
		}
		log.Error().Err(err).Str("user_id", id).Msg("Failed to get user by ID")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"msg": "server error"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// The flow checks fields in order and fails fast; the handler only
// translates each sentinel to its status and message.
func mapRegisterError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrPasswordRequired),
		errors.Is(err, services.ErrPasswordMismatch):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusUnprocessableEntity, "email already in use"
	default:
		return http.StatusInternalServerError, "server error"
	}
}

func mapLoginError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrPasswordRequired):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, services.ErrInvalidPassword):
		return http.StatusUnprocessableEntity, "invalid password"
	default:
		return http.StatusInternalServerError, "server error"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
