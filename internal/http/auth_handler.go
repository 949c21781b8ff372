package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/httpx"
)

type AuthHandler struct {
	gate *auth.Gate
}

func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary Staff login
// @Description Verify the staff credentials and issue a token for the mutation routes
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}

	if verrs := ValidateStruct(req); verrs != nil {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, ve := range verrs {
			details = append(details, httpx.ErrorDetail{Field: ve.Field, Message: ve.Message})
		}
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required", details)
		return
	}

	token, err := h.gate.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid username or password", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}

	httpx.JSONSuccess(r, w, map[string]string{"token": token})
}
