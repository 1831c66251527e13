package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"codearena/internal/app/service"
	"codearena/internal/common"
	"codearena/internal/common/security"
	"codearena/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/verify", h.verify)
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		// Backend rejections keep the backend's status.
		var backendErr *service.BackendError
		if errors.As(err, &backendErr) {
			common.RespondWithError(w, backendErr.Status, backendErr.Message)
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	// Mirror the token into the cookie so the contest gate can read it.
	http.SetCookie(w, security.NewSessionCookie(resp.Token))
	common.RespondWithJSON(w, http.StatusOK, resp)
}

// verify always answers 200; an unusable token is {"valid": false},
// never an error status.
func (h *AuthHandler) verify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusOK, model.AuthVerifyResponse{Valid: false})
		return
	}
	common.RespondWithJSON(w, http.StatusOK, h.authService.Verify(req.Token))
}
