package handler

import (
	"io"
	"net/http"

	"codearena/internal/api/middleware"
	"codearena/internal/app/service"
	"codearena/internal/common"

	"github.com/go-chi/chi/v5"
)

// Proxied request bodies are small JSON documents; source code is the
// largest field.
const maxProxyBody = 1 << 20

// ProxyHandler relays round, question and submission traffic to the
// judging backend, keeping the backend's status and body intact.
type ProxyHandler struct {
	proxy       *service.ProxyService
	leaderboard *service.LeaderboardService
}

func NewProxyHandler(proxy *service.ProxyService, leaderboard *service.LeaderboardService) *ProxyHandler {
	return &ProxyHandler{proxy: proxy, leaderboard: leaderboard}
}

func (h *ProxyHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Post("/round/start", h.forward("/api/round/start"))
		protected.Post("/round/start-timer", h.forward("/api/round/start-timer"))
		protected.Get("/questions/{teamID}", h.questions)
		protected.Post("/submissions", h.forward("/api/submissions"))
	})
	r.Get("/leaderboard", h.getLeaderboard)
}

func (h *ProxyHandler) forward(backendPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProxyBody))
		if err != nil {
			common.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}

		status, payload, err := h.proxy.Forward(r.Context(), r.Method, backendPath, body, r.Header.Get("Authorization"))
		if err != nil {
			common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
			return
		}
		writeProxied(w, status, payload)
	}
}

func (h *ProxyHandler) questions(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		common.RespondWithError(w, http.StatusBadRequest, "team id is required")
		return
	}

	status, payload, err := h.proxy.Forward(r.Context(), http.MethodGet, "/api/questions/"+teamID, nil, r.Header.Get("Authorization"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	writeProxied(w, status, payload)
}

func (h *ProxyHandler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	status, payload, err := h.leaderboard.Get(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	writeProxied(w, status, payload)
}

func writeProxied(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
