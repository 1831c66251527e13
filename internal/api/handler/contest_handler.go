package handler

import (
	"net/http"

	"codearena/internal/api/middleware"
	"codearena/internal/common"

	"github.com/go-chi/chi/v5"
)

// ContestHandler serves the gate-protected contest surface. The gate
// middleware has already verified the token by the time these run.
type ContestHandler struct{}

func NewContestHandler() *ContestHandler {
	return &ContestHandler{}
}

func (h *ContestHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.ContestGate)
	r.Get("/session", h.session)
}

// session echoes the verified identity so a client can resume after a
// reload without re-parsing the token itself.
func (h *ContestHandler) session(w http.ResponseWriter, r *http.Request) {
	teamID, _ := middleware.GetTeamIDFromContext(r.Context())
	teamName, _ := middleware.GetTeamNameFromContext(r.Context())
	common.RespondWithJSON(w, http.StatusOK, map[string]string{
		"team_id":   teamID,
		"team_name": teamName,
	})
}
