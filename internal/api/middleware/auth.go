package middleware

import (
	"context"
	"net/http"
	"strings"

	"codearena/internal/common"
	"codearena/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	TeamIDCtxKey   contextKey = "teamID"
	TeamNameCtxKey contextKey = "teamName"
)

// Authenticator protects the proxied API routes. The token comes from
// the Authorization header (jwtauth.Verifier has already parsed it);
// claims land in the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil || token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}
		if iss, ok := claims["iss"].(string); !ok || iss != security.Issuer {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token issuer")
			return
		}

		teamID, err := security.GetTeamIDFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		teamName, err := security.GetTeamNameFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), TeamIDCtxKey, teamID)
		ctx = context.WithValue(ctx, TeamNameCtxKey, teamName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContestGate protects /contest pages. The token is read from the
// contest_token cookie first, then the Authorization header. A missing
// token redirects to the root; an invalid one additionally clears the
// cookie so the browser stops presenting it.
func ContestGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(security.SessionCookie); err == nil {
			token = cookie.Value
		}
		if token == "" {
			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		claims, valid := security.VerifyToken(token)
		if !valid {
			http.SetCookie(w, security.ClearSessionCookie())
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), TeamIDCtxKey, claims.TeamID)
		ctx = context.WithValue(ctx, TeamNameCtxKey, claims.TeamName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to get the team id from context.
func GetTeamIDFromContext(ctx context.Context) (string, bool) {
	teamID, ok := ctx.Value(TeamIDCtxKey).(string)
	return teamID, ok
}

// Helper to get the team name from context.
func GetTeamNameFromContext(ctx context.Context) (string, bool) {
	teamName, ok := ctx.Value(TeamNameCtxKey).(string)
	return teamName, ok
}
