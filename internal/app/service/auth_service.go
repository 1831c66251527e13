package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codearena/internal/common"
	"codearena/internal/common/security"
	"codearena/internal/domain/model"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BackendError carries a rejection from the judging backend so the
// handler can pass the backend's status through unchanged.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string { return e.Message }

// AuthService proxies team signup to the judging backend and mints the
// contest token. Identity lives in the token's claims; the service
// itself holds no state.
type AuthService struct {
	backendURL string
	http       *http.Client
	log        zerolog.Logger
}

func NewAuthService(backendURL string) *AuthService {
	return &AuthService{
		backendURL: backendURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log.With().Str("component", "auth_service").Logger(),
	}
}

func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResponse, error) {
	if req.TeamName == "" || req.Password == "" {
		return nil, common.Errorf("team name and password are required: %w", common.ErrBadRequest)
	}
	if slug.Make(req.TeamName) == "" {
		return nil, common.Errorf("team name must contain letters or digits: %w", common.ErrValidation)
	}

	payload, err := json.Marshal(model.SignupRequest{TeamName: req.TeamName, Password: req.Password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signup payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.backendURL+"/api/teams/signup", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create signup request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(httpReq)
	if err != nil {
		s.log.Error().Err(err).Str("backend", s.backendURL).Msg("signup proxy failed")
		return nil, common.Errorf("judging backend unreachable: %w", common.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.Errorf("failed to read backend response: %w", common.ErrServiceUnavailable)
	}

	var body struct {
		TeamID  string `json:"team_id"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, common.Errorf("backend returned invalid response (status %d): %w", resp.StatusCode, common.ErrServiceUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := body.Error
		if message == "" {
			message = body.Message
		}
		if message == "" {
			message = "signup failed"
		}
		return nil, &BackendError{Status: resp.StatusCode, Message: message}
	}

	token, err := security.GenerateToken(body.TeamID, req.TeamName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info().Str("team_id", body.TeamID).Str("team_name", req.TeamName).Msg("team signed up")
	return &model.SignupResponse{Token: token, TeamID: body.TeamID}, nil
}

// Verify reports whether a token is still good. It never errors:
// invalid and absent tokens both come back as Valid=false.
func (s *AuthService) Verify(token string) model.AuthVerifyResponse {
	claims, valid := security.VerifyToken(token)
	if !valid {
		return model.AuthVerifyResponse{Valid: false}
	}
	return model.AuthVerifyResponse{
		Valid:    true,
		TeamID:   claims.TeamID,
		TeamName: claims.TeamName,
	}
}
