// Package client is the typed HTTP surface over the contest gateway.
// Every remote operation goes through one request core that attaches
// the bearer token and normalizes failures into NetworkError,
// ProtocolError or APIError. No operation retries automatically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"codearena/internal/domain/model"
	"codearena/internal/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     zerolog.Logger
}

func New(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		store: store,
		log:   log.With().Str("component", "api_client").Logger(),
	}
}

// SetTimeout overrides the default 30s request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.http.Timeout = timeout
}

func (c *Client) request(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Host: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Host: c.baseURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return &ProtocolError{Status: resp.StatusCode}
		}

		// An expired or revoked token means the session is over.
		if resp.StatusCode == http.StatusUnauthorized {
			if err := c.store.Clear(); err != nil {
				c.log.Warn().Err(err).Msg("failed to clear session after 401")
			}
		}

		message := body.Error
		if message == "" {
			message = body.Message
		}
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Message: message, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &ProtocolError{Status: resp.StatusCode}
		}
	}
	return nil
}

// Signup registers the team through the gateway, which proxies the
// backend and mints the contest token.
func (c *Client) Signup(ctx context.Context, teamName, password string) (*model.SignupResponse, error) {
	var resp model.SignupResponse
	err := c.request(ctx, http.MethodPost, "/api/auth/signup", model.SignupRequest{
		TeamName: teamName,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyAuth checks that the stored token is still valid.
func (c *Client) VerifyAuth(ctx context.Context, token string) (*model.AuthVerifyResponse, error) {
	var resp model.AuthVerifyResponse
	err := c.request(ctx, http.MethodPost, "/api/auth/verify", map[string]string{
		"token": token,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) StartRound(ctx context.Context, teamID string) (*model.RoundStartResponse, error) {
	var resp model.RoundStartResponse
	err := c.request(ctx, http.MethodPost, "/api/round/start", map[string]string{
		"team_id": teamID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) StartTimer(ctx context.Context, teamID string) (*model.StartTimerResponse, error) {
	var resp model.StartTimerResponse
	err := c.request(ctx, http.MethodPost, "/api/round/start-timer", map[string]string{
		"team_id": teamID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetQuestions(ctx context.Context, teamID string) (*model.ContestSnapshot, error) {
	var resp model.ContestSnapshot
	if err := c.request(ctx, http.MethodGet, "/api/questions/"+teamID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SubmitCode(ctx context.Context, req model.SubmitRequest) (*model.SubmissionResult, error) {
	var resp model.SubmissionResult
	if err := c.request(ctx, http.MethodPost, "/api/submissions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetLeaderboard(ctx context.Context) (*model.LeaderboardResponse, error) {
	var resp model.LeaderboardResponse
	if err := c.request(ctx, http.MethodGet, "/api/leaderboard", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
