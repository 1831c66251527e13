package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"codearena/internal/common"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ProxyService forwards contest traffic to the judging backend so the
// browser and CLI talk to a single origin. Status and JSON body pass
// through unchanged; the backend stays authoritative for everything.
type ProxyService struct {
	backendURL string
	http       *http.Client
	log        zerolog.Logger
}

func NewProxyService(backendURL string) *ProxyService {
	return &ProxyService{
		backendURL: backendURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("component", "proxy_service").Logger(),
	}
}

// Forward relays one request. authorization is passed through verbatim
// so the backend can apply its own token checks on top of ours.
func (s *ProxyService) Forward(ctx context.Context, method, path string, body []byte, authorization string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.backendURL+path, reader)
	if err != nil {
		return 0, nil, common.Errorf("failed to create proxy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("backend unreachable")
		return 0, nil, common.Errorf("judging backend unreachable: %w", common.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, common.Errorf("failed to read backend response: %w", common.ErrServiceUnavailable)
	}

	return resp.StatusCode, payload, nil
}
