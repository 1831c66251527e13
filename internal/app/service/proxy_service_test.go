package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codearena/internal/common"

	"github.com/stretchr/testify/require"
)

func TestForwardPassesStatusBodyAndAuthThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/submissions", r.URL.Path)
		require.Equal(t, "Bearer some-token", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "team-7", req["team_id"])

		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "Submission limit reached for this question!"}`))
	}))
	defer backend.Close()

	svc := NewProxyService(backend.URL)
	status, payload, err := svc.Forward(context.Background(), http.MethodPost, "/api/submissions",
		[]byte(`{"team_id": "team-7"}`), "Bearer some-token")

	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, status)
	require.JSONEq(t, `{"error": "Submission limit reached for this question!"}`, string(payload))
}

func TestForwardBackendUnreachable(t *testing.T) {
	svc := NewProxyService("http://127.0.0.1:1")

	_, _, err := svc.Forward(context.Background(), http.MethodGet, "/api/leaderboard", nil, "")
	require.ErrorIs(t, err, common.ErrServiceUnavailable)
}

func TestLeaderboardGetWithoutCache(t *testing.T) {
	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/api/leaderboard", r.URL.Path)
		w.Write([]byte(`{"leaderboard": []}`))
	}))
	defer backend.Close()

	svc := NewLeaderboardService(NewProxyService(backend.URL), nil, 0)

	for i := 0; i < 2; i++ {
		status, payload, err := svc.Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"leaderboard": []}`, string(payload))
	}
	// No cache configured, so every read reaches the backend.
	require.Equal(t, 2, hits)
}

func TestLeaderboardGetBackendErrorNotCached(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "judge offline"}`))
	}))
	defer backend.Close()

	svc := NewLeaderboardService(NewProxyService(backend.URL), nil, 0)

	status, payload, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, http.StatusBadGateway, status)
	require.JSONEq(t, `{"error": "judge offline"}`, string(payload))
}
