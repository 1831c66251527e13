package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"codearena/internal/domain/model"
	"codearena/internal/session"

	"github.com/stretchr/testify/require"
)

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"leaderboard":[]}`))
	}))
	defer srv.Close()

	store := session.NewMemStore()
	require.NoError(t, store.Set("team-1", "Off By One", "tok-abc"))

	c := New(srv.URL, store)
	_, err := c.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestRequestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"leaderboard":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemStore())
	_, err := c.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestRequestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, session.NewMemStore())
	_, err := c.GetLeaderboard(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Contains(t, netErr.Error(), srv.URL)
}

func TestRequestNonJSONBodyIsProtocolError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream exploded</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemStore())
	_, err := c.GetLeaderboard(context.Background())

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, http.StatusBadGateway, protoErr.Status)
}

func TestRequestAPIErrorUsesBodyErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"team name already taken"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemStore())
	_, err := c.Signup(context.Background(), "Off By One", "hunter2")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "team name already taken", apiErr.Message)
}

func TestRequestAPIErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemStore())
	_, err := c.GetLeaderboard(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "request failed with status 500", apiErr.Message)
}

func TestRequest401ClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	store := session.NewMemStore()
	require.NoError(t, store.Set("team-1", "Off By One", "tok-old"))

	c := New(srv.URL, store)
	_, err := c.GetQuestions(context.Background(), "team-1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)

	require.Empty(t, store.Token(), "401 must destroy the stored session")
	require.Empty(t, store.TeamID())
	require.Empty(t, store.TeamName())
}

func TestSubmitCodeShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/submissions", r.URL.Path)
		w.Write([]byte(`{
			"status": "Partial",
			"score": 40,
			"passed_testcases": 2,
			"total_testcases": 5,
			"submission_number": 3,
			"submissions_remaining": 7,
			"details": []
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemStore())
	res, err := c.SubmitCode(context.Background(), model.SubmitRequest{
		TeamID:     "team-1",
		QuestionID: 12,
		LanguageID: 109,
		SourceCode: "print(42)",
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusPartial, res.Status)
	require.Equal(t, 7, res.SubmissionsRemaining)
}

func TestErrorsAreDistinguishable(t *testing.T) {
	apiErr := error(&APIError{Message: "nope", Status: 400})
	var netErr *NetworkError
	require.False(t, errors.As(apiErr, &netErr))
}
