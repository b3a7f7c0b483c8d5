package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/app/client/config"
)

func newTestClient(t *testing.T, server *httptest.Server) *httpClient {
	t.Helper()
	cfg := &config.Config{
		ServerAddress: strings.TrimPrefix(server.URL, "http://"),
	}
	cl, err := NewHTTPClient(cfg, slog.Default())
	require.NoError(t, err)
	return cl
}

func TestHTTPClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "maria", body["username"])

		json.NewEncoder(w).Encode(LoginResult{
			Token:  "tok-123",
			Reason: "Epilepsia",
			Status: "Ok",
		})
	}))
	defer server.Close()

	cl := newTestClient(t, server)
	result, err := cl.Login(context.Background(), "maria", "1234")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	assert.Equal(t, "tok-123", cl.token)
}

func TestHTTPClient_Login_Refused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(LoginResult{Status: "Error", Error: "Invalid credentials"})
	}))
	defer server.Close()

	cl := newTestClient(t, server)
	_, err := cl.Login(context.Background(), "maria", "wrong")

	assert.Error(t, err)
	assert.Empty(t, cl.token)
}

func TestHTTPClient_CreateRecord_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/records/diary", r.URL.Path)

		json.NewEncoder(w).Encode(CreateResult{ID: "rec-1", Status: "Ok", Flagged: true})
	}))
	defer server.Close()

	cl := newTestClient(t, server)
	cl.SetToken("tok-123")

	result, err := cl.CreateRecord(context.Background(), "diary", map[string]string{
		"mood": "Ruim",
		"text": "hoje pensei em desistir de tudo",
	})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", result.ID)
	assert.True(t, result.Flagged)
}

func TestHTTPClient_ListRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/crisis", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"records": []RecordView{
				{ID: "rec-1", Date: "2026-08-29", Fields: map[string]string{"crise": "Crise Focal"}},
			},
			"status": "Ok",
		})
	}))
	defer server.Close()

	cl := newTestClient(t, server)
	records, err := cl.ListRecords(context.Background(), "crisis", "")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Crise Focal", records[0].Fields["crise"])
}

func TestHTTPClient_Summary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/summary", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))

		json.NewEncoder(w).Encode(SummaryResult{
			Username:   "maria",
			WindowDays: 7,
			Counts:     map[string]int{"diary": 3},
			Status:     "Ok",
		})
	}))
	defer server.Close()

	cl := newTestClient(t, server)
	result, err := cl.Summary(context.Background(), 7, "")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Counts["diary"])
}

func TestHTTPClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	}))
	defer server.Close()

	cl := newTestClient(t, server)
	_, err := cl.ListRecords(context.Background(), "diary", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}
