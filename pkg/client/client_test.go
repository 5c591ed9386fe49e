package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGetEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[{"id":"e1","title":"GBM","start":"2025-11-10","tags":["Weekly"],"status":"Scheduled","url":"u"}]}`))
	}))
	defer server.Close()

	events, err := NewClient(server.URL + "/").GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "GBM", events[0].Title)
	assert.Equal(t, []string{"Weekly"}, events[0].Tags)
}

func TestClientGetTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"leadership":[{"id":"1","name":"Ana","role":"President"}],"core":[],"hallOfFame":[{"id":"2","name":"Cai","role":"Alumni","hallOfFame":true}]}`))
	}))
	defer server.Close()

	roster, err := NewClient(server.URL).GetTeam(context.Background())
	require.NoError(t, err)
	assert.Len(t, roster.Leadership, 1)
	assert.Empty(t, roster.Core)
	require.Len(t, roster.HallOfFame, 1)
	assert.True(t, roster.HallOfFame[0].HallOfFame)
}

func TestClientGetResources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resources.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"resources":[{"id":"cs50","title":"CS50","category":"Classes"}]}`))
	}))
	defer server.Close()

	resources, err := NewClient(server.URL).GetResources(context.Background())
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Classes", resources[0].Category)
}

func TestClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized: Check your API token and database permissions","details":"Make sure your integration is shared with the team database","code":"UNAUTHORIZED"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetTeam(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
	assert.Equal(t, "Unauthorized: Check your API token and database permissions", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "team database")
}

func TestClientAPIErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetEvents(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to fetch (502)", apiErr.Message)
}

func TestClientHealthCheck(t *testing.T) {
	status := "ok"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"` + status + `","environment":"development","datasets":{"events":true,"team":false}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	health, err := c.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "development", health.Environment)
	assert.Equal(t, map[string]bool{"events": true, "team": false}, health.Datasets)

	status = "degraded"
	_, err = c.HealthCheck(context.Background())
	assert.Error(t, err)
}
