package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/search"
)

func TestClient_Movies(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/movies").
		RespondJSON(MoviesResponse{
			Movies:  []catalog.Entry{{ID: 1, Name: "Alpha", Genre: "Action"}},
			Count:   1,
			Source:  "remote",
			Version: "3",
		}).
		Build()

	resp, err := NewClient(srv.URL).Movies()
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Alpha", resp.Movies[0].Name)
	assert.Equal(t, "3", resp.Version)
}

func TestClient_TrailingSlash(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		RespondJSON(StatusResponse{Status: "ok"}).
		Build()

	resp, err := NewClient(srv.URL + "/").Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestClient_Search_Query(t *testing.T) {
	tests := []struct {
		name     string
		criteria search.Criteria
		query    string
	}{
		{"all terms", search.Criteria{Name: "a b", ID: 3, Genre: "Action"}, "genre=Action&id=3&name=a+b"},
		{"name only", search.Criteria{Name: "alpha"}, "name=alpha"},
		{"zero id omitted", search.Criteria{Genre: "drama"}, "genre=drama"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newMockServer(t).
				ExpectPath("/api/v1/movies/search").
				ExpectQuery(tt.query).
				RespondJSON(SearchResponse{Movies: []catalog.Entry{}, Source: "remote"}).
				Build()

			resp, err := NewClient(srv.URL).Search(tt.criteria)
			require.NoError(t, err)
			assert.Empty(t, resp.Movies)
		})
	}
}

func TestClient_Search_NoCriteria(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/movies/search").
		RespondJSON(SearchResponse{Count: 10, Source: "fallback"}).
		Build()

	resp, err := NewClient(srv.URL).Search(search.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Count)
	assert.Equal(t, "fallback", resp.Source)
}

func TestClient_APIError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusBadRequest, `{"error":"name must be at most 200 characters","code":"NAME_TOO_LONG"}`).
		Build()

	_, err := NewClient(srv.URL).Search(search.Criteria{Name: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "NAME_TOO_LONG", apiErr.Code)
	assert.Contains(t, err.Error(), "name must be at most 200 characters")
}

func TestClient_PlainError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusBadGateway, "upstream down\n").
		Build()

	_, err := NewClient(srv.URL).Movies()
	require.Error(t, err)
	assert.Equal(t, "server error 502: upstream down", err.Error())
}

func TestClient_ConnectionRefused(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1").Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
