package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
)

// mockTokenProvider implements driven.TokenProvider for testing.
type mockTokenProvider struct {
	token         string
	authenticated bool
}

func (m *mockTokenProvider) GetToken(context.Context) (string, error) {
	return m.token, nil
}

func (m *mockTokenProvider) IsAuthenticated() bool {
	return m.authenticated
}

func TestClient_Search_Success(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")

		json.NewEncoder(w).Encode(domain.SearchResponse{ //nolint:errcheck
			Suggestions: []domain.Suggestion{
				{PlaceID: "p1", Name: "Hanoi", SourceType: "google"},
			},
			Total:       1,
			QueryTimeMS: 12,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	resp, err := client.Search(context.Background(), "hanoi", driven.SearchParams{Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, "hanoi", gotQuery)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "Hanoi", resp.Suggestions[0].Name)
	assert.Equal(t, 1, resp.Total)
}

func TestClient_Search_QueryParams(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"limit":         q.Get("limit"),
			"lat":           q.Get("lat"),
			"lng":           q.Get("lng"),
			"types":         q.Get("types"),
			"session_token": q.Get("session_token"),
		}
		w.Write([]byte(`{"suggestions":[],"total":0}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	_, err := client.Search(context.Background(), "beach", driven.SearchParams{
		Limit:        7,
		Latitude:     21.0285,
		Longitude:    105.8542,
		HasBias:      true,
		Types:        []string{"beach", "resort"},
		SessionToken: "tok-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "7", got["limit"])
	assert.Equal(t, "21.0285", got["lat"])
	assert.Equal(t, "105.8542", got["lng"])
	assert.Equal(t, "beach,resort", got["types"])
	assert.Equal(t, "tok-123", got["session_token"])
}

func TestClient_Search_OmitsBiasWithoutFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("lat"))
		assert.False(t, r.URL.Query().Has("lng"))
		w.Write([]byte(`{"suggestions":[],"total":0}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	_, err := client.Search(context.Background(), "beach", driven.SearchParams{
		Limit:    5,
		Latitude: 21.0, // ignored without HasBias
	})
	require.NoError(t, err)
}

func TestClient_Search_NilSuggestionsBecomeEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"total":0}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	resp, err := client.Search(context.Background(), "x y", driven.SearchParams{Limit: 5})
	require.NoError(t, err)
	assert.NotNil(t, resp.Suggestions)
	assert.Empty(t, resp.Suggestions)
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"index rebuilding"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	_, err := client.Search(context.Background(), "hanoi", driven.SearchParams{Limit: 5})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "index rebuilding", apiErr.Message)
}

func TestClient_Search_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderRetryAfter, "2")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	_, err := client.Search(context.Background(), "hanoi", driven.SearchParams{Limit: 5})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.True(t, IsRateLimited(err))
}

func TestClient_Search_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"suggestions":[],"total":0}`)) //nolint:errcheck
	}))
	defer server.Close()

	provider := &mockTokenProvider{token: "secret-token", authenticated: true}
	client := NewClient(server.URL, 0, provider)

	_, err := client.Search(context.Background(), "hanoi", driven.SearchParams{Limit: 5})
	require.NoError(t, err)
}

func TestClient_Search_UnauthenticatedSkipsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"suggestions":[],"total":0}`)) //nolint:errcheck
	}))
	defer server.Close()

	provider := &mockTokenProvider{token: "secret-token", authenticated: false}
	client := NewClient(server.URL, 0, provider)

	_, err := client.Search(context.Background(), "hanoi", driven.SearchParams{Limit: 5})
	require.NoError(t, err)
}

func TestClient_Resolve_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/resolve/p1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok-123", body["session_token"])

		w.Write([]byte(`{
			"place": {
				"place_id": "p1",
				"name": "Hanoi Old Quarter",
				"address": "Hoan Kiem, Hanoi",
				"rating": 4.6
			},
			"status": "ok"
		}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	place, err := client.Resolve(context.Background(), "p1", "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "p1", place.PlaceID)
	assert.Equal(t, "Hanoi Old Quarter", place.Name)
	assert.InDelta(t, 4.6, place.Rating, 0.001)
}

func TestClient_Resolve_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"unknown place"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	_, err := client.Resolve(context.Background(), "missing", "tok")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_ConcurrentSearchAndResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"place":{"place_id":"p1","name":"Hanoi"},"status":"ok"}`)) //nolint:errcheck
			return
		}
		w.Write([]byte(`{"suggestions":[],"total":0}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, &mockTokenProvider{token: "tok", authenticated: true})

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, errs[i] = client.Search(context.Background(), "hue", driven.SearchParams{Limit: 5})
			} else {
				_, errs[i] = client.Resolve(context.Background(), "p1", "tok-1")
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"suggestions":[],"total":0}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond, nil)

	_, err := client.Search(context.Background(), "hanoi", driven.SearchParams{Limit: 5})
	assert.Error(t, err)
}

func TestRateLimiter_CheckResponse(t *testing.T) {
	rl := NewRateLimiter()

	// Non-429 responses pass through.
	assert.NoError(t, rl.CheckResponse(&http.Response{StatusCode: http.StatusOK}))
	assert.NoError(t, rl.CheckResponse(nil))

	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{HeaderRetryAfter: []string{"3"}},
	}
	err := rl.CheckResponse(resp)

	require.Error(t, err)
	var rateLimitErr *RateLimitError
	require.ErrorAs(t, err, &rateLimitErr)
	assert.WithinDuration(t, time.Now().Add(3*time.Second), rateLimitErr.ResetAt, time.Second)
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 401}))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: 404}))
	assert.False(t, IsUnauthorized(nil))
}
