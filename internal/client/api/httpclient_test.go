package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
)

func recipeFilter(query string) models.RecipeFilter {
	return models.FilterFromQuery(query)
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// newServer starts an httptest server that records every request and
// replies with the given status and body.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   data,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func newClient(srv *httptest.Server) *HTTPClient {
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestLogin_SendsCredentialsAndReturnsPair(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, `{"access":"A1","refresh":"R1"}`)
	c := newClient(srv)

	pair, err := c.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, TokenPair{Access: "A1", Refresh: "R1"}, pair)

	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/auth/login/", got.Path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(got.Body, &body))
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "pw123", body["password"])

	// Login itself is anonymous.
	assert.Empty(t, got.Header.Get("Authorization"))
}

func TestSetToken_AddsBearerHeader(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, `{"id":1,"username":"alice"}`)
	c := newClient(srv)

	c.SetToken("A1")
	_, err := c.CurrentUser(context.Background())
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	assert.Equal(t, "Bearer A1", (*reqs)[0].Header.Get("Authorization"))
	assert.NotEmpty(t, (*reqs)[0].Header.Get("X-Request-ID"))

	c.ClearToken()
	_, err = c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Empty(t, (*reqs)[1].Header.Get("Authorization"))
}

func TestMapError_Sentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tc := range tests {
		srv, _ := newServer(t, tc.status, `{}`)
		c := newClient(srv)

		_, err := c.CurrentUser(context.Background())
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}
}

func TestMapError_MessageExtractionChain(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail field", `{"detail":"identifiants invalides"}`, "identifiants invalides"},
		{"message field", `{"message":"oops"}`, "oops"},
		{"error field", `{"error":"broken"}`, "broken"},
		{"non_field_errors", `{"non_field_errors":["first","second"]}`, "first"},
		{"detail wins over message", `{"detail":"d","message":"m"}`, "d"},
		{"unknown shape", `{"weird":1}`, "request failed with status 500"},
		{"not json", `<html>`, "request failed with status 500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newServer(t, http.StatusInternalServerError, tc.body)
			c := newClient(srv)

			_, err := c.CurrentUser(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.want, apiErr.Error())
		})
	}
}

func TestMapError_AuthErrorKeepsBodyMessage(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"detail":"No active account found"}`)
	c := newClient(srv)

	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "No active account found", Message(err, "fallback"))
}

func TestMessage_FallbackWhenNoBodyMessage(t *testing.T) {
	assert.Equal(t, "fallback", Message(ErrUnavailable, "fallback"))
	assert.Equal(t, "fallback", Message(&APIError{Status: 500}, "fallback"))
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	c := newClient(srv)
	srv.Close()

	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRecipes_DecodesBareArray(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `[{"id":1,"title":"Tarte"},{"id":2,"title":"Quiche"}]`)
	c := newClient(srv)

	recipes, err := c.Recipes(context.Background(), recipeFilter("search=tarte"))
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Tarte", recipes[0].Title)
}

func TestRecipes_DecodesPaginatedShape(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, `{"count":1,"results":[{"id":3,"title":"Soupe"}]}`)
	c := newClient(srv)

	recipes, err := c.Recipes(context.Background(), recipeFilter("category=2&difficulty=1"))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, int64(3), recipes[0].ID)

	query := (*reqs)[0].Query
	assert.Contains(t, query, "category=2")
	assert.Contains(t, query, "difficulty=1")
}

func TestSetItemChecked_IssuesPatchWithFlag(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, `{}`)
	c := newClient(srv)

	require.NoError(t, c.SetItemChecked(context.Background(), 42, true))

	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "/shopping-list-items/42/", got.Path)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(got.Body, &body))
	assert.True(t, body["is_checked"])
}

func TestFavoriteAndUnfavorite_Paths(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, `{}`)
	c := newClient(srv)

	require.NoError(t, c.Favorite(context.Background(), 7))
	require.NoError(t, c.Unfavorite(context.Background(), 7))

	require.Len(t, *reqs, 2)
	assert.Equal(t, http.MethodPost, (*reqs)[0].Method)
	assert.Equal(t, "/recipes/7/favorite/", (*reqs)[0].Path)
	assert.Equal(t, http.MethodDelete, (*reqs)[1].Method)
	assert.Equal(t, "/recipes/7/favorite/", (*reqs)[1].Path)
}

func TestFromRecipe_SendsRecipeID(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, `{}`)
	c := newClient(srv)

	require.NoError(t, c.FromRecipe(context.Background(), 5, 7))

	got := (*reqs)[0]
	assert.Equal(t, "/shopping-lists/5/from_recipe/", got.Path)

	var body map[string]int64
	require.NoError(t, json.Unmarshal(got.Body, &body))
	assert.Equal(t, int64(7), body["recipe_id"])
}
