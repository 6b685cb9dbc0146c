package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
//
// The access token is held on the client and injected on every request;
// an empty token means anonymous requests. Not safe for concurrent token
// mutation: the session manager is the single writer.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient returns a client rooted at baseURL (no trailing slash).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(access string) { c.token = access }
func (c *HTTPClient) ClearToken()            { c.token = "" }

// decorate sets the headers shared by every request.
func (c *HTTPClient) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// doRaw issues a request and returns the raw response body. Transport
// failures map to ErrUnavailable; non-2xx statuses map via mapError.
func (c *HTTPClient) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapError(resp.StatusCode, data)
	}
	return data, nil
}

// do issues a request and decodes the JSON response into out (skipped when
// out is nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func mapError(status int, body []byte) error {
	var kind error
	switch status {
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	}
	return &APIError{Status: status, Message: messageFromBody(body), kind: kind}
}

// decodeList accepts both response shapes the backend produces for
// collections: a bare JSON array or a paginated {"results": [...]} object.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return out, nil
	}
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return page.Results, nil
}

// --- Auth ---

func (c *HTTPClient) Login(ctx context.Context, username, password string) (TokenPair, error) {
	var pair TokenPair
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login/", nil, body, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

func (c *HTTPClient) Register(ctx context.Context, form models.RegistrationForm) error {
	return c.do(ctx, http.MethodPost, "/auth/register/", nil, form, nil)
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/password-reset/", nil, map[string]string{"email": email}, nil)
}

func (c *HTTPClient) ValidateResetToken(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/password-reset/validate_token/", nil, map[string]string{"token": token}, nil)
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/password-reset/confirm/", nil, body, nil)
}

// --- Current user ---

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me/", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCurrentUser sends the profile update as multipart form data,
// attaching the picture file when a path is given.
func (c *HTTPClient) UpdateCurrentUser(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"first_name":     update.FirstName,
		"last_name":      update.LastName,
		"bio":            update.Bio,
		"culinary_level": strconv.Itoa(update.CulinaryLevel),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("encode field %s: %w", name, err)
		}
	}

	if update.PicturePath != "" {
		file, err := os.Open(update.PicturePath)
		if err != nil {
			return nil, fmt.Errorf("open picture: %w", err)
		}
		defer file.Close()

		part, err := mw.CreateFormFile("profile_picture", filepath.Base(update.PicturePath))
		if err != nil {
			return nil, fmt.Errorf("encode picture: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, fmt.Errorf("encode picture: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/users/update_me/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapError(resp.StatusCode, data)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &user, nil
}

func (c *HTTPClient) MyProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/me/", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) Statistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	if err := c.do(ctx, http.MethodGet, "/statistics/", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- Recipes ---

func (c *HTTPClient) Recipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/recipes/", filter.Query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Recipe](data)
}

func (c *HTTPClient) Recipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d/", id), nil, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, id int64, update models.RecipeUpdate) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/recipes/%d/", id), nil, update, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d/", id), nil, nil, nil)
}

func (c *HTTPClient) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/recipes/my_recipes/", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Recipe](data)
}

func (c *HTTPClient) FavoriteRecipes(ctx context.Context) ([]models.Recipe, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/recipes/favorites/", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Recipe](data)
}

func (c *HTTPClient) Favorite(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/recipes/%d/favorite/", id), nil, nil, nil)
}

func (c *HTTPClient) Unfavorite(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d/favorite/", id), nil, nil, nil)
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/recipe-categories/", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Category](data)
}

// --- Shopping lists ---

func (c *HTTPClient) ShoppingLists(ctx context.Context) ([]models.ShoppingList, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/shopping-lists/", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.ShoppingList](data)
}

func (c *HTTPClient) ShoppingList(ctx context.Context, id int64) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shopping-lists/%d/", id), nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) CreateShoppingList(ctx context.Context, name string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := c.do(ctx, http.MethodPost, "/shopping-lists/", nil, map[string]string{"name": name}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) DeleteShoppingList(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-lists/%d/", id), nil, nil, nil)
}

func (c *HTTPClient) AddItem(ctx context.Context, listID int64, item models.NewItem) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/shopping-lists/%d/add_item/", listID), nil, item, nil)
}

func (c *HTTPClient) SetItemChecked(ctx context.Context, itemID int64, checked bool) error {
	body := map[string]bool{"is_checked": checked}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/shopping-list-items/%d/", itemID), nil, body, nil)
}

func (c *HTTPClient) DeleteItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-list-items/%d/", itemID), nil, nil, nil)
}

func (c *HTTPClient) FromRecipe(ctx context.Context, listID, recipeID int64) error {
	body := map[string]int64{"recipe_id": recipeID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/shopping-lists/%d/from_recipe/", listID), nil, body, nil)
}

// Ping probes reachability through an endpoint that accepts anonymous
// requests.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.doRaw(ctx, http.MethodGet, "/recipe-categories/", nil, nil)
	return err
}
