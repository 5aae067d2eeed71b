package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

// HTTPClient is the concrete Client over net/http. All requests go through a
// single request helper that sets the JSON content type, attaches the bearer
// token unless the endpoint is public, and applies the response policy:
//
//	401      → notify the session store (teardown + redirect happen there)
//	           and return common.ErrSessionExpired; never retried here.
//	204      → empty result, body not parsed.
//	other !2xx → *StatusError with the backend detail when present.
//	2xx      → decoded JSON body.
type HTTPClient struct {
	apiBaseURL  string
	authBaseURL string
	httpClient  *http.Client
	tokens      SessionTokens
	log         logging.Logger
}

// NewHTTPClient builds the client for the given resource and auth base URLs.
// tokens may be nil when running without authentication (public browsing).
func NewHTTPClient(apiBaseURL, authBaseURL string, timeout time.Duration, tokens SessionTokens, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		apiBaseURL:  strings.TrimRight(apiBaseURL, "/"),
		authBaseURL: strings.TrimRight(authBaseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		tokens:      tokens,
		log:         log,
	}
}

func (c *HTTPClient) request(ctx context.Context, method, rawURL string, body any, skipAuth bool, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if !skipAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Error(ctx, "request error", "method", method, "url", rawURL, "error", err)
		}
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.tokens != nil {
			c.tokens.HandleUnauthorized()
		}
		return common.ErrSessionExpired
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) productURL(parts ...string) string {
	u := c.apiBaseURL + "/products"
	for _, p := range parts {
		u += "/" + url.PathEscape(p)
	}
	return u
}

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password, "full_name": fullName}
	var resp models.AuthResponse
	if err := c.request(ctx, http.MethodPost, c.authBaseURL+"/auth/register", body, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.request(ctx, http.MethodPost, c.authBaseURL+"/auth/login", body, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListPublic(ctx context.Context) ([]*models.Product, error) {
	var raw []*models.RawProduct
	if err := c.request(ctx, http.MethodGet, c.productURL(), nil, true, &raw); err != nil {
		return nil, err
	}
	return normalizeAll(raw), nil
}

func (c *HTTPClient) GetPublic(ctx context.Context, id string) (*models.Product, error) {
	var raw models.RawProduct
	if err := c.request(ctx, http.MethodGet, c.productURL(id), nil, true, &raw); err != nil {
		return nil, err
	}
	return models.Normalize(&raw), nil
}

func (c *HTTPClient) Sell(ctx context.Context, id string) (*models.SellResult, error) {
	var result models.SellResult
	if err := c.request(ctx, http.MethodPost, c.productURL(id, "sell"), nil, false, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListAll(ctx context.Context) ([]*models.Product, error) {
	var raw []*models.RawProduct
	if err := c.request(ctx, http.MethodGet, c.productURL("admin", "all"), nil, false, &raw); err != nil {
		return nil, err
	}
	return normalizeAll(raw), nil
}

func (c *HTTPClient) Get(ctx context.Context, id string) (*models.Product, error) {
	var raw models.RawProduct
	if err := c.request(ctx, http.MethodGet, c.productURL("admin", id), nil, false, &raw); err != nil {
		return nil, err
	}
	return models.Normalize(&raw), nil
}

func (c *HTTPClient) Create(ctx context.Context, payload models.ProductPayload) (*models.Product, error) {
	var raw models.RawProduct
	if err := c.request(ctx, http.MethodPost, c.productURL(), payload, false, &raw); err != nil {
		return nil, err
	}
	return models.Normalize(&raw), nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, payload models.ProductPayload) (*models.Product, error) {
	var raw models.RawProduct
	if err := c.request(ctx, http.MethodPut, c.productURL(id), payload, false, &raw); err != nil {
		return nil, err
	}
	return models.Normalize(&raw), nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, c.productURL(id), nil, false, nil)
}

func (c *HTTPClient) Activate(ctx context.Context, id string) (*models.Product, error) {
	return c.setActive(ctx, id, true)
}

func (c *HTTPClient) Deactivate(ctx context.Context, id string) (*models.Product, error) {
	return c.setActive(ctx, id, false)
}

// setActive is an update restricted to the activation flag.
func (c *HTTPClient) setActive(ctx context.Context, id string, active bool) (*models.Product, error) {
	var raw models.RawProduct
	body := map[string]bool{"is_active": active}
	if err := c.request(ctx, http.MethodPut, c.productURL(id), body, false, &raw); err != nil {
		return nil, err
	}
	return models.Normalize(&raw), nil
}

func normalizeAll(raw []*models.RawProduct) []*models.Product {
	out := make([]*models.Product, 0, len(raw))
	for _, r := range raw {
		if p := models.Normalize(r); p != nil {
			out = append(out, p)
		}
	}
	return out
}
