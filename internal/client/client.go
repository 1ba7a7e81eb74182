package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"pokedex/internal/pokemon"
	"pokedex/pkg/models"
)

// Client talks to a running api-server.
type Client struct {
	rc *resty.Client
}

type apiError struct {
	Error string `json:"error"`
}

func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

// List runs GET /api/pokemon with the given filter parameters.
func (c *Client) List(ctx context.Context, params url.Values) ([]models.Pokemon, error) {
	var out []models.Pokemon
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/pokemon")
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return out, nil
}

// Get fetches one record. An unknown id yields pokemon.ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (*models.Pokemon, error) {
	var out models.Pokemon
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/pokemon/{id}")
	if err != nil {
		return nil, fmt.Errorf("get pokemon %s: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, pokemon.ErrNotFound
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return &out, nil
}

// Debug returns the /api/debug document.
func (c *Client) Debug(ctx context.Context) (map[string]any, error) {
	return c.getMap(ctx, "/api/debug")
}

// DebugSprites returns the /api/debug/sprites document.
func (c *Client) DebugSprites(ctx context.Context) (map[string]any, error) {
	return c.getMap(ctx, "/api/debug/sprites")
}

func (c *Client) getMap(ctx context.Context, path string) (map[string]any, error) {
	var out map[string]any
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return out, nil
}

func responseError(resp *resty.Response) error {
	msg := strings.TrimSpace(resp.String())
	if e, ok := resp.Error().(*apiError); ok && e.Error != "" {
		msg = e.Error
	}
	return fmt.Errorf("%s %s: status %d: %s", resp.Request.Method, resp.Request.URL, resp.StatusCode(), msg)
}
