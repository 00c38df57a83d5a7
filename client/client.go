// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/danielhkuo/quickly-vote/models"
)

// DefaultTimeout bounds every request made by a Client
const DefaultTimeout = 10 * time.Second

// Fallback messages used when the server gives no detail
const (
	msgListPolls  = "Failed to fetch polls"
	msgGetPoll    = "Failed to fetch poll"
	msgCreatePoll = "Failed to create poll"
	msgCastVote   = "Failed to cast vote"
	msgResults    = "Failed to fetch results"
	msgDeletePoll = "Failed to delete poll"
	msgHealth     = "Health check failed"
)

// Client is a thin wrapper over the Quickly Vote REST API. Every failure
// is returned as a *models.Error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the pooled default client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New returns a client for the API served at baseURL (for example
// "http://localhost:8001")
func New(baseURL string, opts ...Option) *Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = DefaultTimeout

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPClient exposes the underlying client, mainly for tests
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListPolls(ctx context.Context) ([]models.Poll, error) {
	var polls []models.Poll
	if err := c.do(ctx, http.MethodGet, "/api/polls", nil, &polls, msgListPolls); err != nil {
		return nil, err
	}
	if polls == nil {
		polls = []models.Poll{}
	}
	return polls, nil
}

func (c *Client) GetPoll(ctx context.Context, id string) (*models.Poll, error) {
	var poll models.Poll
	if err := c.do(ctx, http.MethodGet, "/api/polls/"+url.PathEscape(id), nil, &poll, msgGetPoll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func (c *Client) CreatePoll(ctx context.Context, req models.CreatePollRequest) (*models.Poll, error) {
	var poll models.Poll
	if err := c.do(ctx, http.MethodPost, "/api/polls", req, &poll, msgCreatePoll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func (c *Client) CastVote(ctx context.Context, pollID, optionID string) (*models.CastVoteResponse, error) {
	req := models.CastVoteRequest{PollID: pollID, OptionID: optionID}
	var resp models.CastVoteResponse
	if err := c.do(ctx, http.MethodPost, "/api/votes", req, &resp, msgCastVote); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetResults(ctx context.Context, pollID string) (*models.Results, error) {
	var res models.Results
	path := "/api/polls/" + url.PathEscape(pollID) + "/results"
	if err := c.do(ctx, http.MethodGet, path, nil, &res, msgResults); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeletePoll(ctx context.Context, id string) error {
	var resp models.DeletePollResponse
	return c.do(ctx, http.MethodDelete, "/api/polls/"+url.PathEscape(id), nil, &resp, msgDeletePoll)
}

func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var resp models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &resp, msgHealth); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do sends one JSON request and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return models.NewError(models.KindUnknown, "%s", fallback)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return models.NewError(models.KindUnknown, "%s", fallback)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("request failed", "method", method, "path", path, "error", err)
		return models.NewError(models.KindUnknown, "%s", fallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Debug("undecodable response", "method", method, "path", path, "error", err)
		return models.NewError(models.KindUnknown, "%s", fallback)
	}
	return nil
}

// decodeError builds the tagged error for a non-2xx response. The body's
// detail and kind win; otherwise the status code picks the kind.
func decodeError(resp *http.Response, fallback string) error {
	var body models.ErrorResponse
	// Bodies that are not the error shape fall through to the status code
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body)

	detail := body.Detail
	if detail == "" {
		detail = fallback
	}

	kind, ok := models.ParseKind(string(body.Kind))
	if !ok {
		kind = kindForStatus(resp.StatusCode)
	}

	return &models.Error{Kind: kind, Detail: detail}
}

func kindForStatus(status int) models.ErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return models.KindValidation
	case http.StatusNotFound:
		return models.KindNotFound
	case http.StatusConflict:
		return models.KindAlreadyVoted
	default:
		return models.KindUnknown
	}
}
