// Package tessero is a typed HTTP client for the Tessero recommendation
// engine API. It covers the status, recommendation, trending, similar-event,
// interaction and training endpoints. Every call is a single attempt: no
// retries, no caching, no authentication.
package tessero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DefaultBaseURL is used when no base URL is configured. A relative
	// path works when the embedding application proxies the API under
	// its own origin.
	DefaultBaseURL = "/api"

	// DefaultRecommendationCount applies to recommendations and trending
	// requests that do not set a count.
	DefaultRecommendationCount = 10

	// DefaultSimilarCount applies to similar-event requests that do not
	// set a count.
	DefaultSimilarCount = 5
)

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the structured logger used for request debugging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client is an HTTP client for the recommendation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new API client rooted at baseURL. The default
// transport is instrumented with OpenTelemetry; WithHTTPClient replaces
// it wholesale.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RecommendationQuery carries the query parameters for GET /recommendations.
// Optional fields are omitted from the request when unset; the server owns
// all filtering and ranking.
type RecommendationQuery struct {
	UserID     string
	Count      int
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	Location   string
	StartDate  string // YYYY-MM-DD, passed through opaque
	EndDate    string // YYYY-MM-DD, passed through opaque
}

func (q RecommendationQuery) values() url.Values {
	v := url.Values{}
	v.Set("user_id", q.UserID)
	count := q.Count
	if count <= 0 {
		count = DefaultRecommendationCount
	}
	v.Set("count", strconv.Itoa(count))
	if len(q.Categories) > 0 {
		v.Set("categories", strings.Join(q.Categories, ","))
	}
	if q.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	return v
}

// TrendingQuery carries the query parameters for GET /trending-events.
type TrendingQuery struct {
	Count      int
	Categories []string
	Location   string
	Days       int // interactions window in days, server default 7
}

func (q TrendingQuery) values() url.Values {
	v := url.Values{}
	count := q.Count
	if count <= 0 {
		count = DefaultRecommendationCount
	}
	v.Set("count", strconv.Itoa(count))
	if len(q.Categories) > 0 {
		v.Set("categories", strings.Join(q.Categories, ","))
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Days > 0 {
		v.Set("days", strconv.Itoa(q.Days))
	}
	return v
}

// Status retrieves the engine status.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var out Status
	if err := c.get(ctx, "/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommendations retrieves personalized recommendations. The query must
// carry a user id; anonymous fallback is the caller's policy, not the
// transport's.
func (c *Client) Recommendations(ctx context.Context, q RecommendationQuery) (*RecommendationsResponse, error) {
	var out RecommendationsResponse
	if err := c.get(ctx, "/recommendations", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrendingEvents retrieves trending events.
func (c *Client) TrendingEvents(ctx context.Context, q TrendingQuery) (*RecommendationsResponse, error) {
	var out RecommendationsResponse
	if err := c.get(ctx, "/trending-events", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimilarEvents retrieves events similar to eventID.
func (c *Client) SimilarEvents(ctx context.Context, eventID string, count int) (*SimilarEventsResponse, error) {
	if count <= 0 {
		count = DefaultSimilarCount
	}
	v := url.Values{}
	v.Set("count", strconv.Itoa(count))
	var out SimilarEventsResponse
	if err := c.get(ctx, "/similar-events/"+url.PathEscape(eventID), v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordInteraction posts one interaction record.
func (c *Client) RecordInteraction(ctx context.Context, in Interaction) (*InteractionResponse, error) {
	var out InteractionResponse
	if err := c.post(ctx, "/event-interactions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Train triggers a model (re)train, optionally uploading training data.
func (c *Client) Train(ctx context.Context, data TrainingData) (*TrainResponse, error) {
	var out TrainResponse
	if err := c.post(ctx, "/train", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	c.logger.Debug("api request", slog.String("method", http.MethodGet), slog.String("url", u))
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	c.logger.Debug("api request", slog.String("method", http.MethodPost), slog.String("url", c.baseURL+path))
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if msg := parseErrorBody(respBody); msg != "" {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "recommend-go/1.0")
}

// parseErrorBody pulls the server's error field out of a failure body,
// if the body is the API's {"error": "..."} shape.
func parseErrorBody(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error
}
