// Package runtime implements the recommendation client: session
// lifecycle, retrieval policy, interaction telemetry and the rendering
// pipeline, on top of the typed API client in internal/api/tessero.
package runtime

import (
	"context"
	"log/slog"

	"github.com/tessero/recommend-go/internal/api/tessero"
	"github.com/tessero/recommend-go/internal/render"
)

// Aliases re-exported through pkg/recommend so consumers never import
// internal packages directly.
type (
	Event        = tessero.Event
	SimilarEvent = tessero.SimilarEvent
	Status       = tessero.Status
	TrainingData = tessero.TrainingData
)

// Client is a session-scoped client for the recommendation API. The
// base URL is fixed at construction; the current user id is set only by
// Initialize (empty = anonymous). A Client is intended for use from a
// single goroutine; renders against a shared surface race
// last-writer-wins by design.
type Client struct {
	api    *tessero.Client
	doc    *render.Document
	logger *slog.Logger

	userID      string
	initialized bool
}

// New creates a client. With no options it talks to the default base
// URL (/api) in anonymous mode.
func New(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	apiOpts := []tessero.ClientOption{tessero.WithLogger(o.logger)}
	if o.httpClient != nil {
		apiOpts = append(apiOpts, tessero.WithHTTPClient(o.httpClient))
	}
	return &Client{
		api:    tessero.NewClient(o.baseURL, apiOpts...),
		doc:    o.doc,
		logger: o.logger,
	}
}

// Initialize sets the session user (empty userID selects anonymous
// mode, a fully supported state) and checks the engine status. IsReady
// reflects whether the engine reported "ready". A failed status check
// yields a failure envelope and leaves the session uninitialized;
// anonymous mode by itself never fails initialization.
func (c *Client) Initialize(ctx context.Context, userID string) InitResult {
	c.userID = userID
	status, err := c.api.Status(ctx)
	if err != nil {
		c.initialized = false
		c.logger.Error("initialization failed", slog.String("error", err.Error()))
		return InitResult{Result: failure(err.Error())}
	}
	c.initialized = status.Status == tessero.StatusReady
	c.logger.Info("client initialized",
		slog.String("user_id", userID),
		slog.Bool("ready", c.initialized),
	)
	return InitResult{Result: ok(), IsReady: c.initialized, Status: status}
}

// UserID returns the current session user id, empty in anonymous mode.
func (c *Client) UserID() string { return c.userID }

// Initialized reports whether the last status check saw a ready engine.
func (c *Client) Initialized() bool { return c.initialized }

// APIStatus fetches the engine status without touching session state.
func (c *Client) APIStatus(ctx context.Context) StatusResult {
	status, err := c.api.Status(ctx)
	if err != nil {
		return StatusResult{Result: failure(err.Error())}
	}
	return StatusResult{Result: ok(), Status: status}
}

// RecordInteraction sends one interaction record for the session user.
// With no user id set it is a deliberate no-op fast path: it returns a
// failure envelope without any network call. A zero score selects the
// default of 1.0.
func (c *Client) RecordInteraction(ctx context.Context, eventID, interactionType string, score float64) InteractionResult {
	if c.userID == "" {
		return InteractionResult{Result: failure("No user ID set")}
	}
	if score == 0 {
		score = 1.0
	}
	resp, err := c.api.RecordInteraction(ctx, tessero.Interaction{
		UserID:          c.userID,
		EventID:         eventID,
		InteractionType: interactionType,
		Score:           score,
	})
	if err != nil {
		c.logger.Warn("interaction not recorded",
			slog.String("event_id", eventID),
			slog.String("interaction_type", interactionType),
			slog.String("error", err.Error()),
		)
		return InteractionResult{Result: failure(err.Error())}
	}
	return InteractionResult{Result: ok(), Message: resp.Message}
}

// GetRecommendations fetches personalized recommendations for the
// session user. In anonymous mode it silently delegates to
// GetTrendingEvents with the same options (cold start); the envelope
// carries no marker for the substitution, so callers that need to
// distinguish must check UserID themselves.
func (c *Client) GetRecommendations(ctx context.Context, opts Options) EventsResult {
	if c.userID == "" {
		return c.GetTrendingEvents(ctx, opts)
	}
	resp, err := c.api.Recommendations(ctx, tessero.RecommendationQuery{
		UserID:     c.userID,
		Count:      opts.Count,
		Categories: opts.Categories,
		MinPrice:   opts.MinPrice,
		MaxPrice:   opts.MaxPrice,
		Location:   opts.Location,
		StartDate:  opts.StartDate,
		EndDate:    opts.EndDate,
	})
	if err != nil {
		return EventsResult{Result: failure(err.Error())}
	}
	return EventsResult{
		Result:          ok(),
		UserID:          resp.UserID.String(),
		Count:           resp.Count,
		Recommendations: resp.Recommendations,
	}
}

// GetTrendingEvents fetches trending events. It serves both direct
// calls and the anonymous cold-start fallback.
func (c *Client) GetTrendingEvents(ctx context.Context, opts Options) EventsResult {
	resp, err := c.api.TrendingEvents(ctx, tessero.TrendingQuery{
		Count:      opts.Count,
		Categories: opts.Categories,
		Location:   opts.Location,
		Days:       opts.Days,
	})
	if err != nil {
		return EventsResult{Result: failure(err.Error())}
	}
	return EventsResult{
		Result:          ok(),
		Count:           resp.Count,
		Recommendations: resp.Recommendations,
	}
}

// GetSimilarEvents fetches events similar to eventID. A non-positive
// count selects the server default of 5.
func (c *Client) GetSimilarEvents(ctx context.Context, eventID string, count int) SimilarEventsResult {
	resp, err := c.api.SimilarEvents(ctx, eventID, count)
	if err != nil {
		return SimilarEventsResult{Result: failure(err.Error())}
	}
	return SimilarEventsResult{
		Result:        ok(),
		EventID:       resp.EventID.String(),
		Count:         resp.Count,
		SimilarEvents: resp.SimilarEvents,
	}
}

// TrainModel triggers a model (re)train, optionally uploading training
// data for the engine to load first.
func (c *Client) TrainModel(ctx context.Context, data TrainingData) TrainResult {
	resp, err := c.api.Train(ctx, data)
	if err != nil {
		return TrainResult{Result: failure(err.Error())}
	}
	return TrainResult{Result: ok(), Message: resp.Message, TrainingTime: resp.TrainingTime}
}
