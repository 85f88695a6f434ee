package runtime

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tessero/recommend-go/internal/pkg/safehttp"
	"github.com/tessero/recommend-go/internal/render"
)

// Option is a functional option for configuring a Client.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	doc        *render.Document
}

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithBaseURL sets the API base URL. The default is /api, which works
// when the embedding application proxies the recommendation API under
// its own origin.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client for all API calls, replacing
// the default OpenTelemetry-instrumented transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithSafeTransport routes API calls through a transport that refuses
// loopback and private address ranges. Intended for server-side
// embeddings where the base URL comes from untrusted configuration.
func WithSafeTransport(timeout time.Duration) Option {
	return func(o *options) {
		o.httpClient = &http.Client{
			Transport: safehttp.NewTransport(timeout),
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDocument sets the document that selector-string render targets
// are resolved against. Renders that pass a Surface directly do not
// need one.
func WithDocument(doc *render.Document) Option {
	return func(o *options) {
		o.doc = doc
	}
}

// Options carries the optional query parameters shared by the retrieval
// and render operations. The zero value asks for server defaults:
// count 10 (5 for similar events), no filters. Unset fields are omitted
// from the request entirely; the server owns all filtering and ranking.
type Options struct {
	// Count is the number of items to request.
	Count int

	// Categories filters by category; sent comma-joined.
	Categories []string

	// MinPrice and MaxPrice bound the price range. Pointers so that a
	// zero price bound can be expressed.
	MinPrice *float64
	MaxPrice *float64

	// Location filters by location.
	Location string

	// StartDate and EndDate bound the event date, as opaque YYYY-MM-DD
	// strings. The client does not validate them.
	StartDate string
	EndDate   string

	// Days restricts trending results to interactions from the last N
	// days (trending requests only, server default 7).
	Days int
}
