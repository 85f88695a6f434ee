// Package recommend is the public API for embedding the Tessero
// recommendation client. This is the stable surface for external
// consumers; the implementation lives in internal/runtime.
package recommend

import (
	"github.com/tessero/recommend-go/internal/render"
	"github.com/tessero/recommend-go/internal/runtime"
)

// Client is the recommendation client.
// See internal/runtime.Client for full documentation.
type Client = runtime.Client

// Option is a functional option for configuring a Client.
type Option = runtime.Option

// Options carries the optional query parameters shared by the retrieval
// and render operations.
type Options = runtime.Options

// New creates a new Client with the given options.
// Example:
//
//	c := recommend.New(
//	    recommend.WithBaseURL("https://events.example.com/api"),
//	    recommend.WithDocument(doc),
//	)
var New = runtime.New

// Configuration options
var (
	WithBaseURL       = runtime.WithBaseURL
	WithHTTPClient    = runtime.WithHTTPClient
	WithSafeTransport = runtime.WithSafeTransport
	WithLogger        = runtime.WithLogger
	WithDocument      = runtime.WithDocument
)

// Data types crossing the public boundary.
type (
	Event        = runtime.Event
	SimilarEvent = runtime.SimilarEvent
	Status       = runtime.Status
	TrainingData = runtime.TrainingData

	Result              = runtime.Result
	InitResult          = runtime.InitResult
	StatusResult        = runtime.StatusResult
	InteractionResult   = runtime.InteractionResult
	EventsResult        = runtime.EventsResult
	SimilarEventsResult = runtime.SimilarEventsResult
	TrainResult         = runtime.TrainResult
	RenderResult        = runtime.RenderResult

	EventTemplate        = runtime.EventTemplate
	SimilarEventTemplate = runtime.SimilarEventTemplate
)

// Render surface contract. Surfaces optionally implement Activator to
// receive per-item click bindings; Document/Element is the bundled
// implementation used for selector-string targets and server-side
// embedding.
type (
	Surface   = render.Surface
	Activator = render.Activator
	Document  = render.Document
	Element   = render.Element
)

// NewDocument creates an empty document for selector resolution.
var NewDocument = render.NewDocument

// NewElement creates a standalone render surface.
var NewElement = render.NewElement
