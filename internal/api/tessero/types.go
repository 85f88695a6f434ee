package tessero

import "encoding/json"

// ID is an event or user identifier. The API emits both JSON strings
// and JSON numbers for ids, so unmarshalling accepts either and keeps
// the textual form.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Event is one recommendable event as returned by the API.
// The client consumes events read-only and never rewrites server data.
type Event struct {
	EventID     ID      `json:"event_id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// SimilarEvent is an Event scored against a reference event.
// SimilarityScore is server-computed, in [0,1].
type SimilarEvent struct {
	Event
	SimilarityScore float64 `json:"similarity_score"`
}

// Interaction is one telemetry record for a user/event pair.
// InteractionType is an open string (view, click, wishlist, purchase,
// ...); the server validates it.
type Interaction struct {
	UserID          string  `json:"user_id"`
	EventID         string  `json:"event_id"`
	InteractionType string  `json:"interaction_type"`
	Score           float64 `json:"score"`
}

// Status is the engine status payload from GET /status.
type Status struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	LastTrained string `json:"last_trained,omitempty"`
	EventCount  int    `json:"event_count,omitempty"`
	UserCount   int    `json:"user_count,omitempty"`
}

// StatusReady is the Status.Status value reported once the engine has
// been trained and can serve personalized results.
const StatusReady = "ready"

// RecommendationsResponse is the body of GET /recommendations and
// GET /trending-events. Trending responses reuse the recommendations
// field name and omit user_id.
type RecommendationsResponse struct {
	UserID          ID      `json:"user_id,omitempty"`
	Count           int     `json:"count"`
	Recommendations []Event `json:"recommendations"`
}

// SimilarEventsResponse is the body of GET /similar-events/{eventId}.
type SimilarEventsResponse struct {
	EventID       ID             `json:"event_id"`
	Count         int            `json:"count"`
	SimilarEvents []SimilarEvent `json:"similar_events"`
}

// InteractionResponse is the body of POST /event-interactions.
type InteractionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TrainingData is the optional payload for POST /train. When all three
// slices are empty the server trains from its own database connector.
type TrainingData struct {
	UserEventData     []map[string]any `json:"user_event_data,omitempty"`
	EventFeaturesData []map[string]any `json:"event_features_data,omitempty"`
	UserProfilesData  []map[string]any `json:"user_profiles_data,omitempty"`
}

// TrainResponse is the body of POST /train.
type TrainResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TrainingTime string `json:"training_time"`
}
