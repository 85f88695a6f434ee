package runtime

// Result is the uniform envelope every public client method returns.
// A method yields either a success payload embedding {Success: true}
// or {Success: false, Error: message}; no method panics or returns a
// Go error across the public boundary.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() Result { return Result{Success: true} }

func failure(msg string) Result { return Result{Error: msg} }

// InitResult is returned by Initialize.
type InitResult struct {
	Result
	IsReady bool    `json:"isReady"`
	Status  *Status `json:"status,omitempty"`
}

// StatusResult is returned by APIStatus.
type StatusResult struct {
	Result
	Status *Status `json:"status,omitempty"`
}

// InteractionResult is returned by RecordInteraction.
type InteractionResult struct {
	Result
	Message string `json:"message,omitempty"`
}

// EventsResult is returned by GetRecommendations and GetTrendingEvents.
// UserID is empty for trending responses, including the silent
// cold-start fallback.
type EventsResult struct {
	Result
	UserID          string  `json:"user_id,omitempty"`
	Count           int     `json:"count"`
	Recommendations []Event `json:"recommendations,omitempty"`
}

// SimilarEventsResult is returned by GetSimilarEvents.
type SimilarEventsResult struct {
	Result
	EventID       string         `json:"event_id,omitempty"`
	Count         int            `json:"count"`
	SimilarEvents []SimilarEvent `json:"similar_events,omitempty"`
}

// TrainResult is returned by TrainModel.
type TrainResult struct {
	Result
	Message      string `json:"message,omitempty"`
	TrainingTime string `json:"training_time,omitempty"`
}

// RenderResult is returned by RenderRecommendations and
// RenderSimilarEvents. Count is the number of items rendered; an empty
// state is a success with Count zero.
type RenderResult struct {
	Result
	Count int `json:"count"`
}
