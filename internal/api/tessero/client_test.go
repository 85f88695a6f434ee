package tessero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept header to be application/json, got %q", r.Header.Get("Accept"))
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "recommend-go/") {
			t.Errorf("unexpected User-Agent: %q", r.Header.Get("User-Agent"))
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{
  "status": "ready",
  "last_trained": "2026-08-20 14:02:11",
  "event_count": 420,
  "user_count": 1300
}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	status, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.Status != StatusReady {
		t.Errorf("expected status ready, got %q", status.Status)
	}
	if status.EventCount != 420 || status.UserCount != 1300 {
		t.Errorf("unexpected counts: %+v", status)
	}
}

func TestRecommendationsQueryMinimal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommendations" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if len(q) != 2 {
			t.Errorf("expected exactly user_id and count, got %v", q)
		}
		if q.Get("user_id") != "u1" {
			t.Errorf("user_id = %q, want u1", q.Get("user_id"))
		}
		if q.Get("count") != "6" {
			t.Errorf("count = %q, want 6", q.Get("count"))
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"user_id": "u1", "count": 0, "recommendations": []}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	if _, err := c.Recommendations(context.Background(), RecommendationQuery{UserID: "u1", Count: 6}); err != nil {
		t.Fatalf("Recommendations returned error: %v", err)
	}
}

func TestRecommendationsQueryFull(t *testing.T) {
	min, max := 10.0, 99.5
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		want := map[string]string{
			"user_id":    "42",
			"count":      "10",
			"categories": "music,theatre",
			"min_price":  "10",
			"max_price":  "99.5",
			"location":   "Lisbon",
			"start_date": "2026-09-01",
			"end_date":   "2026-09-30",
		}
		for k, v := range want {
			if q.Get(k) != v {
				t.Errorf("param %s = %q, want %q", k, q.Get(k), v)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{
  "user_id": 42,
  "count": 1,
  "recommendations": [
    {"event_id": 7, "title": "Fado Night", "category": "music", "location": "Lisbon",
     "date": "2026-09-12", "price": 35.0, "description": "An evening of fado"}
  ]
}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	resp, err := c.Recommendations(context.Background(), RecommendationQuery{
		UserID:     "42",
		Categories: []string{"music", "theatre"},
		MinPrice:   &min,
		MaxPrice:   &max,
		Location:   "Lisbon",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-30",
	})
	if err != nil {
		t.Fatalf("Recommendations returned error: %v", err)
	}
	if resp.UserID != "42" {
		t.Errorf("user_id = %q, want 42", resp.UserID)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].EventID != "7" {
		t.Fatalf("unexpected recommendations: %+v", resp.Recommendations)
	}
	if resp.Recommendations[0].Price != 35.0 {
		t.Errorf("price = %v, want 35.0", resp.Recommendations[0].Price)
	}
}

func TestTrendingEventsQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending-events" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("count") != "10" {
			t.Errorf("count = %q, want default 10", q.Get("count"))
		}
		if q.Get("days") != "3" {
			t.Errorf("days = %q, want 3", q.Get("days"))
		}
		if q.Has("categories") || q.Has("location") {
			t.Errorf("unset filters must be omitted, got %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"count": 0, "recommendations": []}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	if _, err := c.TrendingEvents(context.Background(), TrendingQuery{Days: 3}); err != nil {
		t.Fatalf("TrendingEvents returned error: %v", err)
	}
}

func TestSimilarEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/similar-events/evt-9" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("count") != "5" {
			t.Errorf("count = %q, want default 5", r.URL.Query().Get("count"))
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{
  "event_id": "evt-9",
  "count": 1,
  "similar_events": [
    {"event_id": "evt-3", "title": "Jazz Brunch", "category": "music", "location": "Porto",
     "date": "2026-10-02", "price": 20.0, "description": "Live trio", "similarity_score": 0.87}
  ]
}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	resp, err := c.SimilarEvents(context.Background(), "evt-9", 0)
	if err != nil {
		t.Fatalf("SimilarEvents returned error: %v", err)
	}
	if len(resp.SimilarEvents) != 1 {
		t.Fatalf("expected 1 similar event, got %d", len(resp.SimilarEvents))
	}
	if resp.SimilarEvents[0].SimilarityScore != 0.87 {
		t.Errorf("similarity_score = %v, want 0.87", resp.SimilarEvents[0].SimilarityScore)
	}
}

func TestRecordInteraction(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/event-interactions" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", r.Header.Get("Content-Type"))
		}

		var body Interaction
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.UserID != "u1" || body.EventID != "evt-9" || body.InteractionType != "wishlist" || body.Score != 2.0 {
			t.Errorf("unexpected body: %+v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"success": true, "message": "Interaction recorded successfully"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	resp, err := c.RecordInteraction(context.Background(), Interaction{
		UserID:          "u1",
		EventID:         "evt-9",
		InteractionType: "wishlist",
		Score:           2.0,
	})
	if err != nil {
		t.Fatalf("RecordInteraction returned error: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success response, got %+v", resp)
	}
}

func TestTrain(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/train" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if _, ok := body["user_event_data"]; !ok {
			t.Errorf("expected user_event_data in body, got %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"success": true, "message": "Model trained successfully", "training_time": "2026-08-24 10:00:00"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	resp, err := c.Train(context.Background(), TrainingData{
		UserEventData:     []map[string]any{{"user_id": "u1", "event_id": "evt-9", "score": 1.0}},
		EventFeaturesData: []map[string]any{{"event_id": "evt-9", "category": "music"}},
	})
	if err != nil {
		t.Fatalf("Train returned error: %v", err)
	}
	if resp.TrainingTime == "" {
		t.Error("expected training_time to be set")
	}
}

func TestErrorStatusCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, `{"error": "Recommendation engine not initialized"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)

	_, err := c.Status(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("error should carry the status code, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Recommendation engine not initialized") {
		t.Errorf("error should carry the server message, got %q", err.Error())
	}
}

func TestNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused

	c := NewClient(ts.URL)

	if _, err := c.Status(context.Background()); err == nil {
		t.Fatal("expected error for refused connection")
	}
}
