package tessero_test

import (
	"context"
	"testing"

	"github.com/tessero/recommend-go/internal/api/tessero"
	"github.com/tessero/recommend-go/internal/testutil"
)

// Replays recorded engine responses so the transport is exercised
// against real payload shapes, not just handcrafted handlers.
func TestClientAgainstRecordedEngine(t *testing.T) {
	r, cleanup := testutil.NewVCRRecorder(t, "status")
	defer cleanup()

	c := tessero.NewClient("http://recommend.test/api",
		tessero.WithHTTPClient(testutil.VCRHTTPClient(r)),
	)

	status, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.Status != tessero.StatusReady {
		t.Errorf("status = %q, want ready", status.Status)
	}

	trending, err := c.TrendingEvents(context.Background(), tessero.TrendingQuery{})
	if err != nil {
		t.Fatalf("TrendingEvents returned error: %v", err)
	}
	if len(trending.Recommendations) != 2 {
		t.Fatalf("expected 2 trending events, got %d", len(trending.Recommendations))
	}
	if trending.Recommendations[0].EventID != "evt-1" {
		t.Errorf("unexpected first event: %+v", trending.Recommendations[0])
	}
}
