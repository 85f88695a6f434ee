package safehttp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTransportRejectsLoopback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must never reach a loopback server")
	}))
	defer ts.Close()

	client := &http.Client{Transport: NewTransport(time.Second)}

	_, err := client.Get(ts.URL)
	if err == nil {
		t.Fatal("expected loopback dial to be denied")
	}
	if !strings.Contains(err.Error(), "denied") {
		t.Errorf("unexpected error: %v", err)
	}
}
