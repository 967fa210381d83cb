package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

const rocketsPayload = `[
	{
		"id": "5e9d0d95eda69955f709d1eb",
		"name": "Falcon 1",
		"first_flight": "2006-03-24",
		"height": {"meters": 22.25},
		"diameter": {"meters": 1.68},
		"mass": {"kg": 30146},
		"country": "Republic of the Marshall Islands",
		"description": "The Falcon 1 was an expendable launch system.",
		"active": false
	},
	{
		"id": "5e9d0d95eda69973a809d1ec",
		"name": "Falcon 9",
		"first_flight": "2010-06-04",
		"height": {"meters": 70},
		"diameter": {"meters": 3.7},
		"mass": {"kg": 549054},
		"country": "United States",
		"description": "Falcon 9 is a two-stage rocket.",
		"active": true
	}
]`

func newTestClient(serverURL string) *Client {
	c := NewClient(serverURL, 5*time.Second)
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestRockets(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(rocketsPayload))
	}))
	defer server.Close()

	rockets, err := newTestClient(server.URL).Rockets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/rockets" {
		t.Errorf("requested %q, expected /rockets", gotPath)
	}
	if len(rockets) != 2 {
		t.Fatalf("expected 2 rockets, got %d", len(rockets))
	}

	r := rockets[0]
	if r.ID != "5e9d0d95eda69955f709d1eb" || r.Name != "Falcon 1" {
		t.Errorf("unexpected first rocket: %+v", r)
	}
	// ISO first_flight converted to the day.month.year display form.
	if r.FirstFlight != "24.03.2006" {
		t.Errorf("got first flight %q, expected 24.03.2006", r.FirstFlight)
	}
	if r.HeightM != 22.25 || r.DiameterM != 1.68 || r.MassKg != 30146 {
		t.Errorf("unexpected measurements: %+v", r)
	}
	if r.Active {
		t.Error("expected Falcon 1 to be inactive")
	}
	if !rockets[1].Active {
		t.Error("expected Falcon 9 to be active")
	}
}

func TestRocketsNullMeasurements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "x", "name": "Mystery", "first_flight": "2030-01-01",
			"height": {"meters": null}, "diameter": {"meters": null}, "mass": {"kg": null}}]`))
	}))
	defer server.Close()

	rockets, err := newTestClient(server.URL).Rockets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rockets) != 1 {
		t.Fatalf("expected 1 rocket, got %d", len(rockets))
	}
	if rockets[0].HeightM != 0 || rockets[0].DiameterM != 0 || rockets[0].MassKg != 0 {
		t.Errorf("expected zeroed measurements, got %+v", rockets[0])
	}
}

func TestRocketsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Rockets(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestRocketsBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Rockets(context.Background()); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestRocketsContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestClient(server.URL).Rockets(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestToDisplayDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2006-03-24", "24.03.2006"},
		{"2010-06-04", "04.06.2010"},
		{"not a date", "not a date"}, // passes through
		{"", ""},
	}
	for _, tc := range tests {
		if got := toDisplayDate(tc.in); got != tc.want {
			t.Errorf("toDisplayDate(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
