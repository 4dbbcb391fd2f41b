package stream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/pkg/models"
)

func testRegistry() events.Registry {
	return events.Registry{
		models.EventDoorOpen: {
			models.EventTypeSoftDisable: events.Static(models.SoftDisableAlert("Door Open")),
			models.EventTypeNoEntry:     events.Static(models.NoEntryAlert("Door Open")),
		},
		models.EventStartup: {
			models.EventTypePermanent: events.Static(models.NormalPermanentAlert("Ready", "")),
		},
	}
}

func TestServer_Healthz(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewHub(testLogger()), testRegistry(), testLogger())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("requesting healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body struct {
		Status  string `json:"status"`
		Clients int    `json:"clients"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding healthz body: %v", err)
	}
	if body.Status != "ok" || body.Clients != 0 {
		t.Errorf("unexpected healthz body: %+v", body)
	}
}

func TestServer_CatalogSortedWithCanonicalTypes(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewHub(testLogger()), testRegistry(), testLogger())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/catalog")
	if err != nil {
		t.Fatalf("requesting catalog: %v", err)
	}
	defer resp.Body.Close()

	var entries []catalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding catalog body: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "doorOpen" || entries[1].Name != "startup" {
		t.Errorf("expected name-sorted entries, got %s then %s", entries[0].Name, entries[1].Name)
	}
	if !slices.Equal(entries[0].Types, []string{"noEntry", "softDisable"}) {
		t.Errorf("expected canonical type order for doorOpen, got %v", entries[0].Types)
	}
	if !slices.Equal(entries[1].Types, []string{"permanent"}) {
		t.Errorf("expected permanent for startup, got %v", entries[1].Types)
	}
}
