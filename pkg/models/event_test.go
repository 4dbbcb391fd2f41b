package models

import (
	"testing"
)

func TestEventID_NameRoundTrip(t *testing.T) {
	for _, id := range EventIDs() {
		name := id.String()
		if name == "" {
			t.Fatalf("identifier %d has no name", uint16(id))
		}
		parsed, err := ParseEventID(name)
		if err != nil {
			t.Fatalf("parsing %q: %v", name, err)
		}
		if parsed != id {
			t.Errorf("expected %q to parse back to %d, got %d", name, uint16(id), uint16(parsed))
		}
	}
}

func TestEventID_NamesAreUnique(t *testing.T) {
	seen := make(map[string]EventID)
	for _, id := range EventIDs() {
		name := id.String()
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q used by both %d and %d", name, uint16(prev), uint16(id))
		}
		seen[name] = id
	}
}

func TestEventID_UnknownRendersNumeric(t *testing.T) {
	got := EventID(9999).String()
	if got != "event(9999)" {
		t.Errorf("expected event(9999), got %s", got)
	}
}

func TestParseEventID_Unknown(t *testing.T) {
	if _, err := ParseEventID("notAnEvent"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestParseEventType_RoundTrip(t *testing.T) {
	for _, typ := range AllEventTypes {
		parsed, err := ParseEventType(string(typ))
		if err != nil {
			t.Fatalf("parsing %q: %v", typ, err)
		}
		if parsed != typ {
			t.Errorf("expected %q to parse to itself, got %q", typ, parsed)
		}
	}

	if _, err := ParseEventType("hardDisable"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestAllEventTypes_CanonicalOrder(t *testing.T) {
	want := []EventType{
		EventTypeEnable,
		EventTypePreEnable,
		EventTypeNoEntry,
		EventTypeWarning,
		EventTypeUserDisable,
		EventTypeSoftDisable,
		EventTypeImmediateDisable,
		EventTypePermanent,
	}
	if len(AllEventTypes) != len(want) {
		t.Fatalf("expected %d event types, got %d", len(want), len(AllEventTypes))
	}
	for i, typ := range want {
		if AllEventTypes[i] != typ {
			t.Errorf("position %d: expected %s, got %s", i, typ, AllEventTypes[i])
		}
	}
}
