package util_test

import (
	"encoding/json"
	"testing"
	"time"

	util "github.com/saulo-duarte/overhoor-lambda/internal/utils"
)

func TestLocalDateTimeJSON(t *testing.T) {
	if err := util.SetLocation("UTC"); err != nil {
		t.Fatalf("SetLocation failed: %v", err)
	}
	defer util.SetLocation("Europe/Amsterdam")

	ldt := util.LocalDateTime{Time: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)}
	b, err := json.Marshal(ldt)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `"2026-03-01T09:30:00"` {
		t.Errorf("unexpected encoding %s", b)
	}

	var back util.LocalDateTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(ldt) {
		t.Errorf("round trip mismatch: %v vs %v", back, ldt)
	}
}

func TestLocalDateTimeZeroAndNull(t *testing.T) {
	b, err := json.Marshal(util.LocalDateTime{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("zero value should encode as null, got %s", b)
	}

	var ldt util.LocalDateTime
	if err := json.Unmarshal([]byte("null"), &ldt); err != nil {
		t.Fatal(err)
	}
	if !ldt.IsZero() {
		t.Error("null should decode to the zero time")
	}
}

func TestSetLocationUnknown(t *testing.T) {
	if err := util.SetLocation("Mars/Olympus_Mons"); err == nil {
		t.Error("expected error for unknown zone")
	}
}
