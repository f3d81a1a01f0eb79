package shared

import (
	"testing"
	"time"
)

func TestParseDatePlain(t *testing.T) {
	parsed, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != time.March || parsed.Day() != 15 {
		t.Fatalf("expected 2026-03-15, got %v", parsed)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	parsed, err := ParseDate("2026-03-15T10:30:00Z")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Hour() != 10 {
		t.Fatalf("expected hour 10, got %d", parsed.Hour())
	}
}

func TestParseDateEmpty(t *testing.T) {
	parsed, err := ParseDate("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !parsed.IsZero() {
		t.Fatalf("expected zero time, got %v", parsed)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
