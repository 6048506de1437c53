package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", got)
	}
	if got := ParseDuration("soon", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(soon) = %v, want the default", got)
	}
	if got := ParseDuration("", 12*time.Hour); got != 12*time.Hour {
		t.Errorf("ParseDuration(empty) = %v, want the default", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2004-06-15")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Year() != 2004 || got.Month() != time.June || got.Day() != 15 {
		t.Errorf("ParseDate() = %v, want 2004-06-15", got)
	}

	if _, err := ParseDate("15-06-2004"); err == nil {
		t.Errorf("ParseDate() accepted a day-first date")
	}
}
