package timezone_test

import (
	"lodgehub/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "rfc3339", value: "2024-01-01T12:00:00Z"},
		{name: "rfc3339 with offset", value: "2024-01-01T12:00:00+05:30"},
		{name: "minute precision", value: "2024-01-01T12:00"},
		{name: "date only", value: "2024-01-01"},
		{name: "garbage", value: "yesterday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := timezone.ParseDateTime(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.value)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if parsed.Year() != 2024 {
				t.Errorf("unexpected year %d", parsed.Year())
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	value := timezone.ToAppTime(time.Date(2024, 3, 5, 18, 45, 0, 0, time.UTC))
	start := timezone.StartOfDay(value)

	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("expected midnight, got %s", start)
	}

	if start.After(value) {
		t.Errorf("start of day %s is after %s", start, value)
	}
}

func TestParseWindow(t *testing.T) {
	start, end, err := timezone.ParseWindow("2024-03-05T12:00:00Z", "2024-03-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !end.After(start) {
		t.Errorf("expected %s after %s", end, start)
	}

	if _, _, err := timezone.ParseWindow("2024-03-05", "tomorrow"); err == nil {
		t.Error("expected error for invalid check_out")
	}
}
