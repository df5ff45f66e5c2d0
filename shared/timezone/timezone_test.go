package timezone_test

import (
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if _, err := time.Parse(constant.RecordDateFormat, today); err != nil {
		t.Errorf("Today() returned %q which is not yyyy-mm-dd: %v", today, err)
	}
}

func TestParseStayDate(t *testing.T) {
	parsed, err := timezone.Parse(constant.StayDateFormat, "03-01-2025")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Day() != 3 || parsed.Month() != time.January || parsed.Year() != 2025 {
		t.Errorf("expected 3 January 2025, got %s", parsed)
	}

	if _, err := timezone.Parse(constant.StayDateFormat, "2025-01-03"); err == nil {
		t.Error("expected an error for a yyyy-mm-dd value")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if timezone.Format(testTime, constant.RecordDateFormat) == "" {
		t.Error("Format() returned empty string")
	}
}
