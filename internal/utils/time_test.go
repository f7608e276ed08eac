package utils

import (
	"testing"
	"time"

	"github.com/Stevedee925/phoenix/internal/errors"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00"},
		{999, "00:00:00"},
		{1000, "00:00:01"},
		{61000, "00:01:01"},
		{3723000, "01:02:03"},
		{16 * 3600 * 1000, "16:00:00"},
		{30 * 3600 * 1000, "30:00:00"},
		{-5000, "00:00:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.ms); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestElapsedAndRemaining(t *testing.T) {
	start := int64(1_000_000)

	if got := Elapsed(start+5000, start); got != 5000 {
		t.Errorf("Elapsed = %d, want 5000", got)
	}
	if got := Elapsed(start-100, start); got != 0 {
		t.Errorf("Elapsed before start = %d, want 0", got)
	}

	target := int64(10_000)
	if got := Remaining(start+4000, start, target); got != 6000 {
		t.Errorf("Remaining = %d, want 6000", got)
	}
	if got := Remaining(start+20_000, start, target); got != 0 {
		t.Errorf("Remaining past target = %d, want 0", got)
	}
}

func TestProgressRatio(t *testing.T) {
	if _, err := ProgressRatio(1000, 0); !errors.Is(err, errors.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration for zero target, got %v", err)
	}
	if _, err := ProgressRatio(1000, -1); !errors.Is(err, errors.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration for negative target, got %v", err)
	}

	cases := []struct {
		elapsed, target int64
		want            float64
	}{
		{0, 1000, 0},
		{500, 1000, 0.5},
		{1000, 1000, 1},
		{1500, 1000, 1},
		{-100, 1000, 0},
	}
	for _, tc := range cases {
		got, err := ProgressRatio(tc.elapsed, tc.target)
		if err != nil {
			t.Fatalf("ProgressRatio(%d, %d): %v", tc.elapsed, tc.target, err)
		}
		if got != tc.want {
			t.Errorf("ProgressRatio(%d, %d) = %v, want %v", tc.elapsed, tc.target, got, tc.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		ratio float64
		want  int
	}{
		{0, 0},
		{0.5, 50},
		{0.505, 51},
		{1, 100},
		{1.3, 100},
		{-0.2, 0},
	}
	for _, tc := range cases {
		if got := Percentage(tc.ratio); got != tc.want {
			t.Errorf("Percentage(%v) = %d, want %d", tc.ratio, got, tc.want)
		}
	}
}

func TestDayKey(t *testing.T) {
	// 2026-03-01 23:30 UTC
	ms := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC).UnixMilli()
	if got := DayKey(ms); got != "2026-03-01" {
		t.Errorf("DayKey = %q, want 2026-03-01", got)
	}

	// The same instant in a west-of-UTC zone still buckets to the UTC day.
	loc := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2026, 3, 1, 18, 30, 0, 0, loc)
	if got := DayKey(local.UnixMilli()); got != "2026-03-01" {
		t.Errorf("DayKey from offset zone = %q, want 2026-03-01", got)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 1, 0, 5, 0, 0, time.UTC).UnixMilli()
	night := time.Date(2026, 3, 1, 23, 55, 0, 0, time.UTC).UnixMilli()
	next := time.Date(2026, 3, 2, 0, 5, 0, 0, time.UTC).UnixMilli()

	if !SameDay(morning, night) {
		t.Error("expected same UTC day")
	}
	if SameDay(night, next) {
		t.Error("expected different UTC days")
	}
}

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"00:00", "07:30", "23:59"}
	for _, s := range valid {
		if !ValidateTimeFormat(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{"24:00", "7:3", "noon", "07:30:00", ""}
	for _, s := range invalid {
		if ValidateTimeFormat(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2026-03-01", "07:30", time.UTC)
	if err != nil {
		t.Fatalf("CombineDateAndTime: %v", err)
	}
	want := time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("03/01/2026", "07:30", time.UTC); err == nil {
		t.Error("expected error for bad date format")
	}
	if _, err := CombineDateAndTime("2026-03-01", "7pm", time.UTC); err == nil {
		t.Error("expected error for bad time format")
	}
}
