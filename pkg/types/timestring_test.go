package types

import (
	"errors"
	"testing"
	"time"
)

func TestNewTimeStringFromString_Valid(t *testing.T) {
	cases := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, c := range cases {
		ts, err := NewTimeStringFromString(c)
		if err != nil {
			t.Fatalf("expected %q to be valid, got %v", c, err)
		}
		if ts.String() != c {
			t.Fatalf("expected %q, got %q", c, ts.String())
		}
	}
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	cases := []string{"", "9:30", "24:00", "12:60", "12:5", "12-30", "ab:cd", "12:30:00"}
	for _, c := range cases {
		if _, err := NewTimeStringFromString(c); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("expected ErrInvalidFormat for %q, got %v", c, err)
		}
	}
}

func TestNewTimeString_FromTime(t *testing.T) {
	moment := time.Date(2026, 9, 14, 9, 5, 42, 0, time.UTC)
	if got := NewTimeString(moment); got != "09:05" {
		t.Fatalf("expected 09:05, got %q", got)
	}
}

func TestMinutes(t *testing.T) {
	cases := []struct {
		in   TimeString
		want int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, c := range cases {
		if got := c.in.Minutes(); got != c.want {
			t.Fatalf("%s: expected %d minutes, got %d", c.in, c.want, got)
		}
	}
}

func TestIsBeforeIsAfter(t *testing.T) {
	a, b := TimeString("09:00"), TimeString("10:00")
	if !a.IsBefore(b) {
		t.Fatal("09:00 should be before 10:00")
	}
	if a.IsAfter(b) {
		t.Fatal("09:00 should not be after 10:00")
	}
	if a.IsBefore(a) {
		t.Fatal("equal times: IsBefore must be strict")
	}
	if a.IsAfter(a) {
		t.Fatal("equal times: IsAfter must be strict")
	}
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	got, err := ts.AddMinutes(45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "10:15" {
		t.Fatalf("expected 10:15, got %q", got)
	}

	if _, err := TimeString("23:30").AddMinutes(60); !errors.Is(err, ErrMinutesOverflow) {
		t.Fatalf("expected ErrMinutesOverflow, got %v", err)
	}
	if _, err := TimeString("00:30").AddMinutes(-60); !errors.Is(err, ErrMinutesOverflow) {
		t.Fatalf("expected ErrMinutesOverflow for negative result, got %v", err)
	}
}
