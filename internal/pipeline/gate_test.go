package pipeline

import (
	"testing"
	"time"
)

func TestShouldCollect_WeekdayWindow(t *testing.T) {
	target := ClockTime{Hour: 11, Minute: 30}
	// 2024-03-29 is a Friday.
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"exact target", time.Date(2024, 3, 29, 11, 30, 0, 0, time.UTC), true},
		{"inside tolerance after", time.Date(2024, 3, 29, 11, 34, 59, 0, time.UTC), true},
		{"boundary after", time.Date(2024, 3, 29, 11, 35, 0, 0, time.UTC), true},
		{"outside after", time.Date(2024, 3, 29, 11, 36, 0, 0, time.UTC), false},
		{"inside tolerance before", time.Date(2024, 3, 29, 11, 25, 0, 0, time.UTC), true},
		{"outside before", time.Date(2024, 3, 29, 11, 24, 0, 0, time.UTC), false},
		{"far off", time.Date(2024, 3, 29, 12, 30, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := ShouldCollect(tt.now, target, 5); got != tt.want {
			t.Fatalf("%s: ShouldCollect(%v) = %v, want %v", tt.name, tt.now, got, tt.want)
		}
	}
}

func TestShouldCollect_WeekendAlwaysFalse(t *testing.T) {
	target := ClockTime{Hour: 11, Minute: 30}
	saturday := time.Date(2024, 3, 30, 11, 30, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 31, 11, 30, 0, 0, time.UTC)
	if ShouldCollect(saturday, target, 5) {
		t.Fatalf("expected false on Saturday even at target time")
	}
	if ShouldCollect(sunday, target, 5) {
		t.Fatalf("expected false on Sunday even at target time")
	}
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("11:30")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got.Hour != 11 || got.Minute != 30 {
		t.Fatalf("got %v, want 11:30", got)
	}
	for _, bad := range []string{"", "11", "25:00", "11:60", "aa:bb"} {
		if _, err := ParseClockTime(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
