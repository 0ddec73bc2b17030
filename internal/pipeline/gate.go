package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day, tied to whatever location the
// caller evaluates it in.
type ClockTime struct {
	Hour   int
	Minute int
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseClockTime parses "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in %q", s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ShouldCollect reports whether a scheduled invocation at `now` falls inside
// the collection window: weekdays only, within toleranceMinutes of target.
// `now` must already be in the exchange's local time zone; the target is
// exchange wall-clock, so evaluating this in UTC would shift the window.
func ShouldCollect(now time.Time, target ClockTime, toleranceMinutes int) bool {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	targetMinutes := target.Hour*60 + target.Minute
	diff := nowMinutes - targetMinutes
	if diff < 0 {
		diff = -diff
	}
	return diff <= toleranceMinutes
}
