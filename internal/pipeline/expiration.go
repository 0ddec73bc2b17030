package pipeline

import "time"

// SelectExpiration picks the expiration most relevant for same-day trading:
// today's date when the chain has a 0DTE listing, otherwise the earliest
// strictly-future date. Dates are compared as calendar days, each in its
// own location, so a UTC-midnight expiration matches an exchange-local
// "today".
func SelectExpiration(available []time.Time, today time.Time) (time.Time, error) {
	if len(available) == 0 {
		return time.Time{}, ErrNoExpirations
	}

	todayKey := dayKey(today)
	var best time.Time
	bestKey := 0
	for _, exp := range available {
		key := dayKey(exp)
		if key == todayKey {
			return exp, nil
		}
		if key > todayKey && (best.IsZero() || key < bestKey) {
			best = exp
			bestKey = key
		}
	}
	if best.IsZero() {
		return time.Time{}, ErrNoFutureExpiration
	}
	return best, nil
}

// dayKey collapses a time to a sortable calendar-date integer.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
