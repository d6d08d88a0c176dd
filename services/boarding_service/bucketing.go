package boarding_service

import (
	"strings"
	"time"
)

const (
	displayInputLayout = "2006-01-02 15:04"
	displayLayout      = "January 2, 2006 03:04 PM"
	invalidDisplay     = "Invalid Date"
)

// Dated is anything with a check-in and check-out instant.
type Dated interface {
	Dates() (checkIn, checkOut time.Time)
}

// Buckets groups bookings relative to one evaluation instant. A booking may
// sit in several of the first four buckets; Future holds those in none of them.
type Buckets[T Dated] struct {
	TodayCheckOuts    []T `json:"todayCheckOuts"`
	TodayCheckIns     []T `json:"todayCheckIns"`
	TomorrowCheckIns  []T `json:"tomorrowCheckIns"`
	TomorrowCheckOuts []T `json:"tomorrowCheckOuts"`
	Future            []T `json:"future"`
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameLocalDay compares calendar days in loc. The zero time never matches.
func sameLocalDay(t, day time.Time, loc *time.Location) bool {
	if t.IsZero() {
		return false
	}
	ty, tm, td := t.In(loc).Date()
	dy, dm, dd := day.Date()
	return ty == dy && tm == dm && td == dd
}

// FilterByMonth keeps items whose check-in falls in month (0 = January) in loc.
// Items with no check-in date are dropped.
func FilterByMonth[T Dated](items []T, month int, loc *time.Location) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		checkIn, _ := it.Dates()
		if checkIn.IsZero() {
			continue
		}
		if int(checkIn.In(loc).Month())-1 == month {
			out = append(out, it)
		}
	}
	return out
}

// Bucket classifies items by local calendar day relative to now. Only the
// date fields are compared; time-of-day strings play no part.
func Bucket[T Dated](items []T, now time.Time, loc *time.Location) Buckets[T] {
	today := startOfDay(now.In(loc))
	tomorrow := today.AddDate(0, 0, 1)

	b := Buckets[T]{
		TodayCheckOuts:    []T{},
		TodayCheckIns:     []T{},
		TomorrowCheckIns:  []T{},
		TomorrowCheckOuts: []T{},
		Future:            []T{},
	}
	for _, it := range items {
		in, out := it.Dates()
		inToday, outToday := sameLocalDay(in, today, loc), sameLocalDay(out, today, loc)
		inTomorrow, outTomorrow := sameLocalDay(in, tomorrow, loc), sameLocalDay(out, tomorrow, loc)

		if outToday {
			b.TodayCheckOuts = append(b.TodayCheckOuts, it)
		}
		if inToday {
			b.TodayCheckIns = append(b.TodayCheckIns, it)
		}
		if inTomorrow {
			b.TomorrowCheckIns = append(b.TomorrowCheckIns, it)
		}
		if outTomorrow {
			b.TomorrowCheckOuts = append(b.TomorrowCheckOuts, it)
		}
		if !inToday && !outToday && !inTomorrow && !outTomorrow {
			b.Future = append(b.Future, it)
		}
	}
	return b
}

// FormatLocal renders a stored date plus its separate time-of-day string.
// The UTC calendar date and the time are joined and read as UTC, then shown
// in loc. Reading them in loc instead would shift the time by the offset.
func FormatLocal(date time.Time, timeOfDay string, loc *time.Location) string {
	if date.IsZero() {
		return invalidDisplay
	}
	joined := date.UTC().Format("2006-01-02") + " " + strings.TrimSpace(timeOfDay)
	t, err := time.ParseInLocation(displayInputLayout, joined, time.UTC)
	if err != nil {
		return invalidDisplay
	}
	return t.In(loc).Format(displayLayout)
}
