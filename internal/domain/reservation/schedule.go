package reservation

import "time"

// BookingWindowDays is how many days ahead (inclusive of today) a slot
// may be booked. Any weekday inside the window is selectable.
const BookingWindowDays = 17

// BookingWindow returns the rolling window of bookable days starting at
// today.
func BookingWindow(today time.Time) []Day {
	start := NewDay(today)
	days := make([]Day, 0, BookingWindowDays)
	for i := 0; i < BookingWindowDays; i++ {
		days = append(days, start.AddDays(i))
	}
	return days
}

// InBookingWindow reports whether day falls inside the window anchored at
// today.
func InBookingWindow(day Day, today time.Time) bool {
	start := NewDay(today)
	end := start.AddDays(BookingWindowDays - 1)
	return !day.Before(start) && !day.After(end)
}
