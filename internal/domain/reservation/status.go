package reservation

import "time"

// DeriveStatus classifies a reservation for display. Precedence is fixed:
// an explicit cancellation wins over everything, an explicit completion
// wins over the date, and otherwise a reservation whose day has passed is
// completed while the rest are active.
//
// The result is never cached on the entity: "today" advances, so callers
// must derive fresh on every listing.
func DeriveStatus(stored Status, day Day, today time.Time) Status {
	switch stored {
	case StatusCancelled:
		return StatusCancelled
	case StatusCompleted:
		return StatusCompleted
	}
	if day.Before(NewDay(today)) {
		return StatusCompleted
	}
	return StatusActive
}
