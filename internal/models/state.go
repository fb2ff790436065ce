package models

import (
	"fmt"
	"time"
)

// BookingFilter is a query window over a user's bookings. Time bounds and the
// status filter are kept separate: CURRENT/PAST/FUTURE fill the time fields,
// WAITING/REJECTED fill Status, ALL leaves everything open.
type BookingFilter struct {
	Status      string
	StartBefore *time.Time
	StartAfter  *time.Time
	EndBefore   *time.Time
	EndAfter    *time.Time

	Limit  int
	Offset int
}

// FilterForState maps (state, now) to a query window. Pure function, the
// repository applies the window verbatim.
func FilterForState(state string, now time.Time) (BookingFilter, error) {
	var f BookingFilter

	switch state {
	case StateAll:
	case StateCurrent:
		// start < now < end
		f.StartBefore = &now
		f.EndAfter = &now
	case StatePast:
		f.EndBefore = &now
	case StateFuture:
		f.StartAfter = &now
	case StateWaiting:
		f.Status = StatusWaiting
	case StateRejected:
		f.Status = StatusRejected
	default:
		return BookingFilter{}, fmt.Errorf("unknown state: %s", state)
	}

	return f, nil
}

// PageOffset превращает параметры from/size в смещение по формуле
// page = from < size ? 0 : from / size. Формула намеренно сохранена как есть:
// from меньше size схлопывается в нулевую страницу.
func PageOffset(from, size int) int {
	if from < size {
		return 0
	}
	return (from / size) * size
}
