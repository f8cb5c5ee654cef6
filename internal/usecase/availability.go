package usecase

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/reservation"
	"slotbook/internal/gateway"
)

// Availability is the set of already-booked time labels for one day. When
// the upstream could not be reached the set is empty and Unresolved is
// set: the picker then shows every time as selectable (fail-open) and the
// upstream's conflict rejection at submission time is the backstop.
type Availability struct {
	Day        reservation.Day
	Booked     map[reservation.TimeLabel]struct{}
	Unresolved bool
}

func (a Availability) IsBooked(t reservation.TimeLabel) bool {
	_, ok := a.Booked[t]
	return ok
}

func (a Availability) BookedList() []reservation.TimeLabel {
	out := make([]reservation.TimeLabel, 0, len(a.Booked))
	for _, t := range reservation.AvailableTimes() {
		if a.IsBooked(t) {
			out = append(out, t)
		}
	}
	return out
}

// SlotResolver answers "which times are taken on this day". Blocking the
// whole booking flow on a transient listing failure would be worse than
// letting the server reject a conflict, so failures degrade to an
// unresolved, all-selectable result.
type SlotResolver struct {
	gw     gateway.Gateway
	logger *slog.Logger
}

func NewSlotResolver(gw gateway.Gateway, logger *slog.Logger) *SlotResolver {
	return &SlotResolver{gw: gw, logger: logger}
}

func (r *SlotResolver) Resolve(ctx context.Context, day reservation.Day) Availability {
	booked, err := r.gw.ListBookedTimes(ctx, day)
	if err != nil {
		r.logger.Error("failed to resolve booked times, failing open", "day", day.String(), "error", err)
		return Availability{Day: day, Booked: map[reservation.TimeLabel]struct{}{}, Unresolved: true}
	}

	set := make(map[reservation.TimeLabel]struct{}, len(booked))
	for _, t := range booked {
		set[t] = struct{}{}
	}
	return Availability{Day: day, Booked: set}
}
