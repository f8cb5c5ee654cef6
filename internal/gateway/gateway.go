package gateway

import (
	"context"
	"errors"
	"log/slog"

	"slotbook/internal/domain/reservation"
	"slotbook/internal/pkg/errs"
)

// Scope selects whose reservations a listing returns.
type Scope string

const (
	ScopeSelf Scope = "self"
	ScopeAll  Scope = "all"
)

func (s Scope) IsValid() bool {
	return s == ScopeSelf || s == ScopeAll
}

// Gateway is the narrow contract to the upstream reservation API. It owns
// persistence and is authoritative on slot conflicts; everything here is
// a plain authenticated request.
type Gateway interface {
	ListReservations(ctx context.Context, scope Scope) ([]*reservation.Reservation, error)
	ListBookedTimes(ctx context.Context, day reservation.Day) ([]reservation.TimeLabel, error)
	CreateReservation(ctx context.Context, day reservation.Day, timeLabel reservation.TimeLabel, note reservation.Note) (*reservation.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status reservation.Status) (*reservation.Reservation, error)
}

type ErrorKind string

const (
	KindNetwork      ErrorKind = "NETWORK"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindConflict     ErrorKind = "CONFLICT"
	KindValidation   ErrorKind = "VALIDATION"
	KindNotFound     ErrorKind = "NOT_FOUND"
)

// Error classifies an upstream failure so callers can branch on the kind
// without parsing transport details.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	slogger.Error("Gateway error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
