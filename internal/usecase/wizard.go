package usecase

import (
	"context"
	"log/slog"
	"sync"

	"slotbook/internal/domain/reservation"
	"slotbook/internal/gateway"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/sessions"

	"github.com/google/uuid"
)

var (
	ErrWizardNotFound     = errs.New("wizard not found")
	ErrDateRequired       = errs.New("a date must be chosen first")
	ErrTimeRequired       = errs.New("a free time must be chosen first")
	ErrDayOutOfWindow     = errs.New("day outside the booking window")
	ErrNoBackStep         = errs.New("cannot step back from here")
	ErrNoForwardStep      = errs.New("cannot step forward from here")
	ErrNotAtConfirm       = errs.New("submission is only possible from the confirm step")
	ErrSubmissionInFlight = errs.New("a submission is already in flight")
	ErrSlotConflict       = errs.New("slot was taken, pick another time")
	ErrUnauthorized       = errs.New("credential missing or expired")
	ErrInvalidDraft       = errs.New("draft rejected by upstream validation")
	ErrSubmitFailed       = errs.New("submission failed")
)

type Step int

const (
	StepWelcome Step = iota
	StepDatePick
	StepTimePick
	StepNotePick
	StepConfirm
	StepSuccess
)

var stepNames = [...]string{"welcome", "date", "time", "note", "confirm", "success"}

func (s Step) String() string {
	if s < StepWelcome || s > StepSuccess {
		return "unknown"
	}
	return stepNames[s]
}

// BookingDraft is the in-progress reservation data, built up step by step
// and discarded on successful submission or reset.
type BookingDraft struct {
	Day  reservation.Day
	Time reservation.TimeLabel
	Note reservation.Note
}

// Snapshot is a consistent read of a wizard for rendering.
type Snapshot struct {
	ID           uuid.UUID
	Step         Step
	Draft        BookingDraft
	Availability Availability
	Submitting   bool
	Created      *reservation.Reservation
}

// Wizard is the six-step booking stepper. All mutations are serialized
// per instance; while a submission is in flight every other mutation is
// rejected, which is what keeps at most one CreateReservation call
// outstanding per wizard.
type Wizard struct {
	mu           sync.Mutex
	id           uuid.UUID
	step         Step
	draft        BookingDraft
	availability Availability
	submitting   bool
	created      *reservation.Reservation

	resolver *SlotResolver
	gw       gateway.Gateway
	clock    clock.Clock
	logger   *slog.Logger
}

func (w *Wizard) ID() uuid.UUID {
	return w.id
}

func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		ID:           w.id,
		Step:         w.step,
		Draft:        w.draft,
		Availability: w.availability,
		Submitting:   w.submitting,
		Created:      w.created,
	}
}

// Window returns the currently bookable days.
func (w *Wizard) Window() []reservation.Day {
	return reservation.BookingWindow(w.clock.Now())
}

func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmissionInFlight
	}

	switch w.step {
	case StepWelcome, StepNotePick:
		w.step++
		return nil
	case StepDatePick:
		if w.draft.Day.IsZero() {
			return ErrDateRequired
		}
		w.step++
		return nil
	case StepTimePick:
		if w.draft.Time.IsZero() || w.availability.IsBooked(w.draft.Time) {
			return ErrTimeRequired
		}
		w.step++
		return nil
	default:
		// Confirm only leaves via Submit, Success only via Reset.
		return ErrNoForwardStep
	}
}

func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmissionInFlight
	}
	if w.step == StepWelcome || w.step == StepSuccess {
		return ErrNoBackStep
	}
	w.step--
	return nil
}

// PickDate records the chosen day, resolves that day's booked times as a
// side effect and moves on to the time step. Re-picking a date clears any
// previously chosen time.
func (w *Wizard) PickDate(ctx context.Context, day reservation.Day) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmissionInFlight
	}
	if w.step != StepDatePick {
		return ErrNoForwardStep
	}
	if !reservation.InBookingWindow(day, w.clock.Now()) {
		return ErrDayOutOfWindow
	}

	w.draft.Day = day
	w.draft.Time = ""
	w.availability = w.resolver.Resolve(ctx, day)
	w.step = StepTimePick
	return nil
}

// PickTime sets the draft time. A click on an already-booked time is
// silently ignored, mirroring a disabled control.
func (w *Wizard) PickTime(label reservation.TimeLabel) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmissionInFlight
	}
	if w.step != StepTimePick {
		return ErrNoForwardStep
	}
	if w.availability.IsBooked(label) {
		return nil
	}
	w.draft.Time = label
	return nil
}

func (w *Wizard) SetNote(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmissionInFlight
	}
	if w.step != StepNotePick {
		return ErrNoForwardStep
	}
	w.draft.Note = reservation.NewNote(text)
	return nil
}

// Submit dispatches the draft. On success the draft is cleared and the
// wizard lands on the success step; on failure it stays on confirm with
// the draft intact so the user can retry without re-entering anything.
func (w *Wizard) Submit(ctx context.Context) (*reservation.Reservation, error) {
	w.mu.Lock()
	if w.step != StepConfirm {
		w.mu.Unlock()
		return nil, ErrNotAtConfirm
	}
	if w.submitting {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	w.submitting = true
	draft := w.draft
	w.mu.Unlock()

	created, err := w.gw.CreateReservation(ctx, draft.Day, draft.Time, draft.Note)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if err != nil {
		w.logger.Warn("reservation submission failed", "day", draft.Day.String(), "time", draft.Time.String(), "error", err)
		switch {
		case gateway.IsKind(err, gateway.KindConflict):
			// The slot was lost to a race; refresh availability so the
			// user is prompted with current booked times.
			w.availability = w.resolver.Resolve(ctx, draft.Day)
			return nil, errs.Mark(err, ErrSlotConflict)
		case gateway.IsKind(err, gateway.KindUnauthorized):
			return nil, errs.Mark(err, ErrUnauthorized)
		case gateway.IsKind(err, gateway.KindValidation):
			return nil, errs.Mark(err, ErrInvalidDraft)
		default:
			return nil, errs.Mark(err, ErrSubmitFailed)
		}
	}

	w.created = created
	w.draft = BookingDraft{}
	w.availability = Availability{}
	w.step = StepSuccess
	return created, nil
}

// Reset returns the wizard to its initial state for a fresh booking.
func (w *Wizard) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return ErrSubmissionInFlight
	}
	w.step = StepWelcome
	w.draft = BookingDraft{}
	w.availability = Availability{}
	w.created = nil
	return nil
}

// WizardService owns the live wizard instances, one per booking session.
type WizardService struct {
	store    *sessions.Store[*Wizard]
	resolver *SlotResolver
	gw       gateway.Gateway
	clock    clock.Clock
	logger   *slog.Logger
}

func NewWizardService(gw gateway.Gateway, clk clock.Clock, logger *slog.Logger, cfg config.SessionConfig) *WizardService {
	return &WizardService{
		store:    sessions.NewStore[*Wizard](cfg.TTL, clk),
		resolver: NewSlotResolver(gw, logger),
		gw:       gw,
		clock:    clk,
		logger:   logger,
	}
}

func (s *WizardService) Create() *Wizard {
	w := &Wizard{
		id:       uuid.New(),
		step:     StepWelcome,
		resolver: s.resolver,
		gw:       s.gw,
		clock:    s.clock,
		logger:   s.logger,
	}
	s.store.Put(w.id, w)
	return w
}

func (s *WizardService) Get(id uuid.UUID) (*Wizard, error) {
	w, ok := s.store.Get(id)
	if !ok {
		return nil, ErrWizardNotFound
	}
	return w, nil
}

func (s *WizardService) Discard(id uuid.UUID) {
	s.store.Delete(id)
}
