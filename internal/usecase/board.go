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
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBoardNotFound      = errs.New("board not found")
	ErrInvalidScope       = errs.New("scope must be self or all")
	ErrListFailed         = errs.New("reservation list unavailable")
	ErrInvalidTarget      = errs.New("not a valid transition target")
	ErrTransitionInFlight = errs.New("a status transition is already pending")
	ErrTransitionNotFound = errs.New("reservation no longer exists upstream")
	ErrTransitionRejected = errs.New("status transition rejected")
)

// Board is the listing view state: the reservation list fetched for one
// scope, grouped and paginated by day, with admin status transitions
// reconciled in place. One board per viewing session.
type Board struct {
	mu            sync.Mutex
	id            uuid.UUID
	scope         gateway.Scope
	items         []*reservation.Reservation
	loaded        bool
	transitioning bool

	gw     gateway.Gateway
	clock  clock.Clock
	logger *slog.Logger
}

func (b *Board) ID() uuid.UUID {
	return b.id
}

func (b *Board) Scope() gateway.Scope {
	return b.scope
}

// Load fetches the full list for the board's scope. On failure the board
// keeps whatever it had (empty-with-error display, manual retry by
// calling Load again).
func (b *Board) Load(ctx context.Context) error {
	list, err := b.gw.ListReservations(ctx, b.scope)
	if err != nil {
		b.logger.Error("failed to load reservations", "scope", string(b.scope), "error", err)
		return errs.Mark(err, ErrListFailed)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = list
	b.loaded = true
	return nil
}

func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// Page renders one page of whole day-groups, statuses derived fresh.
func (b *Board) Page(page, pageSize int) queries.GroupedPage {
	b.mu.Lock()
	items := make([]*reservation.Reservation, len(b.items))
	copy(items, b.items)
	b.mu.Unlock()

	groups := queries.GroupByDay(items, b.clock.Now())
	return queries.Paginate(groups, page, pageSize, len(items))
}

// ChangeStatus asks the upstream to move one reservation to the target
// status and, on success, swaps the confirmed record into the held list
// by id. Nothing is mutated speculatively, so a failure needs no
// rollback. Only one transition may be pending per board.
func (b *Board) ChangeStatus(ctx context.Context, id string, target reservation.Status) (*reservation.Reservation, error) {
	if !target.IsTransitionTarget() {
		return nil, ErrInvalidTarget
	}

	b.mu.Lock()
	if b.transitioning {
		b.mu.Unlock()
		return nil, ErrTransitionInFlight
	}
	b.transitioning = true
	b.mu.Unlock()

	updated, err := b.gw.UpdateReservationStatus(ctx, id, target)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.transitioning = false

	if err != nil {
		// Silent-to-log: the list stays exactly as it was.
		b.logger.Error("status transition failed", "id", id, "target", target.String(), "error", err)
		if gateway.IsKind(err, gateway.KindNotFound) {
			return nil, errs.Mark(err, ErrTransitionNotFound)
		}
		return nil, errs.Mark(err, ErrTransitionRejected)
	}

	for i, r := range b.items {
		if r.ID() == updated.ID() {
			b.items[i] = updated
			break
		}
	}
	return updated, nil
}

// BoardService owns the live boards, one per listing session.
type BoardService struct {
	store  *sessions.Store[*Board]
	gw     gateway.Gateway
	clock  clock.Clock
	logger *slog.Logger
}

func NewBoardService(gw gateway.Gateway, clk clock.Clock, logger *slog.Logger, cfg config.SessionConfig) *BoardService {
	return &BoardService{
		store:  sessions.NewStore[*Board](cfg.TTL, clk),
		gw:     gw,
		clock:  clk,
		logger: logger,
	}
}

func (s *BoardService) Create(scope gateway.Scope) (*Board, error) {
	if !scope.IsValid() {
		return nil, ErrInvalidScope
	}
	b := &Board{
		id:     uuid.New(),
		scope:  scope,
		gw:     s.gw,
		clock:  s.clock,
		logger: s.logger,
	}
	s.store.Put(b.id, b)
	return b, nil
}

func (s *BoardService) Get(id uuid.UUID) (*Board, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return nil, ErrBoardNotFound
	}
	return b, nil
}

func (s *BoardService) Discard(id uuid.UUID) {
	s.store.Delete(id)
}
