//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"slotbook/internal/domain/reservation"
	"slotbook/internal/gateway"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase"
	"slotbook/tests/common/builder"
	gatewaymock "slotbook/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWizardFixture(t *testing.T) (*usecase.Wizard, *gatewaymock.MockGateway, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockGateway(ctrl)
	clk := clock.NewMockClock(testNow)
	svc := usecase.NewWizardService(gw, clk, discardLogger(), config.SessionConfig{TTL: time.Hour})
	return svc.Create(), gw, clk
}

func mustDay(t *testing.T, s string) reservation.Day {
	t.Helper()
	d, err := reservation.ParseDay(s)
	require.NoError(t, err)
	return d
}

// walks a wizard up to the confirm step with a booked 09:00 slot
func wizardAtConfirm(t *testing.T, gw *gatewaymock.MockGateway) *usecase.Wizard {
	t.Helper()
	clk := clock.NewMockClock(testNow)
	svc := usecase.NewWizardService(gw, clk, discardLogger(), config.SessionConfig{TTL: time.Hour})
	w := svc.Create()

	day := mustDay(t, "2024-05-16")
	gw.EXPECT().ListBookedTimes(gomock.Any(), day).Return([]reservation.TimeLabel{"09:00"}, nil)

	require.NoError(t, w.Advance()) // welcome -> date
	require.NoError(t, w.PickDate(context.Background(), day))
	require.NoError(t, w.PickTime("11:00"))
	require.NoError(t, w.Advance()) // time -> note
	require.NoError(t, w.SetNote("cam kenarı"))
	require.NoError(t, w.Advance()) // note -> confirm
	require.Equal(t, usecase.StepConfirm, w.Snapshot().Step)
	return w
}

func TestWizardStepping(t *testing.T) {
	t.Run("starts at welcome and advances freely", func(t *testing.T) {
		w, _, _ := newWizardFixture(t)
		assert.Equal(t, usecase.StepWelcome, w.Snapshot().Step)
		require.NoError(t, w.Advance())
		assert.Equal(t, usecase.StepDatePick, w.Snapshot().Step)
	})

	t.Run("date step blocks forward until a day is picked", func(t *testing.T) {
		w, gw, _ := newWizardFixture(t)
		require.NoError(t, w.Advance())

		assert.ErrorIs(t, w.Advance(), usecase.ErrDateRequired)

		day := mustDay(t, "2024-05-16")
		gw.EXPECT().ListBookedTimes(gomock.Any(), day).Return(nil, nil)
		require.NoError(t, w.PickDate(context.Background(), day))
		assert.Equal(t, usecase.StepTimePick, w.Snapshot().Step)
	})

	t.Run("time step blocks forward until a free time is picked", func(t *testing.T) {
		w, gw, _ := newWizardFixture(t)
		require.NoError(t, w.Advance())
		day := mustDay(t, "2024-05-16")
		gw.EXPECT().ListBookedTimes(gomock.Any(), day).Return([]reservation.TimeLabel{"09:00"}, nil)
		require.NoError(t, w.PickDate(context.Background(), day))

		assert.ErrorIs(t, w.Advance(), usecase.ErrTimeRequired)

		require.NoError(t, w.PickTime("11:00"))
		require.NoError(t, w.Advance())
		assert.Equal(t, usecase.StepNotePick, w.Snapshot().Step)
	})

	t.Run("back is blocked on the edges", func(t *testing.T) {
		w, _, _ := newWizardFixture(t)
		assert.ErrorIs(t, w.Back(), usecase.ErrNoBackStep)

		require.NoError(t, w.Advance())
		require.NoError(t, w.Back())
		assert.Equal(t, usecase.StepWelcome, w.Snapshot().Step)
	})

	t.Run("confirm does not advance without submit", func(t *testing.T) {
		gw := gatewaymock.NewMockGateway(gomock.NewController(t))
		w := wizardAtConfirm(t, gw)
		assert.ErrorIs(t, w.Advance(), usecase.ErrNoForwardStep)
	})
}

func TestWizardPickDate(t *testing.T) {
	t.Run("rejects a day outside the window", func(t *testing.T) {
		w, _, _ := newWizardFixture(t)
		require.NoError(t, w.Advance())

		assert.ErrorIs(t, w.PickDate(context.Background(), mustDay(t, "2024-05-14")), usecase.ErrDayOutOfWindow)
		assert.ErrorIs(t, w.PickDate(context.Background(), mustDay(t, "2024-06-10")), usecase.ErrDayOutOfWindow)
	})

	t.Run("re-picking a date clears the chosen time", func(t *testing.T) {
		w, gw, _ := newWizardFixture(t)
		require.NoError(t, w.Advance())

		first := mustDay(t, "2024-05-16")
		second := mustDay(t, "2024-05-17")
		gw.EXPECT().ListBookedTimes(gomock.Any(), first).Return(nil, nil)
		gw.EXPECT().ListBookedTimes(gomock.Any(), second).Return(nil, nil)

		require.NoError(t, w.PickDate(context.Background(), first))
		require.NoError(t, w.PickTime("11:00"))
		require.NoError(t, w.Back())
		require.NoError(t, w.PickDate(context.Background(), second))

		snap := w.Snapshot()
		assert.Equal(t, second, snap.Draft.Day)
		assert.True(t, snap.Draft.Time.IsZero())
	})

	t.Run("fails open when availability cannot be resolved", func(t *testing.T) {
		w, gw, _ := newWizardFixture(t)
		require.NoError(t, w.Advance())

		day := mustDay(t, "2024-05-16")
		gw.EXPECT().ListBookedTimes(gomock.Any(), day).
			Return(nil, gateway.WrapErr(discardLogger(), gateway.KindNetwork, "upstream down", nil))

		require.NoError(t, w.PickDate(context.Background(), day))

		snap := w.Snapshot()
		assert.True(t, snap.Availability.Unresolved)
		assert.False(t, snap.Availability.IsBooked("09:00"))
		require.NoError(t, w.PickTime("09:00"), "every time is selectable when unresolved")
	})
}

func TestWizardPickTime(t *testing.T) {
	w, gw, _ := newWizardFixture(t)
	require.NoError(t, w.Advance())
	day := mustDay(t, "2024-05-16")
	gw.EXPECT().ListBookedTimes(gomock.Any(), day).Return([]reservation.TimeLabel{"09:00"}, nil)
	require.NoError(t, w.PickDate(context.Background(), day))

	t.Run("a booked time is silently ignored", func(t *testing.T) {
		require.NoError(t, w.PickTime("09:00"))
		assert.True(t, w.Snapshot().Draft.Time.IsZero())
	})

	t.Run("a free time is recorded", func(t *testing.T) {
		require.NoError(t, w.PickTime("11:00"))
		assert.Equal(t, reservation.TimeLabel("11:00"), w.Snapshot().Draft.Time)
	})
}

func TestWizardSubmit(t *testing.T) {
	t.Run("success clears the draft and lands on success", func(t *testing.T) {
		gw := gatewaymock.NewMockGateway(gomock.NewController(t))
		w := wizardAtConfirm(t, gw)

		created := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = "2024-05-16"
			b.Time = "11:00"
		}).MustBuildDomain()
		gw.EXPECT().
			CreateReservation(gomock.Any(), mustDay(t, "2024-05-16"), reservation.TimeLabel("11:00"), gomock.Any()).
			Return(created, nil)

		got, err := w.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, created.ID(), got.ID())

		snap := w.Snapshot()
		assert.Equal(t, usecase.StepSuccess, snap.Step)
		assert.True(t, snap.Draft.Day.IsZero())
		assert.False(t, snap.Submitting)
		require.NotNil(t, snap.Created)
	})

	t.Run("rejected outside the confirm step", func(t *testing.T) {
		w, _, _ := newWizardFixture(t)
		_, err := w.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrNotAtConfirm)
	})

	t.Run("conflict keeps the draft and refreshes availability", func(t *testing.T) {
		gw := gatewaymock.NewMockGateway(gomock.NewController(t))
		w := wizardAtConfirm(t, gw)

		day := mustDay(t, "2024-05-16")
		gw.EXPECT().
			CreateReservation(gomock.Any(), day, reservation.TimeLabel("11:00"), gomock.Any()).
			Return(nil, gateway.WrapErr(discardLogger(), gateway.KindConflict, "slot taken", nil))
		gw.EXPECT().ListBookedTimes(gomock.Any(), day).
			Return([]reservation.TimeLabel{"09:00", "11:00"}, nil)

		_, err := w.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrSlotConflict)

		snap := w.Snapshot()
		assert.Equal(t, usecase.StepConfirm, snap.Step, "the user retries in place")
		assert.Equal(t, day, snap.Draft.Day)
		assert.Equal(t, reservation.TimeLabel("11:00"), snap.Draft.Time)
		assert.True(t, snap.Availability.IsBooked("11:00"), "availability reflects the lost slot")
	})

	t.Run("unauthorized and validation failures map to their own errors", func(t *testing.T) {
		cases := []struct {
			name  string
			kind  gateway.ErrorKind
			errIs error
		}{
			{"unauthorized", gateway.KindUnauthorized, usecase.ErrUnauthorized},
			{"validation", gateway.KindValidation, usecase.ErrInvalidDraft},
			{"network", gateway.KindNetwork, usecase.ErrSubmitFailed},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				gw := gatewaymock.NewMockGateway(gomock.NewController(t))
				w := wizardAtConfirm(t, gw)
				gw.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, gateway.WrapErr(discardLogger(), tc.kind, "rejected", nil))

				_, err := w.Submit(context.Background())
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, usecase.StepConfirm, w.Snapshot().Step)
			})
		}
	})

	t.Run("at most one submission in flight", func(t *testing.T) {
		gw := gatewaymock.NewMockGateway(gomock.NewController(t))
		w := wizardAtConfirm(t, gw)

		started := make(chan struct{})
		release := make(chan struct{})
		created := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = "2024-05-16"
			b.Time = "11:00"
		}).MustBuildDomain()

		gw.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, reservation.Day, reservation.TimeLabel, reservation.Note) (*reservation.Reservation, error) {
				close(started)
				<-release
				return created, nil
			})

		done := make(chan error, 1)
		go func() {
			_, err := w.Submit(context.Background())
			done <- err
		}()

		<-started
		_, err := w.Submit(context.Background())
		assert.ErrorIs(t, err, usecase.ErrSubmissionInFlight)
		assert.ErrorIs(t, w.Reset(), usecase.ErrSubmissionInFlight)

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, usecase.StepSuccess, w.Snapshot().Step)
	})
}

func TestWizardReset(t *testing.T) {
	gw := gatewaymock.NewMockGateway(gomock.NewController(t))
	w := wizardAtConfirm(t, gw)

	require.NoError(t, w.Reset())

	snap := w.Snapshot()
	assert.Equal(t, usecase.StepWelcome, snap.Step)
	assert.True(t, snap.Draft.Day.IsZero())
	assert.Nil(t, snap.Created)
}

func TestWizardService(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockGateway(ctrl)
	clk := clock.NewMockClock(testNow)
	svc := usecase.NewWizardService(gw, clk, discardLogger(), config.SessionConfig{TTL: 30 * time.Minute})

	w := svc.Create()
	got, err := svc.Get(w.ID())
	require.NoError(t, err)
	assert.Same(t, w, got)

	t.Run("expired session is gone", func(t *testing.T) {
		clk.Advance(31 * time.Minute)
		_, err := svc.Get(w.ID())
		assert.ErrorIs(t, err, usecase.ErrWizardNotFound)
	})

	t.Run("discard removes immediately", func(t *testing.T) {
		w2 := svc.Create()
		svc.Discard(w2.ID())
		_, err := svc.Get(w2.ID())
		assert.ErrorIs(t, err, usecase.ErrWizardNotFound)
	})
}
