//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotbook/internal/domain/reservation"
	"slotbook/internal/gateway"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGateway(t *testing.T, handler http.HandlerFunc) *gateway.HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	return gateway.NewHTTPGateway(cfg, gateway.NewStaticCredentials("tok-123"), discardLogger())
}

func mustDay(t *testing.T, s string) reservation.Day {
	t.Helper()
	d, err := reservation.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestListReservations(t *testing.T) {
	t.Run("parses records and forwards the bearer token", func(t *testing.T) {
		var gotAuth, gotPath string
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`[
				{"_id":"a1","userId":{"name":"Ayşe","surname":"Yılmaz","email":"ayse@example.com"},"date":"2024-05-10","time":"10:00","note":"n","status":"İptal"},
				{"_id":"a2","userId":null,"date":"2024-05-11T00:00:00Z","time":"14:00","note":"","status":""}
			]`))
		})

		list, err := gw.ListReservations(context.Background(), gateway.ScopeSelf)
		require.NoError(t, err)

		assert.Equal(t, "Bearer tok-123", gotAuth)
		assert.Equal(t, "/reservation/user", gotPath)
		require.Len(t, list, 2)
		assert.Equal(t, "a1", list[0].ID())
		assert.Equal(t, reservation.StatusCancelled, list[0].Status())
		assert.Equal(t, "Ayşe Yılmaz", list[0].Owner().DisplayName())
		assert.Equal(t, "2024-05-11", list[1].Day().String(), "timestamp dates collapse to a day")
		assert.Equal(t, "Bilinmeyen Kullanıcı", list[1].Owner().DisplayName())
	})

	t.Run("all scope hits the admin path", func(t *testing.T) {
		var gotPath string
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := gw.ListReservations(context.Background(), gateway.ScopeAll)
		require.NoError(t, err)
		assert.Equal(t, "/reservation/all-user", gotPath)
	})

	t.Run("malformed records are skipped, not fatal", func(t *testing.T) {
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[
				{"_id":"good","date":"2024-05-10","time":"10:00"},
				{"_id":"bad-time","date":"2024-05-10","time":"25:99"},
				{"_id":"","date":"2024-05-10","time":"10:00"}
			]`))
		})

		list, err := gw.ListReservations(context.Background(), gateway.ScopeSelf)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "good", list[0].ID())
	})

	t.Run("status codes classify into kinds", func(t *testing.T) {
		cases := []struct {
			status int
			kind   gateway.ErrorKind
		}{
			{http.StatusUnauthorized, gateway.KindUnauthorized},
			{http.StatusForbidden, gateway.KindUnauthorized},
			{http.StatusNotFound, gateway.KindNotFound},
			{http.StatusConflict, gateway.KindConflict},
			{http.StatusBadRequest, gateway.KindValidation},
			{http.StatusUnprocessableEntity, gateway.KindValidation},
			{http.StatusInternalServerError, gateway.KindNetwork},
		}
		for _, tc := range cases {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			_, err := gw.ListReservations(context.Background(), gateway.ScopeSelf)
			require.Error(t, err)
			assert.True(t, gateway.IsKind(err, tc.kind), "status %d should map to %s, got %v", tc.status, tc.kind, err)
		}
	})

	t.Run("unreachable upstream is a network error", func(t *testing.T) {
		cfg := config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}
		gw := gateway.NewHTTPGateway(cfg, gateway.NewStaticCredentials("tok"), discardLogger())

		_, err := gw.ListReservations(context.Background(), gateway.ScopeSelf)
		assert.True(t, gateway.IsKind(err, gateway.KindNetwork))
	})
}

func TestListBookedTimes(t *testing.T) {
	var gotQuery string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/reservation/all", r.URL.Path)
		_, _ = w.Write([]byte(`["10:00","garbage","14:00"]`))
	})

	times, err := gw.ListBookedTimes(context.Background(), mustDay(t, "2024-05-16"))
	require.NoError(t, err)

	assert.Equal(t, "date=2024-05-16", gotQuery)
	assert.Equal(t, []reservation.TimeLabel{"10:00", "14:00"}, times, "unknown labels are dropped")
}

func TestCreateReservation(t *testing.T) {
	t.Run("posts the draft and returns the created record", func(t *testing.T) {
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/reservation", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "2024-05-16", body["date"])
			assert.Equal(t, "11:00", body["time"])
			assert.Equal(t, "cam kenarı", body["note"])

			_, _ = w.Write([]byte(`{"_id":"new1","date":"2024-05-16","time":"11:00","note":"cam kenarı","status":""}`))
		})

		created, err := gw.CreateReservation(context.Background(), mustDay(t, "2024-05-16"), "11:00", reservation.NewNote("cam kenarı"))
		require.NoError(t, err)
		assert.Equal(t, "new1", created.ID())
		assert.Equal(t, reservation.StatusUnset, created.Status())
	})

	t.Run("sparse echo falls back to the submitted draft", func(t *testing.T) {
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"_id":"new2"}`))
		})

		created, err := gw.CreateReservation(context.Background(), mustDay(t, "2024-05-16"), "11:00", reservation.NewNote("n"))
		require.NoError(t, err)
		assert.Equal(t, "new2", created.ID())
		assert.Equal(t, "2024-05-16", created.Day().String())
		assert.Equal(t, reservation.TimeLabel("11:00"), created.Time())
	})

	t.Run("slot conflict surfaces as a conflict kind", func(t *testing.T) {
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})

		_, err := gw.CreateReservation(context.Background(), mustDay(t, "2024-05-16"), "11:00", reservation.Note{})
		assert.True(t, gateway.IsKind(err, gateway.KindConflict))
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/reservation/abc/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "İptal", body["status"], "the upstream stores the Turkish label")

		_, _ = w.Write([]byte(`{"_id":"abc","date":"2024-05-16","time":"11:00","status":"İptal"}`))
	})

	updated, err := gw.UpdateReservationStatus(context.Background(), "abc", reservation.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelled, updated.Status())
}

func TestContextCredentials(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC))
	creds := gateway.NewContextCredentials(clk)

	signed := func(t *testing.T, exp time.Time) string {
		t.Helper()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
		s, err := token.SignedString([]byte("irrelevant"))
		require.NoError(t, err)
		return s
	}

	t.Run("missing token", func(t *testing.T) {
		_, err := creds.Token(context.Background())
		assert.ErrorIs(t, err, gateway.ErrNoCredential)
	})

	t.Run("live jwt passes", func(t *testing.T) {
		ctx := gateway.WithToken(context.Background(), signed(t, clk.Now().Add(time.Hour)))
		got, err := creds.Token(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	})

	t.Run("expired jwt is rejected without a round trip", func(t *testing.T) {
		ctx := gateway.WithToken(context.Background(), signed(t, clk.Now().Add(-time.Minute)))
		_, err := creds.Token(ctx)
		assert.ErrorIs(t, err, gateway.ErrCredentialExpired)
	})

	t.Run("opaque tokens pass through untouched", func(t *testing.T) {
		ctx := gateway.WithToken(context.Background(), "not-a-jwt")
		got, err := creds.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "not-a-jwt", got)
	})
}
