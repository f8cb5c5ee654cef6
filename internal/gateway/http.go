package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"slotbook/internal/domain/reservation"
	"slotbook/internal/pkg/config"
)

// HTTPGateway implements Gateway against the upstream reservation API.
// Every call attaches the caller's bearer credential; failures are
// classified into kinds at this boundary so nothing above it has to look
// at status codes.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialProvider
	logger     *slog.Logger
}

func NewHTTPGateway(cfg config.UpstreamConfig, creds CredentialProvider, logger *slog.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		creds:      creds,
		logger:     logger,
	}
}

func (g *HTTPGateway) ListReservations(ctx context.Context, scope Scope) ([]*reservation.Reservation, error) {
	path := "/reservation/user"
	if scope == ScopeAll {
		path = "/reservation/all-user"
	}

	var records []reservationRecord
	if err := g.doJSON(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}

	list := make([]*reservation.Reservation, 0, len(records))
	for _, rec := range records {
		entity, err := rec.toDomain()
		if err != nil {
			// A malformed record must not sink the whole listing.
			g.logger.Warn("skipping malformed reservation record", "id", rec.ID, "error", err)
			continue
		}
		list = append(list, entity)
	}
	return list, nil
}

func (g *HTTPGateway) ListBookedTimes(ctx context.Context, day reservation.Day) ([]reservation.TimeLabel, error) {
	path := "/reservation/all?date=" + url.QueryEscape(day.String())

	var raw []string
	if err := g.doJSON(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	times := make([]reservation.TimeLabel, 0, len(raw))
	for _, s := range raw {
		label, err := reservation.ParseTimeLabel(s)
		if err != nil {
			g.logger.Warn("skipping unknown booked time label", "label", s)
			continue
		}
		times = append(times, label)
	}
	return times, nil
}

func (g *HTTPGateway) CreateReservation(ctx context.Context, day reservation.Day, timeLabel reservation.TimeLabel, note reservation.Note) (*reservation.Reservation, error) {
	body := createRequest{
		Date: day.String(),
		Time: timeLabel.String(),
		Note: note.String(),
	}

	var rec reservationRecord
	if err := g.doJSON(ctx, http.MethodPost, "/reservation", body, &rec); err != nil {
		return nil, err
	}
	return rec.toDomainWithFallback(day, timeLabel, note)
}

func (g *HTTPGateway) UpdateReservationStatus(ctx context.Context, id string, status reservation.Status) (*reservation.Reservation, error) {
	body := statusRequest{Status: status.Label()}

	var rec reservationRecord
	if err := g.doJSON(ctx, http.MethodPatch, "/reservation/"+url.PathEscape(id)+"/status", body, &rec); err != nil {
		return nil, err
	}
	return rec.toDomain()
}

func (g *HTTPGateway) doJSON(ctx context.Context, method, path string, reqBody any, respBody any) error {
	token, err := g.creds.Token(ctx)
	if err != nil {
		return WrapErr(g.logger, KindUnauthorized, "credential unavailable", err)
	}

	var buf bytes.Buffer
	if reqBody != nil {
		if encErr := json.NewEncoder(&buf).Encode(reqBody); encErr != nil {
			return WrapErr(g.logger, KindValidation, "encode request body", encErr)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, &buf)
	if err != nil {
		return WrapErr(g.logger, KindNetwork, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return WrapErr(g.logger, KindNetwork, "upstream unreachable", err)
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return WrapErr(g.logger, KindNetwork, "read response body", readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.classify(resp.StatusCode, b)
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			return WrapErr(g.logger, KindNetwork, fmt.Sprintf("decode upstream response: %s", truncate(b, 200)), err)
		}
	}
	return nil
}

func (g *HTTPGateway) classify(status int, body []byte) error {
	msg := fmt.Sprintf("upstream status=%d body=%s", status, truncate(body, 200))
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return WrapErr(g.logger, KindUnauthorized, msg, nil)
	case http.StatusNotFound:
		return WrapErr(g.logger, KindNotFound, msg, nil)
	case http.StatusConflict:
		return WrapErr(g.logger, KindConflict, msg, nil)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return WrapErr(g.logger, KindValidation, msg, nil)
	default:
		return WrapErr(g.logger, KindNetwork, msg, nil)
	}
}

func truncate(b []byte, max int) string {
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

type createRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
	Note string `json:"note,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type ownerRecord struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

type reservationRecord struct {
	ID     string       `json:"_id"`
	Owner  *ownerRecord `json:"userId"`
	Date   string       `json:"date"`
	Time   string       `json:"time"`
	Note   string       `json:"note"`
	Status string       `json:"status"`
}

func (r reservationRecord) toDomain() (*reservation.Reservation, error) {
	day, err := parseRecordDate(r.Date)
	if err != nil {
		return nil, err
	}
	timeLabel, err := reservation.ParseTimeLabel(r.Time)
	if err != nil {
		return nil, err
	}

	var owner reservation.Owner
	if r.Owner != nil {
		owner = reservation.Owner{Name: r.Owner.Name, Surname: r.Owner.Surname, Email: r.Owner.Email}
	}

	return reservation.Reconstruct(
		r.ID,
		owner,
		day,
		timeLabel,
		reservation.NewNote(r.Note),
		reservation.ParseStatus(r.Status),
	)
}

// toDomainWithFallback fills fields from the submitted draft when the
// upstream echoes a sparse record on create.
func (r reservationRecord) toDomainWithFallback(day reservation.Day, timeLabel reservation.TimeLabel, note reservation.Note) (*reservation.Reservation, error) {
	entity, err := r.toDomain()
	if err == nil {
		return entity, nil
	}
	if r.ID == "" {
		return nil, err
	}
	return reservation.Reconstruct(r.ID, reservation.Owner{}, day, timeLabel, note, reservation.ParseStatus(r.Status))
}

// Stored dates arrive either as bare days or as full timestamps; both
// collapse to a Day.
func parseRecordDate(s string) (reservation.Day, error) {
	if day, err := reservation.ParseDay(s); err == nil {
		return day, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return reservation.Day{}, errors.New("unparseable reservation date: " + s)
	}
	return reservation.NewDay(t), nil
}
