package queries

import (
	"sort"
	"time"

	"slotbook/internal/domain/reservation"
)

// Read models (DTO for read side)
type ReservationItem struct {
	ID           string `json:"id"`
	OwnerName    string `json:"ownerName"`
	OwnerEmail   string `json:"ownerEmail"`
	Time         string `json:"time"`
	Note         string `json:"note,omitempty"`
	Status       string `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	StoredStatus string `json:"storedStatus,omitempty"`
}

// Group is one calendar day's reservations, the unit of pagination.
type Group struct {
	Day   reservation.Day
	Label string
	Items []ReservationItem
}

type Stats struct {
	TotalReservations int `json:"totalReservations"`
	TotalDays         int `json:"totalDays"`
}

type GroupedPage struct {
	Groups      []Group
	Page        int
	PageSize    int
	TotalGroups int
	Stats       Stats
}

// Empty reports whether there is nothing to render at all, as opposed to
// an out-of-range page of a non-empty list.
func (p GroupedPage) Empty() bool {
	return p.Stats.TotalReservations == 0
}

const DefaultPageSize = 7

// The page-size menu the UI offers; anything else falls back to the
// default.
var PageSizes = []int{1, 7, 14, 31}

func ValidatePageSize(size int) int {
	for _, s := range PageSizes {
		if size == s {
			return size
		}
	}
	return DefaultPageSize
}

// GroupByDay partitions reservations into per-day groups ordered newest
// first. Within a group the arrival order of the source list is kept; no
// secondary sort is applied. Every item carries a status derived fresh
// against now.
func GroupByDay(list []*reservation.Reservation, now time.Time) []Group {
	byDay := make(map[string]*Group)
	order := make([]string, 0)

	for _, r := range list {
		key := r.Day().String()
		g, ok := byDay[key]
		if !ok {
			g = &Group{Day: r.Day(), Label: r.Day().Label()}
			byDay[key] = g
			order = append(order, key)
		}
		g.Items = append(g.Items, toItem(r, now))
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byDay[key])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[j].Day.Before(groups[i].Day)
	})
	return groups
}

// Paginate slices whole groups, never individual reservations. Page
// indexes are zero-based; an out-of-range page yields no groups but keeps
// the totals so the UI can clamp.
func Paginate(groups []Group, page, pageSize int, totalReservations int) GroupedPage {
	pageSize = ValidatePageSize(pageSize)
	if page < 0 {
		page = 0
	}

	start := page * pageSize
	end := start + pageSize
	var window []Group
	if start < len(groups) {
		if end > len(groups) {
			end = len(groups)
		}
		window = groups[start:end]
	}

	return GroupedPage{
		Groups:      window,
		Page:        page,
		PageSize:    pageSize,
		TotalGroups: len(groups),
		Stats: Stats{
			TotalReservations: totalReservations,
			TotalDays:         len(groups),
		},
	}
}

func toItem(r *reservation.Reservation, now time.Time) ReservationItem {
	derived := reservation.DeriveStatus(r.Status(), r.Day(), now)
	return ReservationItem{
		ID:           r.ID(),
		OwnerName:    r.Owner().DisplayName(),
		OwnerEmail:   r.Owner().Email,
		Time:         r.Time().String(),
		Note:         r.Note().String(),
		Status:       derived.String(),
		StatusLabel:  derived.Label(),
		StoredStatus: r.Status().String(),
	}
}
