package response

import (
	"slotbook/internal/domain/reservation"
	"slotbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          string `json:"id"`
	OwnerName   string `json:"ownerName,omitempty"`
	OwnerEmail  string `json:"ownerEmail,omitempty"`
	Date        string `json:"date"`
	DateLabel   string `json:"dateLabel"`
	Time        string `json:"time"`
	Note        string `json:"note,omitempty"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel,omitempty"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:          r.ID(),
		OwnerName:   r.Owner().DisplayName(),
		OwnerEmail:  r.Owner().Email,
		Date:        r.Day().String(),
		DateLabel:   r.Day().Label(),
		Time:        r.Time().String(),
		Note:        r.Note().String(),
		Status:      r.Status().String(),
		StatusLabel: r.Status().Label(),
	}
}

type GroupItemResponse struct {
	ID          string `json:"id"`
	OwnerName   string `json:"ownerName"`
	OwnerEmail  string `json:"ownerEmail,omitempty"`
	Time        string `json:"time"`
	Note        string `json:"note,omitempty"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

type GroupResponse struct {
	Date  string              `json:"date"`
	Label string              `json:"label"`
	Count int                 `json:"count"`
	Items []GroupItemResponse `json:"items"`
}

type PageResponse struct {
	Groups      []GroupResponse `json:"groups"`
	Page        int             `json:"page"`
	PageSize    int             `json:"pageSize"`
	PageSizes   []int           `json:"pageSizes"`
	TotalGroups int             `json:"totalGroups"`
	Stats       queries.Stats   `json:"stats"`
	Empty       bool            `json:"empty"`
}

func FromGroupedPage(p queries.GroupedPage) *PageResponse {
	groups := make([]GroupResponse, 0, len(p.Groups))
	for _, g := range p.Groups {
		gr := GroupResponse{
			Date:  g.Day.String(),
			Label: g.Label,
			Count: len(g.Items),
		}
		// Field-for-field mirror of the read model.
		_ = copier.Copy(&gr.Items, &g.Items)
		groups = append(groups, gr)
	}

	return &PageResponse{
		Groups:      groups,
		Page:        p.Page,
		PageSize:    p.PageSize,
		PageSizes:   queries.PageSizes,
		TotalGroups: p.TotalGroups,
		Stats:       p.Stats,
		Empty:       p.Empty(),
	}
}
