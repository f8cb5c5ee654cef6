package response

import (
	"slotbook/internal/domain/reservation"
	"slotbook/internal/usecase"

	"github.com/google/uuid"
)

type DraftResponse struct {
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
	Note string `json:"note,omitempty"`
}

type WizardResponse struct {
	ID                   uuid.UUID            `json:"id"`
	Step                 int                  `json:"step"`
	StepName             string               `json:"stepName"`
	Draft                DraftResponse        `json:"draft"`
	Window               []string             `json:"window,omitempty"`
	AvailableTimes       []string             `json:"availableTimes,omitempty"`
	BookedTimes          []string             `json:"bookedTimes,omitempty"`
	AvailabilityDegraded bool                 `json:"availabilityDegraded,omitempty"`
	Submitting           bool                 `json:"submitting"`
	Created              *ReservationResponse `json:"created,omitempty"`
}

func FromWizard(snap usecase.Snapshot, window []reservation.Day) *WizardResponse {
	resp := &WizardResponse{
		ID:                   snap.ID,
		Step:                 int(snap.Step),
		StepName:             snap.Step.String(),
		Submitting:           snap.Submitting,
		AvailabilityDegraded: snap.Availability.Unresolved,
	}

	if !snap.Draft.Day.IsZero() {
		resp.Draft.Date = snap.Draft.Day.String()
	}
	resp.Draft.Time = snap.Draft.Time.String()
	resp.Draft.Note = snap.Draft.Note.String()

	if snap.Step == usecase.StepDatePick {
		for _, d := range window {
			resp.Window = append(resp.Window, d.String())
		}
	}
	if snap.Step == usecase.StepTimePick {
		for _, t := range reservation.AvailableTimes() {
			resp.AvailableTimes = append(resp.AvailableTimes, t.String())
		}
		for _, t := range snap.Availability.BookedList() {
			resp.BookedTimes = append(resp.BookedTimes, t.String())
		}
	}
	if snap.Created != nil {
		resp.Created = FromReservation(snap.Created)
	}
	return resp
}
