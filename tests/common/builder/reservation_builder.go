//go:build unit || e2e

package builder

import (
	"slotbook/internal/domain/reservation"
)

type ReservationBuilder struct {
	ID      string
	Name    string
	Surname string
	Email   string
	Date    string
	Time    string
	Note    string
	Status  reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:      "65f0c1d2aab7e5a1c0ffee01",
		Name:    "Ayşe",
		Surname: "Yılmaz",
		Email:   "ayse@example.com",
		Date:    "2024-05-10",
		Time:    "10:00",
		Note:    "Pencere kenarı lütfen",
		Status:  reservation.StatusUnset,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	day, err := reservation.ParseDay(b.Date)
	if err != nil {
		return nil, err
	}
	timeLabel, err := reservation.ParseTimeLabel(b.Time)
	if err != nil {
		return nil, err
	}
	owner := reservation.Owner{Name: b.Name, Surname: b.Surname, Email: b.Email}
	return reservation.Reconstruct(b.ID, owner, day, timeLabel, reservation.NewNote(b.Note), b.Status)
}

// MustBuildDomain is for tests whose inputs are known good; it panics on
// a malformed builder instead of returning an error.
func (b *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
