package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDay       = errors.New("invalid calendar day")
	ErrUnknownTimeLabel = errors.New("unknown time label")
)

const dayLayout = "2006-01-02"

// Day is a calendar date with no time-of-day component. All comparisons
// between reservations and "today" happen at this granularity.
type Day struct {
	t time.Time
}

func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return NewDay(t), nil
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) AddDays(n int) Day {
	return NewDay(d.t.AddDate(0, 0, n))
}

func (d Day) Time() time.Time {
	return d.t
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Label renders the day the way the UI shows group headers, e.g.
// "01 Mayıs 2024".
func (d Day) Label() string {
	return fmt.Sprintf("%02d %s %d", d.t.Day(), turkishMonths[d.t.Month()-1], d.t.Year())
}

// TimeLabel is one of the fixed time-of-day labels a slot can be booked
// at. Only members of the grid are valid; there is no free-form time.
type TimeLabel string

var availableTimes = []TimeLabel{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
}

func AvailableTimes() []TimeLabel {
	out := make([]TimeLabel, len(availableTimes))
	copy(out, availableTimes)
	return out
}

func ParseTimeLabel(s string) (TimeLabel, error) {
	candidate := TimeLabel(strings.TrimSpace(s))
	for _, t := range availableTimes {
		if t == candidate {
			return t, nil
		}
	}
	return "", ErrUnknownTimeLabel
}

func (t TimeLabel) String() string {
	return string(t)
}

func (t TimeLabel) IsZero() bool {
	return t == ""
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
