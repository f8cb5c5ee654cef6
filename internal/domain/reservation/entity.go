package reservation

import "errors"

var (
	ErrMissingID   = errors.New("reservation id is required")
	ErrMissingDay  = errors.New("reservation day is required")
	ErrMissingTime = errors.New("reservation time is required")
)

// Owner is the display reference to the user who created a reservation.
// It is set upstream at creation and never changes.
type Owner struct {
	Name    string
	Surname string
	Email   string
}

func (o Owner) DisplayName() string {
	if o.Name == "" && o.Surname == "" {
		return "Bilinmeyen Kullanıcı"
	}
	return o.Name + " " + o.Surname
}

// Reservation is the central entity. The id is an opaque identifier
// assigned by the upstream persistence service; day and time are
// immutable once booked, and the stored status only changes through an
// admin transition.
type Reservation struct {
	id     string
	owner  Owner
	day    Day
	time   TimeLabel
	note   Note
	status Status
}

// Reconstruct rebuilds an entity from an upstream record. Records always
// arrive with an id; the stored status may be unset.
func Reconstruct(id string, owner Owner, day Day, timeLabel TimeLabel, note Note, status Status) (*Reservation, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if day.IsZero() {
		return nil, ErrMissingDay
	}
	if timeLabel.IsZero() {
		return nil, ErrMissingTime
	}
	return &Reservation{
		id:     id,
		owner:  owner,
		day:    day,
		time:   timeLabel,
		note:   note,
		status: status,
	}, nil
}

func (r *Reservation) ID() string      { return r.id }
func (r *Reservation) Owner() Owner    { return r.owner }
func (r *Reservation) Day() Day        { return r.day }
func (r *Reservation) Time() TimeLabel { return r.time }
func (r *Reservation) Note() Note      { return r.note }
func (r *Reservation) Status() Status  { return r.status }

// WithStatus returns a copy carrying the given stored status. Used when
// the upstream confirms a transition and the in-memory record must be
// replaced without a refetch.
func (r *Reservation) WithStatus(status Status) *Reservation {
	clone := *r
	clone.status = status
	return &clone
}
