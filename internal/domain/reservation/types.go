package reservation

import "strings"

type Status string

const (
	// StatusUnset is the stored default until an admin sets a status
	// explicitly; listings never show it, they show a derived status.
	StatusUnset     Status = ""
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnset, StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTransitionTarget reports whether an admin may select this status from
// the per-row menu. Unset is a storage default, never a target.
func (s Status) IsTransitionTarget() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Upstream records carry free-form labels written over time by two UIs,
// one Turkish and one English. ParseStatus folds them all into the
// canonical enum; anything unrecognized is treated as unset so that the
// date comparison fallback applies.
func ParseStatus(raw string) Status {
	trimmed := strings.TrimSpace(raw)

	// Exact Turkish labels first: ToLower turns the dotted capital İ
	// into "i" plus a combining dot, which would miss the plain-ascii
	// cases below.
	switch trimmed {
	case "İptal":
		return StatusCancelled
	case "Tamamlandı":
		return StatusCompleted
	case "Aktif":
		return StatusActive
	}

	switch strings.ToLower(trimmed) {
	case "iptal", "cancelled", "canceled":
		return StatusCancelled
	case "tamamlandı", "tamamlandi", "completed":
		return StatusCompleted
	case "aktif", "active":
		return StatusActive
	default:
		return StatusUnset
	}
}

// Label renders the status the way the Turkish UI displays it.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Aktif"
	case StatusCancelled:
		return "İptal"
	case StatusCompleted:
		return "Tamamlandı"
	default:
		return ""
	}
}
