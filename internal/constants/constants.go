package constants

import "time"

// Sitting is one of the two daily meal periods.
type Sitting string

// Lateness classifies a reservation's punctuality against the current time.
type Lateness int

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "reservas"
	DefaultKeyringUser = "sheet-endpoint"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Sitting constants. The wire values are the ones the sheet stores.
	SittingLunch  Sitting = "ALMUERZO"
	SittingDinner Sitting = "CENA"

	// Lateness thresholds, in minutes past the reserved time. Both are
	// strict: exactly 10 or 15 elapsed minutes is still on time / warning.
	LateWarnAfterMin     = 10
	LateCriticalAfterMin = 15

	// ReclassifyInterval is how often lateness coloring is recomputed.
	// It drives re-rendering only, never a re-fetch.
	ReclassifyInterval = 60 * time.Second

	DefaultHTTPTimeout  = 15 * time.Second
	DefaultPollInterval = 5 * time.Minute

	// Remote protocol literals (Apps Script endpoint contract)
	ActionAddReservation = "addReservation"
	ActionUpdateStatus   = "updateStatus"
	StatusSuccess        = "success"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateAdding
)

const (
	LatenessOnTime Lateness = iota
	LatenessWarn
	LatenessCritical
	LatenessArrived
	LatenessUnscheduled
)

func (l Lateness) String() string {
	switch l {
	case LatenessOnTime:
		return "on-time"
	case LatenessWarn:
		return "late-warn"
	case LatenessCritical:
		return "late-critical"
	case LatenessArrived:
		return "arrived"
	case LatenessUnscheduled:
		return "unscheduled"
	default:
		return "unknown"
	}
}
