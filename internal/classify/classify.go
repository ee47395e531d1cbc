// Package classify partitions reservations into the three dashboard buckets
// and computes lateness states. Everything here is pure: no clocks, no I/O.
package classify

import (
	"sort"
	"time"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
	"github.com/solterra/reservas/internal/utils"
)

// Buckets splits records into today-lunch, today-dinner and future, each
// sorted. Records dated before today are dropped: past reservations are
// never shown. Sorts are stable so equal keys keep their input order.
func Buckets(records []models.Reservation, today string) (lunch, dinner, future []models.Reservation) {
	for _, r := range records {
		switch {
		case r.Fecha == today && r.Tipo == constants.SittingLunch:
			lunch = append(lunch, r)
		case r.Fecha == today && r.Tipo == constants.SittingDinner:
			dinner = append(dinner, r)
		case r.Fecha > today:
			future = append(future, r)
		}
	}

	// Zero-padded HH:MM and YYYY-MM-DD compare correctly as strings.
	sort.SliceStable(lunch, func(i, j int) bool { return lunch[i].Hora < lunch[j].Hora })
	sort.SliceStable(dinner, func(i, j int) bool { return dinner[i].Hora < dinner[j].Hora })
	sort.SliceStable(future, func(i, j int) bool {
		if future[i].Fecha != future[j].Fecha {
			return future[i].Fecha < future[j].Fecha
		}
		return future[i].Hora < future[j].Hora
	})
	return lunch, dinner, future
}

// Lateness classifies a single reservation at the given instant. Arrived
// wins over everything; future-bucket rows are never late; a row whose
// fecha+hora cannot be parsed has no schedule to be late against.
func Lateness(r models.Reservation, now time.Time, isFuture bool) constants.Lateness {
	if r.Arrived {
		return constants.LatenessArrived
	}
	if isFuture {
		return constants.LatenessOnTime
	}

	at, err := utils.CombineDateAndTime(r.Fecha, r.Hora, now.Location())
	if err != nil {
		return constants.LatenessUnscheduled
	}

	elapsed := now.Sub(at).Minutes()
	switch {
	case elapsed > constants.LateCriticalAfterMin:
		return constants.LatenessCritical
	case elapsed > constants.LateWarnAfterMin:
		return constants.LatenessWarn
	default:
		return constants.LatenessOnTime
	}
}
