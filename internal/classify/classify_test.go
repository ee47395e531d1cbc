package classify

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
)

func res(id, fecha, hora string, tipo constants.Sitting) models.Reservation {
	return models.Reservation{ID: id, Fecha: fecha, Hora: hora, Tipo: tipo, Nombre: "n" + id, Cantidad: 2}
}

func ids(rs []models.Reservation) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestBuckets(t *testing.T) {
	today := "2024-03-10"
	records := []models.Reservation{
		res("1", "2024-03-10", "13:00", constants.SittingLunch),
		res("2", "2024-03-10", "12:30", constants.SittingLunch),
		res("3", "2024-03-09", "20:00", constants.SittingDinner),
		res("4", "2024-03-11", "09:00", constants.SittingLunch),
	}

	lunch, dinner, future := Buckets(records, today)

	if diff := cmp.Diff([]string{"2", "1"}, ids(lunch)); diff != "" {
		t.Errorf("lunch bucket mismatch (-want +got):\n%s", diff)
	}
	if len(dinner) != 0 {
		t.Errorf("dinner bucket should be empty, got %v", ids(dinner))
	}
	if diff := cmp.Diff([]string{"4"}, ids(future)); diff != "" {
		t.Errorf("future bucket mismatch (-want +got):\n%s", diff)
	}
}

func TestBucketsDropsPast(t *testing.T) {
	records := []models.Reservation{
		res("old", "2023-12-31", "12:00", constants.SittingLunch),
	}
	lunch, dinner, future := Buckets(records, "2024-03-10")
	if len(lunch)+len(dinner)+len(future) != 0 {
		t.Errorf("past reservation leaked into a bucket: %v %v %v", ids(lunch), ids(dinner), ids(future))
	}
}

func TestBucketsFutureSortedByDateThenTime(t *testing.T) {
	records := []models.Reservation{
		res("1", "2024-03-12", "09:00", constants.SittingLunch),
		res("2", "2024-03-11", "21:00", constants.SittingDinner),
		res("3", "2024-03-11", "13:00", constants.SittingLunch),
	}
	_, _, future := Buckets(records, "2024-03-10")
	if diff := cmp.Diff([]string{"3", "2", "1"}, ids(future)); diff != "" {
		t.Errorf("future ordering mismatch (-want +got):\n%s", diff)
	}
}

func TestBucketsStableOnEqualKeys(t *testing.T) {
	records := []models.Reservation{
		res("a", "2024-03-10", "13:00", constants.SittingLunch),
		res("b", "2024-03-10", "13:00", constants.SittingLunch),
		res("c", "2024-03-10", "12:00", constants.SittingLunch),
	}
	lunch, _, _ := Buckets(records, "2024-03-10")
	if diff := cmp.Diff([]string{"c", "a", "b"}, ids(lunch)); diff != "" {
		t.Errorf("equal-key order not preserved (-want +got):\n%s", diff)
	}
}

func TestLateness(t *testing.T) {
	base := res("1", "2024-03-10", "13:00", constants.SittingLunch)
	at := func(hhmm string) time.Time {
		tm, err := time.ParseInLocation("2006-01-02 15:04", "2024-03-10 "+hhmm, time.Local)
		if err != nil {
			t.Fatalf("bad test time %q: %v", hhmm, err)
		}
		return tm
	}

	tests := []struct {
		name     string
		record   models.Reservation
		now      time.Time
		isFuture bool
		want     constants.Lateness
	}{
		{
			name:   "before reserved time is on time",
			record: base,
			now:    at("12:45"),
			want:   constants.LatenessOnTime,
		},
		{
			name:   "exactly 10 minutes elapsed is still on time",
			record: base,
			now:    at("13:10"),
			want:   constants.LatenessOnTime,
		},
		{
			name:   "11 minutes elapsed is a warning",
			record: base,
			now:    at("13:11"),
			want:   constants.LatenessWarn,
		},
		{
			name:   "exactly 15 minutes elapsed is still a warning",
			record: base,
			now:    at("13:15"),
			want:   constants.LatenessWarn,
		},
		{
			name:   "16 minutes elapsed is critical",
			record: base,
			now:    at("13:16"),
			want:   constants.LatenessCritical,
		},
		{
			name:   "just past 15 minutes is critical",
			record: base,
			now:    at("13:15").Add(time.Second),
			want:   constants.LatenessCritical,
		},
		{
			name: "arrived overrides any elapsed time",
			record: func() models.Reservation {
				r := base
				r.Arrived = true
				return r
			}(),
			now:  at("14:30"),
			want: constants.LatenessArrived,
		},
		{
			name:     "future bucket rows are never late",
			record:   base,
			now:      at("14:30"),
			isFuture: true,
			want:     constants.LatenessOnTime,
		},
		{
			name: "unparsable schedule",
			record: func() models.Reservation {
				r := base
				r.Hora = "25:99"
				return r
			}(),
			now:  at("13:00"),
			want: constants.LatenessUnscheduled,
		},
		{
			name: "empty date is unscheduled",
			record: func() models.Reservation {
				r := base
				r.Fecha = ""
				return r
			}(),
			now:  at("13:00"),
			want: constants.LatenessUnscheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lateness(tt.record, tt.now, tt.isFuture)
			if got != tt.want {
				t.Errorf("Lateness() = %v, want %v", got, tt.want)
			}
		})
	}
}
