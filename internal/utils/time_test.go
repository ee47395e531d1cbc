package utils

import (
	"testing"
	"time"
)

func TestCombineDateAndTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		wantErr bool
	}{
		{
			name:  "valid date and time",
			date:  "2024-03-10",
			clock: "13:30",
		},
		{
			name:  "midnight",
			date:  "2024-12-31",
			clock: "00:00",
		},
		{
			name:    "invalid date",
			date:    "10/03/2024",
			clock:   "13:30",
			wantErr: true,
		},
		{
			name:    "invalid time",
			date:    "2024-03-10",
			clock:   "25:99",
			wantErr: true,
		},
		{
			name:    "empty date",
			date:    "",
			clock:   "13:30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineDateAndTime(tt.date, tt.clock, time.UTC)
			if (err != nil) != tt.wantErr {
				t.Errorf("CombineDateAndTime() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got.Format("2006-01-02") != tt.date {
				t.Errorf("date component = %s, want %s", got.Format("2006-01-02"), tt.date)
			}
			if got.Format("15:04") != tt.clock {
				t.Errorf("time component = %s, want %s", got.Format("15:04"), tt.clock)
			}
			if got.Location() != time.UTC {
				t.Errorf("location = %v, want UTC", got.Location())
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if !ValidateDateFormat("2024-03-10") {
		t.Error("ValidateDateFormat rejected a valid date")
	}
	if ValidateDateFormat("2024-3-1") {
		t.Error("ValidateDateFormat accepted an unpadded date")
	}
	if !ValidateTimeFormat("09:05") {
		t.Error("ValidateTimeFormat rejected a valid time")
	}
	if ValidateTimeFormat("9:05pm") {
		t.Error("ValidateTimeFormat accepted a 12h time")
	}
}
