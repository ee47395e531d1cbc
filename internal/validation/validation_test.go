package validation

import (
	"testing"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/models"
)

func validDraft() models.Draft {
	return models.Draft{
		Fecha:    "2024-03-10",
		Hora:     "13:00",
		Nombre:   "Ana",
		Cantidad: 2,
		Tipo:     constants.SittingLunch,
	}
}

func TestCheckDraft(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Draft)
		wantErr bool
	}{
		{
			name:   "valid draft",
			mutate: func(d *models.Draft) {},
		},
		{
			name:    "missing nombre",
			mutate:  func(d *models.Draft) { d.Nombre = "  " },
			wantErr: true,
		},
		{
			name:    "bad fecha",
			mutate:  func(d *models.Draft) { d.Fecha = "10-03-2024" },
			wantErr: true,
		},
		{
			name:    "bad hora",
			mutate:  func(d *models.Draft) { d.Hora = "1pm" },
			wantErr: true,
		},
		{
			name:    "zero cantidad",
			mutate:  func(d *models.Draft) { d.Cantidad = 0 },
			wantErr: true,
		},
		{
			name:    "unknown tipo",
			mutate:  func(d *models.Draft) { d.Tipo = "MERIENDA" },
			wantErr: true,
		},
		{
			name:   "dinner sitting",
			mutate: func(d *models.Draft) { d.Tipo = constants.SittingDinner },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := CheckDraft(d)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPhoneWarning(t *testing.T) {
	if PhoneWarning("011-4567890") != "" {
		t.Error("expected no warning for well-shaped phone")
	}
	if PhoneWarning("") != "" {
		t.Error("expected no warning for empty phone")
	}
	if PhoneWarning("4567890") == "" {
		t.Error("expected a warning for a phone without the prefix")
	}
}
