package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/agendasalud/backend/models"
)

func mustHora(t *testing.T, s string) models.TimeOfDay {
	t.Helper()
	hora, err := models.ParseTimeOfDay(s)
	if err != nil {
		t.Fatal(err)
	}
	return hora
}

func mustFecha(t *testing.T, s string) models.DateOnly {
	t.Helper()
	var fecha models.DateOnly
	if err := fecha.Scan(s); err != nil {
		t.Fatal(err)
	}
	return fecha
}

func TestActividadInputValidate(t *testing.T) {
	centroID := uuid.New()

	valid := func(t *testing.T) actividadInput {
		return actividadInput{
			CentroID:   centroID,
			Titulo:     "Vacunación",
			Fecha:      mustFecha(t, "2024-03-15"),
			HoraInicio: mustHora(t, "09:00"),
			HoraFin:    mustHora(t, "10:00"),
			Estado:     models.EstadoProgramada,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*actividadInput)
		forUpdate bool
		wantErr   bool
	}{
		{"valid create", func(in *actividadInput) {}, false, false},
		{"valid update", func(in *actividadInput) {}, true, false},
		{"missing centro on create", func(in *actividadInput) { in.CentroID = uuid.Nil }, false, true},
		{"missing centro tolerated on update", func(in *actividadInput) { in.CentroID = uuid.Nil }, true, false},
		{"empty titulo", func(in *actividadInput) { in.Titulo = "" }, false, true},
		{"whitespace titulo", func(in *actividadInput) { in.Titulo = "   " }, false, true},
		{"missing fecha", func(in *actividadInput) { in.Fecha = models.DateOnly{} }, false, true},
		{"missing hora_inicio", func(in *actividadInput) { in.HoraInicio = models.TimeOfDay{} }, false, true},
		{"missing hora_fin", func(in *actividadInput) { in.HoraFin = models.TimeOfDay{} }, false, true},
		{"start equals end", func(in *actividadInput) { in.HoraFin = in.HoraInicio }, false, true},
		{"start after end", func(in *actividadInput) {
			in.HoraInicio = mustHora(t, "11:00")
			in.HoraFin = mustHora(t, "10:00")
		}, false, true},
		{"start after end rejected on update too", func(in *actividadInput) {
			in.HoraInicio = mustHora(t, "11:00")
			in.HoraFin = mustHora(t, "10:00")
		}, true, true},
		{"unknown estado on update", func(in *actividadInput) { in.Estado = "pendiente" }, true, true},
		{"unknown estado ignored on create", func(in *actividadInput) { in.Estado = "pendiente" }, false, false},
		{"estado en_curso on update", func(in *actividadInput) { in.Estado = models.EstadoEnCurso }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid(t)
			tt.mutate(&in)
			err := in.validate(tt.forUpdate)
			if tt.wantErr && err == nil {
				t.Errorf("validate(forUpdate=%v) expected error for %+v", tt.forUpdate, in)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validate(forUpdate=%v) unexpected error: %v", tt.forUpdate, err)
			}
		})
	}
}

func TestParseListFilter(t *testing.T) {
	centroID := uuid.New()

	tests := []struct {
		name       string
		url        string
		wantMes    int
		wantAnio   int
		wantCentro bool
		wantErr    bool
	}{
		{"no filters", "/api/actividades", 0, 0, false, false},
		{"month and year", "/api/actividades?mes=3&año=2024", 3, 2024, false, false},
		{"ascii year alias", "/api/actividades?mes=12&anio=2025", 12, 2025, false, false},
		{"month alone ignored", "/api/actividades?mes=3", 0, 0, false, false},
		{"with centro", "/api/actividades?mes=3&año=2024&centro_id=" + centroID.String(), 3, 2024, true, false},
		{"month out of range", "/api/actividades?mes=13&año=2024", 0, 0, false, true},
		{"month zero", "/api/actividades?mes=0&año=2024", 0, 0, false, true},
		{"year not a number", "/api/actividades?mes=3&año=dosmil", 0, 0, false, true},
		{"bad centro id", "/api/actividades?centro_id=42", 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got, err := parseListFilter(r)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseListFilter(%q) expected error", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseListFilter(%q) unexpected error: %v", tt.url, err)
			}
			if got.Mes != tt.wantMes || got.Anio != tt.wantAnio {
				t.Errorf("parseListFilter(%q) = %d/%d, want %d/%d", tt.url, got.Mes, got.Anio, tt.wantMes, tt.wantAnio)
			}
			if (got.CentroID != nil) != tt.wantCentro {
				t.Errorf("parseListFilter(%q) centro presence = %v, want %v", tt.url, got.CentroID != nil, tt.wantCentro)
			}
			if tt.wantCentro && *got.CentroID != centroID {
				t.Errorf("parseListFilter(%q) centro = %s, want %s", tt.url, got.CentroID, centroID)
			}
		})
	}
}
