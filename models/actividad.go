package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity lifecycle states. Wire values stay Spanish to match the
// schema and existing clients.
const (
	EstadoProgramada = "programada"
	EstadoEnCurso    = "en_curso"
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
)

// ValidEstado reports whether s is one of the four lifecycle states.
func ValidEstado(s string) bool {
	switch s {
	case EstadoProgramada, EstadoEnCurso, EstadoCompletada, EstadoCancelada:
		return true
	}
	return false
}

// Actividad is a scheduled event at a health center: one calendar date
// with a start/end time window and a lifecycle estado. HoraInicio must
// be strictly before HoraFin.
type Actividad struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CentroID    uuid.UUID `gorm:"type:uuid;index;not null" json:"centro_id"`
	Centro      *Centro   `gorm:"foreignKey:CentroID" json:"-"`
	Titulo      string    `gorm:"size:255;not null" json:"titulo"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Fecha       DateOnly  `gorm:"type:date;not null" json:"fecha"`
	HoraInicio  TimeOfDay `gorm:"type:time;not null" json:"hora_inicio"`
	HoraFin     TimeOfDay `gorm:"type:time;not null" json:"hora_fin"`
	Estado      string    `gorm:"size:20;default:programada" json:"estado"`
	UsuarioID   uuid.UUID `gorm:"type:uuid" json:"usuario_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Actividad) TableName() string { return "actividades" }

// ActividadConNombres is an Actividad row enriched with the center and
// creator display names the calendar shows. Produced by the listing
// query's JOINs, never persisted.
type ActividadConNombres struct {
	Actividad
	CentroNombre  string  `json:"centro_nombre"`
	UsuarioNombre *string `json:"usuario_nombre,omitempty"`
}
