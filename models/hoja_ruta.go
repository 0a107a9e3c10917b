package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HojaRuta is a free-form trip log for one activity. Append-only: every
// save inserts a new row and readers fetch the newest one. ActividadID
// is a weak reference on purpose — no FK constraint, no cascade — so a
// sheet survives deletion of its activity.
type HojaRuta struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ActividadID uuid.UUID      `gorm:"type:uuid;index;not null" json:"actividad_id"`
	Contenido   datatypes.JSON `gorm:"type:jsonb" json:"contenido"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (HojaRuta) TableName() string { return "hojas_ruta" }
