package models

import (
	"time"

	"github.com/google/uuid"
)

// Centro is a health center activities are assigned to. Reference data:
// rows are seeded and never mutated through the API.
type Centro struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Direccion *string   `gorm:"size:255" json:"direccion,omitempty"`
	Telefono  *string   `gorm:"size:20" json:"telefono,omitempty"`
	Activo    bool      `gorm:"default:true" json:"activo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Centro) TableName() string { return "centros_salud" }
