package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/agendasalud/backend/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20240301_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Centro{},
					&models.Actividad{}, &models.HojaRuta{})
			},
		},
		{
			ID: "20240301_actividades_calendar_index",
			Migrate: func(tx *gorm.DB) error {
				// The calendar always queries one month ordered by day and
				// start time.
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_actividades_fecha_hora ON actividades(fecha, hora_inicio)").Error
			},
		},
	})
	return m.Migrate()
}
