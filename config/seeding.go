package config

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agendasalud/backend/models"
)

// RunAllSeeding loads the reference data an empty database needs to be
// usable: the health centers and a default admin account.
func RunAllSeeding() error {
	if err := SeedCentros(); err != nil {
		return err
	}
	return SeedAdminUser()
}

// SeedCentros inserts the default health centers. Skipped when any
// center already exists.
func SeedCentros() error {
	var count int64
	if err := DB.Model(&models.Centro{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	nombres := []string{
		"Centro de Salud Norte",
		"Centro de Salud Sur",
		"Centro de Salud Este",
		"Centro de Salud Oeste",
		"Centro de Salud Central",
		"Centro de Salud Periférico",
	}
	for _, nombre := range nombres {
		if err := DB.Create(&models.Centro{Nombre: nombre, Activo: true}).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d health centers", len(nombres))
	return nil
}

// SeedAdminUser creates the default admin account if it is missing.
// The password comes from ADMIN_PASSWORD, falling back to the
// development default.
func SeedAdminUser() error {
	var existing models.User
	err := DB.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Nombre:       "Administrador",
		Role:         "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded default admin user")
	return nil
}
