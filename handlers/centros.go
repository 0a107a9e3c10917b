package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/agendasalud/backend/config"
	"github.com/agendasalud/backend/models"
)

// GetCentros lists the active health centers, name-sorted.
func GetCentros(w http.ResponseWriter, r *http.Request) {
	var centros []models.Centro
	if err := config.DB.
		Where("activo = ?", true).
		Order("nombre").
		Find(&centros).Error; err != nil {
		log.Printf("Error listing centros: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(centros)
}
