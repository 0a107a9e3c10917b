package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/agendasalud/backend/config"
	"github.com/agendasalud/backend/models"
)

type hojaRutaInput struct {
	ActividadID uuid.UUID       `json:"actividad_id"`
	Contenido   json.RawMessage `json:"contenido"`
}

// CreateHojaRuta records a route sheet. Always inserts: the log is
// append-only and readers only ever see the newest row. Contenido is a
// free-form blob; its fields are not validated.
func CreateHojaRuta(w http.ResponseWriter, r *http.Request) {
	var in hojaRutaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if in.ActividadID == uuid.Nil {
		http.Error(w, "actividad_id is required", http.StatusBadRequest)
		return
	}

	contenido := in.Contenido
	if len(contenido) == 0 {
		contenido = json.RawMessage("{}")
	}

	hoja := models.HojaRuta{
		ActividadID: in.ActividadID,
		Contenido:   datatypes.JSON(contenido),
	}
	if err := config.DB.Create(&hoja).Error; err != nil {
		log.Printf("Error creating hoja de ruta: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(hoja)
}

// GetLatestHojaRuta returns the most recently created sheet for an
// activity. 404 means "no prior sheet", which callers treat as a blank
// form rather than an error.
func GetLatestHojaRuta(w http.ResponseWriter, r *http.Request) {
	actividadID, err := uuid.Parse(mux.Vars(r)["actividad_id"])
	if err != nil {
		http.Error(w, "hoja de ruta not found", http.StatusNotFound)
		return
	}

	var hoja models.HojaRuta
	err = config.DB.
		Where("actividad_id = ?", actividadID).
		Order("created_at DESC").
		First(&hoja).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "hoja de ruta not found", http.StatusNotFound)
			return
		}
		log.Printf("Error loading hoja de ruta for %s: %v", actividadID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hoja)
}
