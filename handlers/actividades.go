package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/agendasalud/backend/config"
	"github.com/agendasalud/backend/middleware"
	"github.com/agendasalud/backend/models"
	"github.com/agendasalud/backend/realtime"
)

// ActividadHandler serves the activity CRUD and hands every successful
// mutation to the hub so open calendars refresh without polling.
type ActividadHandler struct {
	hub *realtime.Hub
}

func NewActividadHandler(hub *realtime.Hub) *ActividadHandler {
	return &ActividadHandler{hub: hub}
}

type actividadInput struct {
	CentroID    uuid.UUID        `json:"centro_id"`
	Titulo      string           `json:"titulo"`
	Descripcion *string          `json:"descripcion"`
	Fecha       models.DateOnly  `json:"fecha"`
	HoraInicio  models.TimeOfDay `json:"hora_inicio"`
	HoraFin     models.TimeOfDay `json:"hora_fin"`
	Estado      string           `json:"estado"`
}

// validate enforces the mutation invariants. forUpdate additionally
// requires a known estado; create ignores estado and defaults it.
func (in *actividadInput) validate(forUpdate bool) error {
	if !forUpdate && in.CentroID == uuid.Nil {
		return errors.New("centro_id is required")
	}
	if strings.TrimSpace(in.Titulo) == "" {
		return errors.New("titulo is required")
	}
	if in.Fecha.IsZero() {
		return errors.New("fecha is required")
	}
	if in.HoraInicio.IsZero() || in.HoraFin.IsZero() {
		return errors.New("hora_inicio and hora_fin are required")
	}
	if !in.HoraInicio.Before(in.HoraFin) {
		return errors.New("hora_inicio must be before hora_fin")
	}
	if forUpdate && !models.ValidEstado(in.Estado) {
		return errors.New("invalid estado")
	}
	return nil
}

// listFilter is the parsed query string of the listing and export
// endpoints: an optional month/year pair plus an optional center.
type listFilter struct {
	Mes      int
	Anio     int
	CentroID *uuid.UUID
}

func parseListFilter(r *http.Request) (listFilter, error) {
	var f listFilter
	q := r.URL.Query()

	mes := q.Get("mes")
	anio := q.Get("año")
	if anio == "" {
		anio = q.Get("anio")
	}
	if mes != "" && anio != "" {
		m, err := strconv.Atoi(mes)
		if err != nil || m < 1 || m > 12 {
			return f, errors.New("mes must be a number between 1 and 12")
		}
		y, err := strconv.Atoi(anio)
		if err != nil {
			return f, errors.New("año must be a number")
		}
		f.Mes, f.Anio = m, y
	}

	if raw := q.Get("centro_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, errors.New("centro_id must be a valid id")
		}
		f.CentroID = &id
	}
	return f, nil
}

// queryActividades runs the calendar query: month-filtered, enriched
// with display names, ordered by day then start time.
func queryActividades(f listFilter) ([]models.ActividadConNombres, error) {
	query := config.DB.
		Table("actividades").
		Select("actividades.*, c.nombre AS centro_nombre, u.nombre AS usuario_nombre").
		Joins("JOIN centros_salud c ON actividades.centro_id = c.id").
		Joins("LEFT JOIN usuarios u ON actividades.usuario_id = u.id")

	if f.Mes != 0 {
		query = query.Where("EXTRACT(MONTH FROM actividades.fecha) = ? AND EXTRACT(YEAR FROM actividades.fecha) = ?", f.Mes, f.Anio)
	}
	if f.CentroID != nil {
		query = query.Where("actividades.centro_id = ?", *f.CentroID)
	}

	rows := []models.ActividadConNombres{}
	err := query.Order("actividades.fecha, actividades.hora_inicio").Scan(&rows).Error
	return rows, err
}

func (h *ActividadHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := queryActividades(filter)
	if err != nil {
		log.Printf("Error listing actividades: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

func (h *ActividadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in actividadInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := in.validate(false); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var centro models.Centro
	if err := config.DB.First(&centro, "id = ?", in.CentroID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "centro_id does not reference an existing centro", http.StatusBadRequest)
			return
		}
		log.Printf("Error checking centro %s: %v", in.CentroID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	usuarioID, err := uuid.Parse(middleware.GetUserID(r))
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	actividad := models.Actividad{
		CentroID:    in.CentroID,
		Titulo:      strings.TrimSpace(in.Titulo),
		Descripcion: in.Descripcion,
		Fecha:       in.Fecha,
		HoraInicio:  in.HoraInicio,
		HoraFin:     in.HoraFin,
		Estado:      models.EstadoProgramada,
		UsuarioID:   usuarioID,
	}
	if err := config.DB.Create(&actividad).Error; err != nil {
		log.Printf("Error creating actividad: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.hub.Broadcast(realtime.EventActividadCreada, actividad)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(actividad)
}

func (h *ActividadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "actividad not found", http.StatusNotFound)
		return
	}

	var actividad models.Actividad
	if err := config.DB.First(&actividad, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "actividad not found", http.StatusNotFound)
			return
		}
		log.Printf("Error loading actividad %s: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var in actividadInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := in.validate(true); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// centro_id and usuario_id are immutable after creation.
	actividad.Titulo = strings.TrimSpace(in.Titulo)
	actividad.Descripcion = in.Descripcion
	actividad.Fecha = in.Fecha
	actividad.HoraInicio = in.HoraInicio
	actividad.HoraFin = in.HoraFin
	actividad.Estado = in.Estado

	if err := config.DB.Save(&actividad).Error; err != nil {
		log.Printf("Error updating actividad %s: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.hub.Broadcast(realtime.EventActividadActualizada, actividad)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(actividad)
}

func (h *ActividadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "actividad not found", http.StatusNotFound)
		return
	}

	// Hard delete. Route sheets referencing this activity are left in
	// place on purpose.
	result := config.DB.Delete(&models.Actividad{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("Error deleting actividad %s: %v", id, result.Error)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "actividad not found", http.StatusNotFound)
		return
	}

	h.hub.Broadcast(realtime.EventActividadEliminada, realtime.DeletedPayload{ID: id.String()})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "actividad eliminada correctamente"})
}
