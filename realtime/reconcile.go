package realtime

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/agendasalud/backend/models"
)

// ApplyEvent reconciles a viewer's local activity list with one push
// event and returns the new list. Pure and idempotent, so a client can
// replay the same event without corrupting its state: created appends
// only if the id is absent, updated replaces by id (appending if the
// viewer never saw the create), deleted removes by id. Unknown event
// names and undecodable payloads leave the list untouched.
func ApplyEvent(list []models.Actividad, ev Event) []models.Actividad {
	switch ev.Name {
	case EventActividadCreada, EventActividadActualizada:
		actividad, ok := decodeActividad(ev.Data)
		if !ok {
			return list
		}
		for i := range list {
			if list[i].ID == actividad.ID {
				out := make([]models.Actividad, len(list))
				copy(out, list)
				out[i] = actividad
				return out
			}
		}
		return append(append([]models.Actividad{}, list...), actividad)

	case EventActividadEliminada:
		id, ok := decodeDeletedID(ev.Data)
		if !ok {
			return list
		}
		out := make([]models.Actividad, 0, len(list))
		for _, a := range list {
			if a.ID != id {
				out = append(out, a)
			}
		}
		return out

	default:
		return list
	}
}

func decodeActividad(data interface{}) (models.Actividad, bool) {
	switch v := data.(type) {
	case models.Actividad:
		return v, true
	case *models.Actividad:
		return *v, true
	case json.RawMessage:
		var a models.Actividad
		if err := json.Unmarshal(v, &a); err != nil {
			return models.Actividad{}, false
		}
		return a, true
	default:
		return models.Actividad{}, false
	}
}

func decodeDeletedID(data interface{}) (uuid.UUID, bool) {
	switch v := data.(type) {
	case DeletedPayload:
		id, err := uuid.Parse(v.ID)
		return id, err == nil
	case json.RawMessage:
		var p DeletedPayload
		if err := json.Unmarshal(v, &p); err != nil {
			return uuid.Nil, false
		}
		id, err := uuid.Parse(p.ID)
		return id, err == nil
	default:
		return uuid.Nil, false
	}
}
