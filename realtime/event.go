package realtime

import "encoding/json"

// Event kinds pushed to connected viewers after each successful
// mutation. Payloads carry the same JSON shapes as the REST responses
// (the full activity, or {"id": ...} for a deletion).
const (
	EventActividadCreada      = "activity-created"
	EventActividadActualizada = "activity-updated"
	EventActividadEliminada   = "activity-deleted"
)

// Event is the wire envelope for one push message.
type Event struct {
	Name string      `json:"event"`
	Data interface{} `json:"data"`
}

// DeletedPayload is the body of an activity-deleted event.
type DeletedPayload struct {
	ID string `json:"id"`
}

func (e Event) marshal() ([]byte, error) {
	return json.Marshal(e)
}
