package handlers

import (
	"net/http"

	"github.com/agendasalud/backend/middleware"
	"github.com/agendasalud/backend/realtime"
)

// ServeWS authenticates the connect request with the same bearer token
// the REST API uses and hands the connection to the hub. The token may
// arrive as a "token" query parameter since browsers cannot set
// headers on websocket dials.
func ServeWS(hub *realtime.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := middleware.TokenFromRequest(r)
		if tokenStr == "" {
			http.Error(w, "missing access token", http.StatusUnauthorized)
			return
		}
		claims, err := middleware.ParseToken(tokenStr)
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusForbidden)
			return
		}
		realtime.ServeWS(hub, w, r, claims.UserID)
	}
}
