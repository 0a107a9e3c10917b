package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-1", "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}

	// Expiry is 24h out, give or take scheduling slack.
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < TokenTTL-time.Minute || remaining > TokenTTL {
		t.Errorf("token expires in %v, want about %v", remaining, TokenTTL)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := Claims{
		UserID:   "user-1",
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(signed); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestJWTMiddleware(t *testing.T) {
	okHandler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserID(r) != "user-1" {
			t.Errorf("GetUserID = %q inside handler", GetUserID(r))
		}
		w.WriteHeader(http.StatusOK)
	}))

	token, err := GenerateToken("user-1", "admin", "admin")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{"missing credential", "", "", http.StatusUnauthorized},
		{"valid bearer token", "Bearer " + token, "", http.StatusOK},
		{"garbage token", "Bearer not.a.token", "", http.StatusForbidden},
		{"wrong scheme", "Basic " + token, "", http.StatusUnauthorized},
		{"token via query parameter", "", token, http.StatusOK},
		{"garbage via query parameter", "", "not.a.token", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/actividades"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			r := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			okHandler.ServeHTTP(w, r)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		want       string
	}{
		{"remote addr", "203.0.113.7:5431", "", "", "203.0.113.7"},
		{"x-forwarded-for wins", "203.0.113.7:5431", "198.51.100.1, 10.0.0.1", "", "198.51.100.1"},
		{"x-real-ip fallback", "203.0.113.7:5431", "", "198.51.100.2", "198.51.100.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
