package models

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"hours and minutes", "09:00", "09:00", false},
		{"with seconds", "14:30:15", "14:30:15", false},
		{"midnight", "00:00", "00:00", false},
		{"end of day", "23:59", "23:59", false},
		{"out of range hour", "24:00", "", true},
		{"out of range minute", "10:60", "", true},
		{"garbage", "mediodía", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimeOfDay(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if got.IsZero() {
				t.Errorf("ParseTimeOfDay(%q) reported zero after successful parse", tt.input)
			}
		})
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"morning before evening", "09:00", "17:00", true},
		{"evening not before morning", "17:00", "09:00", false},
		{"equal times", "09:00", "09:00", false},
		{"minute precision", "09:00", "09:01", true},
		{"second precision", "09:00:01", "09:00:02", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseTimeOfDay(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := ParseTimeOfDay(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.Before(b); got != tt.want {
				t.Errorf("(%s).Before(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	var parsed struct {
		Hora TimeOfDay `json:"hora"`
	}
	if err := json.Unmarshal([]byte(`{"hora":"08:15"}`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.Hora.Hour != 8 || parsed.Hora.Minute != 15 {
		t.Errorf("unmarshal got %+v", parsed.Hora)
	}

	if err := json.Unmarshal([]byte(`{"hora":"later"}`), &parsed); err == nil {
		t.Error("expected error for unparseable time")
	}
}

func TestTimeOfDayZero(t *testing.T) {
	var zero TimeOfDay
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}

	// "00:00" is a real time, not an unset one.
	midnight, err := ParseTimeOfDay("00:00")
	if err != nil {
		t.Fatal(err)
	}
	if midnight.IsZero() {
		t.Error("parsed midnight must not report IsZero")
	}
}
