package validation

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
)

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
		wantMsg string
	}{
		{
			name:  "valid dopamine entry",
			value: models.DopamineEntry{Date: "2024-01-15", Status: models.DopaminePassed},
		},
		{
			name:    "bad date",
			value:   models.DopamineEntry{Date: "2024-13-40", Status: models.DopaminePassed},
			wantErr: true,
			wantMsg: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:    "bad status",
			value:   models.DopamineEntry{Date: "2024-01-15", Status: "maybe"},
			wantErr: true,
			wantMsg: "status must be one of",
		},
		{
			name:    "mood out of range",
			value:   models.MoodEntry{Date: "2024-01-15", Mood: 6, Energy: 3, Numb: 3},
			wantErr: true,
			wantMsg: "mood must be at most 5",
		},
		{
			name:    "mood zero",
			value:   models.MoodEntry{Date: "2024-01-15", Mood: 3, Energy: 0, Numb: 3},
			wantErr: true,
			wantMsg: "energy must be at least 1",
		},
		{
			name:    "focus duration not positive",
			value:   models.FocusSession{Date: "2024-01-15", Duration: 0},
			wantErr: true,
			wantMsg: "duration must be greater than 0",
		},
		{
			name:    "habit without name",
			value:   models.HygieneHabit{},
			wantErr: true,
			wantMsg: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestStructReportsEveryField(t *testing.T) {
	err := Struct(models.MoodEntry{Date: "bad"})
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"date", "mood", "energy", "numb"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err.Error(), field)
		}
	}
}

func TestDate(t *testing.T) {
	if err := Date("date", "2024-02-29"); err != nil {
		t.Errorf("leap day rejected: %v", err)
	}
	if err := Date("date", ""); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("empty date: expected ErrValidation, got %v", err)
	}
	if err := Date("date", "2023-02-29"); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("non-leap Feb 29: expected ErrValidation, got %v", err)
	}
}

func TestInstanceRegistersDateKey(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("validator setup panicked: %v", r)
		}
	}()

	v := instance()
	if v != instance() {
		t.Error("instance should return the shared validator")
	}
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-2-1", true},
	}
	for _, tt := range tests {
		if err := v.Var(tt.in, "datekey"); (err != nil) != tt.wantErr {
			t.Errorf("datekey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
