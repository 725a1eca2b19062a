package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestNewShift(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	s, err := NewShift("Maria", "balcao", date, "06:00", "14:00", "abertura")
	if err != nil {
		t.Fatalf("NewShift retornou erro inesperado: %v", err)
	}

	if s.ID == "" {
		t.Error("ID não deveria ser vazio")
	}
	if s.Employee != "Maria" || s.Role != "balcao" {
		t.Errorf("turno: obteve (%q, %q)", s.Employee, s.Role)
	}
	if s.StartTime != "06:00" || s.EndTime != "14:00" {
		t.Errorf("horário: obteve (%q, %q)", s.StartTime, s.EndTime)
	}
}

func TestNewShiftValidation(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		employee  string
		role      string
		shiftDate time.Time
		start     string
		end       string
		wantErr   error
	}{
		{"funcionário vazio", "", "balcao", date, "06:00", "14:00", ErrEmptyEmployee},
		{"funcionário só com espaços", "   ", "balcao", date, "06:00", "14:00", ErrEmptyEmployee},
		{"função vazia", "Maria", "", date, "06:00", "14:00", ErrEmptyRole},
		{"data zerada", "Maria", "balcao", time.Time{}, "06:00", "14:00", ErrZeroShiftDate},
		{"início malformado", "Maria", "balcao", date, "6h", "14:00", ErrInvalidShift},
		{"fim malformado", "Maria", "balcao", date, "06:00", "25:00", ErrInvalidShift},
		{"fim antes do início", "Maria", "balcao", date, "14:00", "06:00", ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShift(tt.employee, tt.role, tt.shiftDate, tt.start, tt.end, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("esperava %v, obteve %v", tt.wantErr, err)
			}
		})
	}
}

func TestShiftUpdate(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	s, err := NewShift("Maria", "balcao", date, "06:00", "14:00", "")
	if err != nil {
		t.Fatalf("NewShift falhou: %v", err)
	}

	newDate := date.AddDate(0, 0, 7)
	if err := s.Update("João", "forno", newDate, "14:00", "22:00", "troca"); err != nil {
		t.Fatalf("Update retornou erro inesperado: %v", err)
	}
	if s.Employee != "João" || s.Role != "forno" || s.Notes != "troca" {
		t.Errorf("turno não atualizado: %+v", s)
	}

	// Falha de validação não altera o turno
	if err := s.Update("João", "forno", newDate, "22:00", "14:00", ""); !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("esperava ErrEndBeforeStart, obteve %v", err)
	}
	if s.StartTime != "14:00" || s.EndTime != "22:00" {
		t.Errorf("horário não deveria mudar após falha: (%q, %q)", s.StartTime, s.EndTime)
	}
}
