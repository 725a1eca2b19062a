package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEmployee  = errors.New("nome do funcionário não pode ser vazio")
	ErrEmptyRole      = errors.New("função do turno não pode ser vazia")
	ErrZeroShiftDate  = errors.New("data do turno não pode ser vazia")
	ErrInvalidShift   = errors.New("horário do turno inválido")
	ErrEndBeforeStart = errors.New("fim do turno não pode ser antes do início")
)

// Shift representa um turno de trabalho na escala da equipe
type Shift struct {
	ID        string    `json:"id"`
	Employee  string    `json:"employee"` // Nome do funcionário
	Role      string    `json:"role"`     // Função no turno (ex: "balcao", "forno")
	ShiftDate time.Time `json:"shift_date"`
	StartTime string    `json:"start_time"` // Hora de início "HH:MM"
	EndTime   string    `json:"end_time"`   // Hora de fim "HH:MM"
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewShift cria um novo turno da escala
func NewShift(employee, role string, shiftDate time.Time, startTime, endTime, notes string) (*Shift, error) {
	if err := validateShift(employee, role, shiftDate, startTime, endTime); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Shift{
		ID:        uuid.New().String(),
		Employee:  employee,
		Role:      role,
		ShiftDate: shiftDate,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do turno
func (s *Shift) Update(employee, role string, shiftDate time.Time, startTime, endTime, notes string) error {
	if err := validateShift(employee, role, shiftDate, startTime, endTime); err != nil {
		return err
	}

	s.Employee = employee
	s.Role = role
	s.ShiftDate = shiftDate
	s.StartTime = startTime
	s.EndTime = endTime
	s.Notes = notes
	s.UpdatedAt = time.Now()
	return nil
}

func validateShift(employee, role string, shiftDate time.Time, startTime, endTime string) error {
	if strings.TrimSpace(employee) == "" {
		return ErrEmptyEmployee
	}
	if strings.TrimSpace(role) == "" {
		return ErrEmptyRole
	}
	if shiftDate.IsZero() {
		return ErrZeroShiftDate
	}

	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return ErrInvalidShift
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return ErrInvalidShift
	}
	if end.Before(start) {
		return ErrEndBeforeStart
	}
	return nil
}
