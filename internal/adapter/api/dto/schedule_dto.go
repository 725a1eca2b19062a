package dto

import (
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/schedule"
)

// ShiftRequest representa a requisição de criação/atualização de turno
type ShiftRequest struct {
	Employee  string `json:"employee" binding:"required"`
	Role      string `json:"role" binding:"required"`
	ShiftDate string `json:"shift_date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
	Notes     string `json:"notes"`
}

// ShiftResponse representa a resposta de turno
type ShiftResponse struct {
	ID        string    `json:"id"`
	Employee  string    `json:"employee"`
	Role      string    `json:"role"`
	ShiftDate string    `json:"shift_date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToShiftResponse converte um turno do domínio para a resposta da API
func ToShiftResponse(s *schedule.Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Employee:  s.Employee,
		Role:      s.Role,
		ShiftDate: s.ShiftDate.Format("2006-01-02"),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToShiftListResponse converte a lista de turnos
func ToShiftListResponse(shifts []*schedule.Shift) []ShiftResponse {
	responses := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		responses = append(responses, ToShiftResponse(s))
	}
	return responses
}
