package schedule

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório da escala
type Repository interface {
	// Create registra um novo turno
	Create(ctx context.Context, s *Shift) error

	// FindByID busca um turno pelo ID
	FindByID(ctx context.Context, id string) (*Shift, error)

	// FindByDateRange lista os turnos com data dentro do intervalo,
	// ordenados por data e hora de início
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*Shift, error)

	// Update atualiza um turno existente
	Update(ctx context.Context, s *Shift) error

	// Delete remove um turno
	Delete(ctx context.Context, id string) error
}
