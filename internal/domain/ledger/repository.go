package ledger

import (
	"context"
	"time"
)

// Filter define os critérios de listagem de lançamentos
type Filter struct {
	InstituteID string
	UserID      string
	Period      Period
	Kind        Kind
	StartDate   time.Time
	EndDate     time.Time
}

// Repository define a interface para operações de repositório de lançamentos
type Repository interface {
	// Create registra um novo lançamento
	Create(ctx context.Context, e *Entry) error

	// FindByID busca um lançamento pelo ID
	FindByID(ctx context.Context, id string) (*Entry, error)

	// List lista os lançamentos que atendem ao filtro, com paginação,
	// ordenados por entry_date decrescente
	List(ctx context.Context, f Filter, limit, offset int) ([]*Entry, error)

	// Update atualiza um lançamento existente
	Update(ctx context.Context, e *Entry) error

	// Delete remove um lançamento
	Delete(ctx context.Context, id string) error

	// Count conta os lançamentos que atendem ao filtro
	Count(ctx context.Context, f Filter) (int, error)
}
