package sale

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create registra uma nova linha de venda
	Create(ctx context.Context, s *Sale) error

	// CreateBatch registra várias linhas de venda em uma transação
	CreateBatch(ctx context.Context, sales []*Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindByDateRange lista as vendas com sale_date dentro do intervalo
	// [start, end], inclusivo nas duas pontas
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*Sale, error)

	// List lista as vendas com paginação
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// Count conta quantas vendas existem
	Count(ctx context.Context) (int, error)
}
