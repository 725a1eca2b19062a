package balance

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de fechamentos diários
type Repository interface {
	// Upsert grava a linha de fechamento da data, substituindo qualquer
	// resultado anterior para a mesma data. A operação é idempotente:
	// duas chamadas com os mesmos valores deixam exatamente uma linha
	// para a data (apenas updated_at muda)
	Upsert(ctx context.Context, b *DailyBalance) error

	// FindByDate busca o fechamento de uma data
	FindByDate(ctx context.Context, date time.Time) (*DailyBalance, error)

	// FindByDateRange lista os fechamentos com data dentro do intervalo,
	// ordenados por data crescente
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*DailyBalance, error)

	// FindLatest retorna os últimos n fechamentos, do mais recente para
	// o mais antigo
	FindLatest(ctx context.Context, n int) ([]*DailyBalance, error)
}
