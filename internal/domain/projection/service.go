package projection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/balance"
	"github.com/shopspring/decimal"
)

var ErrInvalidDays = errors.New("quantidade de dias da projeção deve ser positiva")

// Forecast é a projeção de vendas por média móvel sobre os últimos
// fechamentos diários
type Forecast struct {
	Days        int             `json:"days"`         // Janela pedida
	SampleSize  int             `json:"sample_size"`  // Fechamentos realmente encontrados
	AvgPaes     decimal.Decimal `json:"avg_paes"`     // Média de pães por dia
	AvgSalgados decimal.Decimal `json:"avg_salgados"` // Média de salgados por dia
	AvgRepasse  decimal.Decimal `json:"avg_repasse"`  // Média de repasse por dia
	AvgVendas   decimal.Decimal `json:"avg_vendas"`   // Média de vendas por dia
	GeneratedAt time.Time       `json:"generated_at"`
}

// Service calcula projeções de vendas a partir dos fechamentos diários
type Service struct {
	balances balance.Repository
}

// NewService cria uma nova instância do serviço de projeção
func NewService(balances balance.Repository) *Service {
	return &Service{balances: balances}
}

// MovingAverage calcula a média dos últimos `days` fechamentos. Dias sem
// fechamento não entram na amostra; uma amostra vazia produz médias zero.
func (s *Service) MovingAverage(ctx context.Context, days int) (*Forecast, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	balances, err := s.balances.FindLatest(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fechamentos para projeção: %w", err)
	}

	forecast := &Forecast{
		Days:        days,
		SampleSize:  len(balances),
		AvgPaes:     decimal.Zero,
		AvgSalgados: decimal.Zero,
		AvgRepasse:  decimal.Zero,
		AvgVendas:   decimal.Zero,
		GeneratedAt: time.Now(),
	}
	if len(balances) == 0 {
		return forecast, nil
	}

	var paes, salgados int
	repasse := decimal.Zero
	vendas := decimal.Zero
	for _, b := range balances {
		paes += b.TotalPaes
		salgados += b.TotalSalgados
		repasse = repasse.Add(b.TotalRepasse)
		vendas = vendas.Add(b.TotalVendas)
	}

	n := decimal.NewFromInt(int64(len(balances)))
	forecast.AvgPaes = decimal.NewFromInt(int64(paes)).DivRound(n, 2)
	forecast.AvgSalgados = decimal.NewFromInt(int64(salgados)).DivRound(n, 2)
	forecast.AvgRepasse = repasse.DivRound(n, 2)
	forecast.AvgVendas = vendas.DivRound(n, 2)
	return forecast, nil
}
