package dto

import (
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/balance"
)

// BalanceResponse representa a resposta de fechamento diário
type BalanceResponse struct {
	DataDate      string    `json:"data_date"`
	TotalPaes     int       `json:"total_paes"`
	TotalSalgados int       `json:"total_salgados"`
	TotalRepasse  string    `json:"total_repasse"`
	TotalVendas   string    `json:"total_vendas"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToBalanceResponse converte um fechamento do domínio para a resposta da API
func ToBalanceResponse(b *balance.DailyBalance) BalanceResponse {
	return BalanceResponse{
		DataDate:      b.DataDate.Format("2006-01-02"),
		TotalPaes:     b.TotalPaes,
		TotalSalgados: b.TotalSalgados,
		TotalRepasse:  b.TotalRepasse.StringFixed(2),
		TotalVendas:   b.TotalVendas.StringFixed(2),
		UpdatedAt:     b.UpdatedAt,
	}
}

// ToBalanceListResponse converte a lista de fechamentos
func ToBalanceListResponse(balances []*balance.DailyBalance) []BalanceResponse {
	responses := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, ToBalanceResponse(b))
	}
	return responses
}
