package dto

import (
	"fmt"
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/settlement"
)

// SettlementResponse representa a resposta do fechamento diário
type SettlementResponse struct {
	OK          bool   `json:"ok"`
	Date        string `json:"date"`
	Paes        int    `json:"paes"`
	Salgados    int    `json:"salgados"`
	Repasse     string `json:"repasse"`
	TotalVendas string `json:"total_vendas"`
}

// ToSettlementResponse converte o resultado do fechamento para a resposta da API
func ToSettlementResponse(s *settlement.Summary) SettlementResponse {
	return SettlementResponse{
		OK:          true,
		Date:        s.Date.Format("2006-01-02"),
		Paes:        s.Result.PaesUnits,
		Salgados:    s.Result.SalgadosUnits,
		Repasse:     s.Result.Repasse.StringFixed(2),
		TotalVendas: s.Result.TotalVendas.StringFixed(2),
	}
}

// ParseDateParam interpreta o parâmetro de data "YYYY-MM-DD"; quando
// vazio, retorna a data UTC corrente
func ParseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q, use o formato YYYY-MM-DD", value)
	}
	return date, nil
}
