package balance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrZeroDate = errors.New("data do fechamento não pode ser vazia")

// DailyBalance é a linha consolidada do fechamento de um dia de vendas.
// Existe no máximo uma linha por data; reprocessar o mesmo dia substitui
// os valores anteriores (last-write-wins).
type DailyBalance struct {
	DataDate      time.Time       `json:"data_date"` // Data do fechamento (chave única)
	TotalPaes     int             `json:"total_paes"`
	TotalSalgados int             `json:"total_salgados"`
	TotalRepasse  decimal.Decimal `json:"total_repasse"`
	TotalVendas   decimal.Decimal `json:"total_vendas"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewDailyBalance cria a linha de fechamento para uma data
func NewDailyBalance(date time.Time, totalPaes, totalSalgados int, totalRepasse, totalVendas decimal.Decimal) (*DailyBalance, error) {
	if date.IsZero() {
		return nil, ErrZeroDate
	}

	return &DailyBalance{
		DataDate:      date,
		TotalPaes:     totalPaes,
		TotalSalgados: totalSalgados,
		TotalRepasse:  totalRepasse,
		TotalVendas:   totalVendas,
		UpdatedAt:     time.Now(),
	}, nil
}
