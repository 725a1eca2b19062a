package dto

import (
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/projection"
)

// ProjectionResponse representa a resposta da projeção de vendas
type ProjectionResponse struct {
	Days        int       `json:"days"`
	SampleSize  int       `json:"sample_size"`
	AvgPaes     string    `json:"avg_paes"`
	AvgSalgados string    `json:"avg_salgados"`
	AvgRepasse  string    `json:"avg_repasse"`
	AvgVendas   string    `json:"avg_vendas"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ToProjectionResponse converte a projeção do domínio para a resposta da API
func ToProjectionResponse(f *projection.Forecast) ProjectionResponse {
	return ProjectionResponse{
		Days:        f.Days,
		SampleSize:  f.SampleSize,
		AvgPaes:     f.AvgPaes.StringFixed(2),
		AvgSalgados: f.AvgSalgados.StringFixed(2),
		AvgRepasse:  f.AvgRepasse.StringFixed(2),
		AvgVendas:   f.AvgVendas.StringFixed(2),
		GeneratedAt: f.GeneratedAt,
	}
}
