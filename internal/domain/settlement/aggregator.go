package settlement

import (
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/product"
	"github.com/padocadigital/gestao-padaria/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// Result é o agregado do fechamento de um dia de vendas
type Result struct {
	PaesUnits     int             `json:"paes_units"`
	SalgadosUnits int             `json:"salgados_units"`
	Repasse       decimal.Decimal `json:"repasse"`
	TotalVendas   decimal.Decimal `json:"total_vendas"`
}

// BuildCategoryIndex monta o índice produto → categoria a partir de um
// snapshot do catálogo. Categorias ausentes viram string vazia; catálogo
// vazio produz índice vazio (as vendas caem no balde sem categoria,
// contadas nos totais mas não nas unidades).
func BuildCategoryIndex(products []*product.Product) map[string]string {
	index := make(map[string]string, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		index[p.ID] = p.Category
	}
	return index
}

// Aggregate consolida as vendas de um dia usando o índice de categorias.
// Vendas canceladas são ignoradas por completo. O repasse de cada venda
// entra tanto em Repasse quanto em TotalVendas: o PDV não envia um campo
// de receita bruta confiável, então o repasse é usado como aproximação
// do total de vendas (comportamento herdado, não corrigir aqui sem
// alinhar com o financeiro). Quantidades e valores negativos não são
// rejeitados; propagam como ajustes.
func Aggregate(sales []*sale.Sale, categoryIndex map[string]string) Result {
	result := Result{
		Repasse:     decimal.Zero,
		TotalVendas: decimal.Zero,
	}

	for _, s := range sales {
		if s == nil || s.Cancelled {
			continue
		}

		result.Repasse = result.Repasse.Add(s.TransferAmount)
		result.TotalVendas = result.TotalVendas.Add(s.TransferAmount)

		switch categoryIndex[s.ProductID] {
		case product.CategoryPaes:
			result.PaesUnits += s.Quantity
		case product.CategorySalgados:
			result.SalgadosUnits += s.Quantity
		}
	}

	return result
}

// DayWindow retorna o intervalo [00:00:00.000, 23:59:59.999] UTC da data,
// inclusivo nas duas pontas. Uma venda no último milissegundo do dia
// pertence ao dia; a primeira do dia seguinte não.
func DayWindow(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
