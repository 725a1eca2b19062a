package settlement

import (
	"testing"
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/product"
	"github.com/padocadigital/gestao-padaria/internal/domain/sale"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildCategoryIndex(t *testing.T) {
	products := []*product.Product{
		{ID: "p1", Category: product.CategoryPaes},
		{ID: "p2", Category: product.CategorySalgados},
		{ID: "p3", Category: ""},
		nil,
	}

	index := BuildCategoryIndex(products)

	if len(index) != 3 {
		t.Fatalf("esperava 3 entradas no índice, obteve %d", len(index))
	}
	if index["p1"] != product.CategoryPaes {
		t.Errorf("p1: esperava %q, obteve %q", product.CategoryPaes, index["p1"])
	}
	if index["p2"] != product.CategorySalgados {
		t.Errorf("p2: esperava %q, obteve %q", product.CategorySalgados, index["p2"])
	}
	if cat, ok := index["p3"]; !ok || cat != "" {
		t.Errorf("p3: esperava categoria vazia presente, obteve (%q, %v)", cat, ok)
	}
}

func TestBuildCategoryIndexEmptyCatalog(t *testing.T) {
	index := BuildCategoryIndex(nil)
	if len(index) != 0 {
		t.Fatalf("esperava índice vazio, obteve %d entradas", len(index))
	}
}

func TestAggregate(t *testing.T) {
	index := map[string]string{
		"pao":     product.CategoryPaes,
		"coxinha": product.CategorySalgados,
		"bolo":    "doces",
	}

	tests := []struct {
		name         string
		sales        []*sale.Sale
		wantPaes     int
		wantSalgados int
		wantRepasse  string
		wantTotal    string
	}{
		{
			name:         "dia vazio",
			sales:        nil,
			wantPaes:     0,
			wantSalgados: 0,
			wantRepasse:  "0",
			wantTotal:    "0",
		},
		{
			name: "dia típico com as duas categorias",
			sales: []*sale.Sale{
				{ProductID: "pao", Quantity: 10, TransferAmount: dec("25.50")},
				{ProductID: "pao", Quantity: 5, TransferAmount: dec("12.75")},
				{ProductID: "coxinha", Quantity: 3, TransferAmount: dec("18.00")},
			},
			wantPaes:     15,
			wantSalgados: 3,
			wantRepasse:  "56.25",
			wantTotal:    "56.25",
		},
		{
			name: "venda cancelada ignorada por completo",
			sales: []*sale.Sale{
				{ProductID: "pao", Quantity: 10, TransferAmount: dec("25.50")},
				{ProductID: "pao", Quantity: 100, TransferAmount: dec("999.99"), Cancelled: true},
			},
			wantPaes:     10,
			wantSalgados: 0,
			wantRepasse:  "25.50",
			wantTotal:    "25.50",
		},
		{
			name: "categoria desconhecida conta nos totais mas não nas unidades",
			sales: []*sale.Sale{
				{ProductID: "bolo", Quantity: 2, TransferAmount: dec("30.00")},
				{ProductID: "produto-sem-cadastro", Quantity: 7, TransferAmount: dec("14.00")},
			},
			wantPaes:     0,
			wantSalgados: 0,
			wantRepasse:  "44.00",
			wantTotal:    "44.00",
		},
		{
			name: "valores negativos propagam como ajustes",
			sales: []*sale.Sale{
				{ProductID: "pao", Quantity: 10, TransferAmount: dec("25.00")},
				{ProductID: "pao", Quantity: -2, TransferAmount: dec("-5.00")},
			},
			wantPaes:     8,
			wantSalgados: 0,
			wantRepasse:  "20.00",
			wantTotal:    "20.00",
		},
		{
			name: "venda nula ignorada",
			sales: []*sale.Sale{
				nil,
				{ProductID: "coxinha", Quantity: 1, TransferAmount: dec("6.00")},
			},
			wantPaes:     0,
			wantSalgados: 1,
			wantRepasse:  "6.00",
			wantTotal:    "6.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.sales, index)

			if got.PaesUnits != tt.wantPaes {
				t.Errorf("PaesUnits: esperava %d, obteve %d", tt.wantPaes, got.PaesUnits)
			}
			if got.SalgadosUnits != tt.wantSalgados {
				t.Errorf("SalgadosUnits: esperava %d, obteve %d", tt.wantSalgados, got.SalgadosUnits)
			}
			if !got.Repasse.Equal(dec(tt.wantRepasse)) {
				t.Errorf("Repasse: esperava %s, obteve %s", tt.wantRepasse, got.Repasse)
			}
			if !got.TotalVendas.Equal(dec(tt.wantTotal)) {
				t.Errorf("TotalVendas: esperava %s, obteve %s", tt.wantTotal, got.TotalVendas)
			}
		})
	}
}

func TestAggregateRepasseEqualsTotalVendas(t *testing.T) {
	// Sem campo de receita bruta no PDV, o repasse alimenta os dois totais
	sales := []*sale.Sale{
		{ProductID: "pao", Quantity: 4, TransferAmount: dec("9.90")},
		{ProductID: "coxinha", Quantity: 2, TransferAmount: dec("11.10")},
	}

	got := Aggregate(sales, map[string]string{"pao": product.CategoryPaes, "coxinha": product.CategorySalgados})

	if !got.Repasse.Equal(got.TotalVendas) {
		t.Errorf("Repasse (%s) e TotalVendas (%s) deveriam ser iguais", got.Repasse, got.TotalVendas)
	}
}

func TestDayWindow(t *testing.T) {
	date := time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC)

	start, end := DayWindow(date)

	wantStart := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("start: esperava %v, obteve %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end: esperava %v, obteve %v", wantEnd, end)
	}
}

func TestDayWindowBoundaries(t *testing.T) {
	start, end := DayWindow(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

	lastMillisecond := time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC)
	nextDay := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	// Última venda do dia pertence à janela
	if lastMillisecond.Before(start) || lastMillisecond.After(end) {
		t.Errorf("último milissegundo do dia deveria estar dentro da janela [%v, %v]", start, end)
	}
	// A primeira do dia seguinte não
	if !nextDay.After(end) {
		t.Errorf("meia-noite do dia seguinte deveria estar fora da janela (end=%v)", end)
	}
}
