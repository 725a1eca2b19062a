package settlement

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/audit"
	"github.com/padocadigital/gestao-padaria/internal/domain/balance"
	"github.com/padocadigital/gestao-padaria/internal/domain/ledger"
	"github.com/padocadigital/gestao-padaria/internal/domain/product"
	"github.com/padocadigital/gestao-padaria/internal/domain/sale"
	"github.com/padocadigital/gestao-padaria/pkg/logger"
)

type fakeProductRepo struct {
	products []*product.Product
	err      error
}

func (f *fakeProductRepo) Create(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	return f.products, f.err
}
func (f *fakeProductRepo) ListAll(ctx context.Context) ([]*product.Product, error) {
	return f.products, f.err
}
func (f *fakeProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error          { return nil }
func (f *fakeProductRepo) Count(ctx context.Context) (int, error) {
	return len(f.products), nil
}

type fakeSaleRepo struct {
	sales []*sale.Sale
	err   error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *sale.Sale) error { return nil }
func (f *fakeSaleRepo) CreateBatch(ctx context.Context, sales []*sale.Sale) error {
	return nil
}
func (f *fakeSaleRepo) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	return nil, nil
}
func (f *fakeSaleRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*sale.Sale, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.sales, f.err
}
func (f *fakeSaleRepo) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	return f.sales, f.err
}
func (f *fakeSaleRepo) Count(ctx context.Context) (int, error) { return len(f.sales), nil }

type fakeBalanceRepo struct {
	upserts []*balance.DailyBalance
	err     error
}

func (f *fakeBalanceRepo) Upsert(ctx context.Context, b *balance.DailyBalance) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, b)
	return nil
}
func (f *fakeBalanceRepo) FindByDate(ctx context.Context, date time.Time) (*balance.DailyBalance, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*balance.DailyBalance, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) FindLatest(ctx context.Context, n int) ([]*balance.DailyBalance, error) {
	return nil, nil
}

type fakeLedgerRepo struct {
	entries []*ledger.Entry
	err     error
}

func (f *fakeLedgerRepo) Create(ctx context.Context, e *ledger.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}
func (f *fakeLedgerRepo) FindByID(ctx context.Context, id string) (*ledger.Entry, error) {
	return nil, nil
}
func (f *fakeLedgerRepo) List(ctx context.Context, filter ledger.Filter, limit, offset int) ([]*ledger.Entry, error) {
	return f.entries, nil
}
func (f *fakeLedgerRepo) Update(ctx context.Context, e *ledger.Entry) error { return nil }
func (f *fakeLedgerRepo) Delete(ctx context.Context, id string) error       { return nil }
func (f *fakeLedgerRepo) Count(ctx context.Context, filter ledger.Filter) (int, error) {
	return len(f.entries), nil
}

type fakeAuditRepo struct {
	records []*audit.Record
	err     error
}

func (f *fakeAuditRepo) Append(ctx context.Context, r *audit.Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, r)
	return nil
}
func (f *fakeAuditRepo) ListBySource(ctx context.Context, source string, limit int) ([]*audit.Record, error) {
	return f.records, nil
}

func testConfig() Config {
	return Config{
		LedgerUserID:      "system-user",
		LedgerInstituteID: "institute-1",
	}
}

func testLogger() logger.Logger {
	return logger.NewLoggerWithWriters(io.Discard, io.Discard)
}

func testDate() time.Time {
	return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestServiceRun(t *testing.T) {
	products := &fakeProductRepo{products: []*product.Product{
		{ID: "pao", Category: product.CategoryPaes},
		{ID: "coxinha", Category: product.CategorySalgados},
	}}
	sales := &fakeSaleRepo{sales: []*sale.Sale{
		{ProductID: "pao", Quantity: 12, TransferAmount: dec("30.00")},
		{ProductID: "coxinha", Quantity: 4, TransferAmount: dec("22.50")},
		{ProductID: "pao", Quantity: 99, TransferAmount: dec("500.00"), Cancelled: true},
	}}
	balances := &fakeBalanceRepo{}
	entries := &fakeLedgerRepo{}
	audits := &fakeAuditRepo{}

	svc := NewService(products, sales, balances, entries, audits, testConfig(), testLogger())

	summary, err := svc.Run(context.Background(), testDate())
	if err != nil {
		t.Fatalf("Run retornou erro inesperado: %v", err)
	}

	if summary.Result.PaesUnits != 12 || summary.Result.SalgadosUnits != 4 {
		t.Errorf("unidades: esperava (12, 4), obteve (%d, %d)", summary.Result.PaesUnits, summary.Result.SalgadosUnits)
	}
	if !summary.Result.Repasse.Equal(dec("52.50")) {
		t.Errorf("Repasse: esperava 52.50, obteve %s", summary.Result.Repasse)
	}
	if !summary.Result.TotalVendas.Equal(dec("52.50")) {
		t.Errorf("TotalVendas: esperava 52.50, obteve %s", summary.Result.TotalVendas)
	}

	// A data do fechamento é normalizada para a meia-noite UTC
	wantDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !summary.Date.Equal(wantDate) {
		t.Errorf("Date: esperava %v, obteve %v", wantDate, summary.Date)
	}

	// A busca das vendas usa a janela inclusiva do dia
	if !sales.gotStart.Equal(wantDate) {
		t.Errorf("janela: start esperava %v, obteve %v", wantDate, sales.gotStart)
	}
	wantEnd := time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC)
	if !sales.gotEnd.Equal(wantEnd) {
		t.Errorf("janela: end esperava %v, obteve %v", wantEnd, sales.gotEnd)
	}

	if len(balances.upserts) != 1 {
		t.Fatalf("esperava 1 upsert de fechamento, obteve %d", len(balances.upserts))
	}
	b := balances.upserts[0]
	if b.TotalPaes != 12 || b.TotalSalgados != 4 {
		t.Errorf("fechamento: esperava (12, 4), obteve (%d, %d)", b.TotalPaes, b.TotalSalgados)
	}

	if len(entries.entries) != 1 {
		t.Fatalf("esperava 1 lançamento derivado, obteve %d", len(entries.entries))
	}
	e := entries.entries[0]
	if e.Kind != ledger.KindEntrada || e.Period != ledger.PeriodDaily {
		t.Errorf("lançamento derivado: esperava (entrada, daily), obteve (%s, %s)", e.Kind, e.Period)
	}
	if !e.Amount.Equal(dec("52.50")) {
		t.Errorf("lançamento derivado: esperava valor 52.50, obteve %s", e.Amount)
	}
	if e.Description != "Fechamento diário 2025-03-15: 12 pães, 4 salgados" {
		t.Errorf("descrição inesperada: %q", e.Description)
	}
	if e.UserID != "system-user" || e.InstituteID != "institute-1" {
		t.Errorf("identidade do lançamento: obteve (%q, %q)", e.UserID, e.InstituteID)
	}

	if len(audits.records) != 1 {
		t.Fatalf("esperava 1 registro de auditoria, obteve %d", len(audits.records))
	}
	if audits.records[0].Source != Source || audits.records[0].Action != "upsert-balance" {
		t.Errorf("auditoria: obteve (%q, %q)", audits.records[0].Source, audits.records[0].Action)
	}
}

func TestServiceRunEmptyDay(t *testing.T) {
	balances := &fakeBalanceRepo{}
	entries := &fakeLedgerRepo{}

	svc := NewService(&fakeProductRepo{}, &fakeSaleRepo{}, balances, entries, &fakeAuditRepo{}, testConfig(), testLogger())

	summary, err := svc.Run(context.Background(), testDate())
	if err != nil {
		t.Fatalf("Run retornou erro inesperado: %v", err)
	}

	// Mesmo sem vendas, a linha zerada é gravada para a data
	if len(balances.upserts) != 1 {
		t.Fatalf("esperava 1 upsert de fechamento zerado, obteve %d", len(balances.upserts))
	}
	b := balances.upserts[0]
	if b.TotalPaes != 0 || b.TotalSalgados != 0 || !b.TotalRepasse.IsZero() || !b.TotalVendas.IsZero() {
		t.Errorf("fechamento zerado esperado, obteve %+v", b)
	}
	if summary.Result.PaesUnits != 0 || !summary.Result.Repasse.IsZero() {
		t.Errorf("resumo zerado esperado, obteve %+v", summary.Result)
	}

	// O lançamento derivado zerado também é gravado
	if len(entries.entries) != 1 {
		t.Fatalf("esperava 1 lançamento derivado, obteve %d", len(entries.entries))
	}
}

func TestServiceRunProductsFailure(t *testing.T) {
	products := &fakeProductRepo{err: errors.New("conexão recusada")}
	balances := &fakeBalanceRepo{}

	svc := NewService(products, &fakeSaleRepo{}, balances, &fakeLedgerRepo{}, &fakeAuditRepo{}, testConfig(), testLogger())

	_, err := svc.Run(context.Background(), testDate())
	if err == nil {
		t.Fatal("esperava erro na etapa de catálogo")
	}

	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("esperava *RunError, obteve %T", err)
	}
	if runErr.Step != StepProducts {
		t.Errorf("esperava etapa %q, obteve %q", StepProducts, runErr.Step)
	}
	if len(balances.upserts) != 0 {
		t.Errorf("nenhum fechamento deveria ser gravado, obteve %d", len(balances.upserts))
	}
}

func TestServiceRunSalesFailure(t *testing.T) {
	sales := &fakeSaleRepo{err: errors.New("timeout")}

	svc := NewService(&fakeProductRepo{}, sales, &fakeBalanceRepo{}, &fakeLedgerRepo{}, &fakeAuditRepo{}, testConfig(), testLogger())

	_, err := svc.Run(context.Background(), testDate())

	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("esperava *RunError, obteve %v", err)
	}
	if runErr.Step != StepSales {
		t.Errorf("esperava etapa %q, obteve %q", StepSales, runErr.Step)
	}
}

func TestServiceRunUpsertFailure(t *testing.T) {
	balances := &fakeBalanceRepo{err: errors.New("deadlock detectado")}
	entries := &fakeLedgerRepo{}
	audits := &fakeAuditRepo{}

	svc := NewService(&fakeProductRepo{}, &fakeSaleRepo{}, balances, entries, audits, testConfig(), testLogger())

	_, err := svc.Run(context.Background(), testDate())

	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("esperava *RunError, obteve %v", err)
	}
	if runErr.Step != StepUpsert {
		t.Errorf("esperava etapa %q, obteve %q", StepUpsert, runErr.Step)
	}

	// Falha no upsert aborta antes dos efeitos best-effort
	if len(entries.entries) != 0 {
		t.Errorf("nenhum lançamento derivado deveria ser gravado, obteve %d", len(entries.entries))
	}
	if len(audits.records) != 0 {
		t.Errorf("nenhuma auditoria deveria ser gravada, obteve %d", len(audits.records))
	}
}

func TestServiceRunLedgerFailureIsBestEffort(t *testing.T) {
	balances := &fakeBalanceRepo{}
	entries := &fakeLedgerRepo{err: errors.New("tabela bloqueada")}

	svc := NewService(&fakeProductRepo{}, &fakeSaleRepo{}, balances, entries, &fakeAuditRepo{}, testConfig(), testLogger())

	// A falha no lançamento derivado não afeta o fechamento
	if _, err := svc.Run(context.Background(), testDate()); err != nil {
		t.Fatalf("Run não deveria falhar por causa do lançamento derivado: %v", err)
	}
	if len(balances.upserts) != 1 {
		t.Errorf("fechamento deveria ter sido gravado, obteve %d upserts", len(balances.upserts))
	}
}

func TestServiceRunAuditFailureIsIgnored(t *testing.T) {
	audits := &fakeAuditRepo{err: errors.New("disco cheio")}

	svc := NewService(&fakeProductRepo{}, &fakeSaleRepo{}, &fakeBalanceRepo{}, &fakeLedgerRepo{}, audits, testConfig(), testLogger())

	if _, err := svc.Run(context.Background(), testDate()); err != nil {
		t.Fatalf("Run não deveria falhar por causa da auditoria: %v", err)
	}
}

func TestServiceRunTwiceDuplicatesLedgerEntry(t *testing.T) {
	balances := &fakeBalanceRepo{}
	entries := &fakeLedgerRepo{}

	svc := NewService(&fakeProductRepo{}, &fakeSaleRepo{}, balances, entries, &fakeAuditRepo{}, testConfig(), testLogger())

	if _, err := svc.Run(context.Background(), testDate()); err != nil {
		t.Fatalf("primeira execução falhou: %v", err)
	}
	if _, err := svc.Run(context.Background(), testDate()); err != nil {
		t.Fatalf("segunda execução falhou: %v", err)
	}

	// O fechamento é idempotente pela data, mas o lançamento derivado
	// não tem chave de deduplicação: reprocessar duplica a linha
	if len(entries.entries) != 2 {
		t.Errorf("esperava 2 lançamentos derivados após reprocessar, obteve %d", len(entries.entries))
	}
	if len(balances.upserts) != 2 {
		t.Errorf("esperava 2 chamadas de upsert, obteve %d", len(balances.upserts))
	}
	if !balances.upserts[0].DataDate.Equal(balances.upserts[1].DataDate) {
		t.Errorf("as duas execuções deveriam gravar a mesma data")
	}
}

func TestServiceRunMissingLedgerIdentity(t *testing.T) {
	balances := &fakeBalanceRepo{}
	entries := &fakeLedgerRepo{}

	// Sem identidade configurada o lançamento derivado é inválido e
	// descartado, mas o fechamento segue normalmente
	svc := NewService(&fakeProductRepo{}, &fakeSaleRepo{}, balances, entries, &fakeAuditRepo{}, Config{}, testLogger())

	if _, err := svc.Run(context.Background(), testDate()); err != nil {
		t.Fatalf("Run não deveria falhar: %v", err)
	}
	if len(entries.entries) != 0 {
		t.Errorf("lançamento sem identidade deveria ser descartado, obteve %d", len(entries.entries))
	}
	if len(balances.upserts) != 1 {
		t.Errorf("fechamento deveria ter sido gravado, obteve %d", len(balances.upserts))
	}
}
