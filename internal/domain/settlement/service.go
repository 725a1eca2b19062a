package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/audit"
	"github.com/padocadigital/gestao-padaria/internal/domain/balance"
	"github.com/padocadigital/gestao-padaria/internal/domain/ledger"
	"github.com/padocadigital/gestao-padaria/internal/domain/product"
	"github.com/padocadigital/gestao-padaria/internal/domain/sale"
	"github.com/padocadigital/gestao-padaria/pkg/logger"
)

// Source identifica o fluxo de fechamento nos registros de auditoria
const Source = "daily-settlement"

// Step identifica a etapa obrigatória que falhou em um fechamento
type Step string

const (
	StepProducts Step = "products"
	StepSales    Step = "sales"
	StepUpsert   Step = "upsert"
)

// RunError embala a falha de uma etapa obrigatória do fechamento,
// preservando a mensagem original do erro
type RunError struct {
	Step Step
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("fechamento diário: etapa %s: %v", e.Step, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Summary é o resultado de uma execução do fechamento diário
type Summary struct {
	Date   time.Time
	Result Result
}

// Config define a identidade usada no lançamento derivado do fechamento
type Config struct {
	LedgerUserID      string // Usuário de sistema dono dos lançamentos derivados
	LedgerInstituteID string // Instituto associado aos lançamentos derivados
}

// Service orquestra o fechamento diário: busca catálogo e vendas,
// consolida, grava o fechamento e dispara os efeitos best-effort
// (lançamento derivado e auditoria)
type Service struct {
	products product.Repository
	sales    sale.Repository
	balances balance.Repository
	entries  ledger.Repository
	audits   audit.Repository
	config   Config
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de fechamento
func NewService(
	products product.Repository,
	sales sale.Repository,
	balances balance.Repository,
	entries ledger.Repository,
	audits audit.Repository,
	config Config,
	log logger.Logger,
) *Service {
	return &Service{
		products: products,
		sales:    sales,
		balances: balances,
		entries:  entries,
		audits:   audits,
		config:   config,
		logger:   log,
	}
}

// Run executa o fluxo completo do fechamento para a data informada.
// As etapas obrigatórias (catálogo, vendas, upsert do fechamento)
// abortam a execução em caso de falha; o lançamento derivado e a
// auditoria são best-effort e nunca afetam o resultado.
func (s *Service) Run(ctx context.Context, date time.Time) (*Summary, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, &RunError{Step: StepProducts, Err: err}
	}
	categoryIndex := BuildCategoryIndex(products)

	start, end := DayWindow(date)
	sales, err := s.sales.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, &RunError{Step: StepSales, Err: err}
	}

	result := Aggregate(sales, categoryIndex)

	// Mesmo um dia sem vendas grava uma linha zerada para a data
	b, err := balance.NewDailyBalance(start, result.PaesUnits, result.SalgadosUnits, result.Repasse, result.TotalVendas)
	if err != nil {
		return nil, &RunError{Step: StepUpsert, Err: err}
	}
	if err := s.balances.Upsert(ctx, b); err != nil {
		return nil, &RunError{Step: StepUpsert, Err: err}
	}

	s.writeDerivedEntry(ctx, start, result)
	s.appendAudit(ctx, "upsert-balance", b)

	return &Summary{Date: start, Result: result}, nil
}

// writeDerivedEntry grava o lançamento "entrada" que descreve o
// fechamento. Best-effort: falha é só logada, nunca propagada nem
// repetida. Não há chave de deduplicação; reprocessar o mesmo dia gera
// um lançamento duplicado.
func (s *Service) writeDerivedEntry(ctx context.Context, date time.Time, result Result) {
	description := fmt.Sprintf(
		"Fechamento diário %s: %d pães, %d salgados",
		date.Format("2006-01-02"), result.PaesUnits, result.SalgadosUnits,
	)

	entry, err := ledger.NewEntry(
		s.config.LedgerUserID,
		s.config.LedgerInstituteID,
		date,
		ledger.PeriodDaily,
		ledger.KindEntrada,
		result.Repasse,
		description,
	)
	if err != nil {
		s.logger.Warn("fechamento: lançamento derivado inválido, ignorando", "error", err)
		return
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		s.logger.Warn("fechamento: falha ao gravar lançamento derivado, ignorando", "error", err)
	}
}

// appendAudit grava o registro de auditoria da mutação. Fire-and-forget:
// erros são descartados
func (s *Service) appendAudit(ctx context.Context, action string, payload interface{}) {
	if s.audits == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte("{}")
	}

	record := audit.NewRecord(Source, action, true, string(body))
	if err := s.audits.Append(ctx, record); err != nil {
		s.logger.Debug("fechamento: falha ao gravar auditoria, ignorando", "error", err)
	}
}
