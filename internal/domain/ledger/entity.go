package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyUserID      = errors.New("usuário do lançamento não pode ser vazio")
	ErrEmptyInstituteID = errors.New("instituto do lançamento não pode ser vazio")
	ErrInvalidPeriod    = errors.New("período do lançamento inválido")
	ErrInvalidKind      = errors.New("tipo do lançamento inválido")
	ErrZeroEntryDate    = errors.New("data do lançamento não pode ser vazia")
)

// Period define o período de referência do lançamento
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Kind define a direção do lançamento
type Kind string

const (
	KindEntrada Kind = "entrada" // Valor que entra
	KindSaida   Kind = "saida"   // Valor que sai
)

// Entry representa um lançamento financeiro (entrada ou saída).
// A tabela é append-only: lançamentos derivados do fechamento diário não
// têm chave de deduplicação, então reprocessar o mesmo dia gera uma
// linha duplicada (comportamento herdado, não corrigir aqui sem alinhar
// com o financeiro).
type Entry struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	InstituteID string          `json:"institute_id"`
	EntryDate   time.Time       `json:"entry_date"`
	Period      Period          `json:"period"`
	Kind        Kind            `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewEntry cria um novo lançamento
func NewEntry(userID, instituteID string, entryDate time.Time, period Period, kind Kind, amount decimal.Decimal, description string) (*Entry, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if instituteID == "" {
		return nil, ErrEmptyInstituteID
	}
	if entryDate.IsZero() {
		return nil, ErrZeroEntryDate
	}
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	now := time.Now()
	return &Entry{
		ID:          uuid.New().String(),
		UserID:      userID,
		InstituteID: instituteID,
		EntryDate:   entryDate,
		Period:      period,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os campos editáveis do lançamento
func (e *Entry) Update(entryDate time.Time, period Period, kind Kind, amount decimal.Decimal, description string) error {
	if entryDate.IsZero() {
		return ErrZeroEntryDate
	}
	if !period.Valid() {
		return ErrInvalidPeriod
	}
	if !kind.Valid() {
		return ErrInvalidKind
	}

	e.EntryDate = entryDate
	e.Period = period
	e.Kind = kind
	e.Amount = amount
	e.Description = description
	e.UpdatedAt = time.Now()
	return nil
}

// Valid verifica se o período é conhecido
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Valid verifica se o tipo é conhecido
func (k Kind) Valid() bool {
	switch k {
	case KindEntrada, KindSaida:
		return true
	}
	return false
}
