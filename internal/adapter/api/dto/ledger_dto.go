package dto

import (
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/ledger"
)

// EntryRequest representa a requisição de criação/atualização de lançamento
type EntryRequest struct {
	EntryDate   string `json:"entry_date" binding:"required"` // YYYY-MM-DD
	Period      string `json:"period" binding:"required,oneof=daily weekly monthly"`
	Kind        string `json:"kind" binding:"required,oneof=entrada saida"`
	Amount      string `json:"amount" binding:"required"` // Valor decimal como string
	Description string `json:"description"`
}

// EntryResponse representa a resposta de lançamento
type EntryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	InstituteID string    `json:"institute_id"`
	EntryDate   string    `json:"entry_date"`
	Period      string    `json:"period"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntryListResponse representa a resposta paginada de lançamentos
type EntryListResponse struct {
	Entries    []EntryResponse `json:"entries"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// ToEntryResponse converte um lançamento do domínio para a resposta da API
func ToEntryResponse(e *ledger.Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		InstituteID: e.InstituteID,
		EntryDate:   e.EntryDate.Format("2006-01-02"),
		Period:      string(e.Period),
		Kind:        string(e.Kind),
		Amount:      e.Amount.StringFixed(2),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEntryListResponse converte a lista de lançamentos para a resposta paginada
func ToEntryListResponse(entries []*ledger.Entry, totalCount int, pagination PaginationParams) EntryListResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, ToEntryResponse(e))
	}

	return EntryListResponse{
		Entries:    responses,
		TotalCount: totalCount,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: pagination.TotalPages(totalCount),
	}
}
