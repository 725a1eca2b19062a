package dto

import (
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/sale"
)

// SaleRequest representa uma linha de venda enviada pelo PDV
type SaleRequest struct {
	ProductID      string `json:"product_id" binding:"required"`
	Quantity       int    `json:"quantity"`
	TransferAmount string `json:"transfer_amount"` // Valor decimal como string; vazio = 0
	SaleDate       string `json:"sale_date" binding:"required"` // RFC 3339
	Cancelled      bool   `json:"cancelled"`
}

// SaleBatchRequest representa o lote do cartão diário do PDV
type SaleBatchRequest struct {
	Sales []SaleRequest `json:"sales" binding:"required,min=1"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Quantity       int       `json:"quantity"`
	TransferAmount string    `json:"transfer_amount"`
	SaleDate       time.Time `json:"sale_date"`
	Cancelled      bool      `json:"cancelled"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaleBatchResponse representa o resultado da ingestão de um lote
type SaleBatchResponse struct {
	Ingested   int                 `json:"ingested"`
	Settlement *SettlementResponse `json:"settlement,omitempty"`
}

// ToSaleResponse converte uma venda do domínio para a resposta da API
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:             s.ID,
		ProductID:      s.ProductID,
		Quantity:       s.Quantity,
		TransferAmount: s.TransferAmount.StringFixed(2),
		SaleDate:       s.SaleDate,
		Cancelled:      s.Cancelled,
		CreatedAt:      s.CreatedAt,
	}
}

// ToSaleListResponse converte a lista de vendas
func ToSaleListResponse(sales []*sale.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, ToSaleResponse(s))
	}
	return responses
}
