package dto

import (
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/product"
)

// ProductRequest representa a requisição de criação/atualização de produto
type ProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Price    string `json:"price" binding:"required"` // Valor decimal como string
	Active   *bool  `json:"active"`                   // Omitido = true
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse representa a resposta paginada de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto do domínio para a resposta da API
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price.StringFixed(2),
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductListResponse converte a lista de produtos para a resposta paginada
func ToProductListResponse(products []*product.Product, totalCount int, pagination PaginationParams) ProductListResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}

	return ProductListResponse{
		Products:   responses,
		TotalCount: totalCount,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: pagination.TotalPages(totalCount),
	}
}
