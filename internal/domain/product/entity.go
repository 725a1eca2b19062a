package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome do produto não pode ser vazio")
	ErrNegativePrice   = errors.New("preço do produto não pode ser negativo")
	ErrInvalidCategory = errors.New("categoria do produto inválida")
)

// Categorias conhecidas pela consolidação diária. Outras categorias são
// aceitas no cadastro, mas não entram nas contagens por categoria.
const (
	CategoryPaes     = "paes"
	CategorySalgados = "salgados"
)

// Product representa um produto do catálogo da padaria
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`      // Nome do produto
	Category  string          `json:"category"`  // Categoria (tag livre, ex: "paes", "salgados")
	Price     decimal.Decimal `json:"price"`     // Preço unitário de venda
	Active    bool            `json:"active"`    // Produto ativo no catálogo
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto do catálogo
func NewProduct(name, category string, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  strings.TrimSpace(category),
		Price:     price,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name, category string, price decimal.Decimal, active bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}

	p.Name = name
	p.Category = strings.TrimSpace(category)
	p.Price = price
	p.Active = active
	p.UpdatedAt = time.Now()
	return nil
}
