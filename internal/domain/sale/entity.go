package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID = errors.New("produto da venda não pode ser vazio")
	ErrZeroSaleDate   = errors.New("data da venda não pode ser vazia")
)

// Sale representa uma linha de venda registrada pelo PDV.
// Os registros são criados pela ingestão do cartão diário e tratados
// como somente leitura pela consolidação.
type Sale struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`        // Unidades vendidas
	TransferAmount decimal.Decimal `json:"transfer_amount"` // Repasse devido ao operador
	SaleDate       time.Time       `json:"sale_date"`
	Cancelled      bool            `json:"cancelled"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewSale cria uma nova linha de venda
func NewSale(productID string, quantity int, transferAmount decimal.Decimal, saleDate time.Time, cancelled bool) (*Sale, error) {
	if productID == "" {
		return nil, ErrEmptyProductID
	}
	if saleDate.IsZero() {
		return nil, ErrZeroSaleDate
	}

	return &Sale{
		ID:             uuid.New().String(),
		ProductID:      productID,
		Quantity:       quantity,
		TransferAmount: transferAmount,
		SaleDate:       saleDate,
		Cancelled:      cancelled,
		CreatedAt:      time.Now(),
	}, nil
}
