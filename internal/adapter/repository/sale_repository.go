package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/padocadigital/gestao-padaria/internal/domain/sale"
)

var ErrSaleNotFound = errors.New("venda não encontrada")

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (id, product_id, quantity, transfer_amount, sale_date, cancelled, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.ProductID, s.Quantity, s.TransferAmount, s.SaleDate, s.Cancelled, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}
	return nil
}

// CreateBatch implementa sale.Repository.CreateBatch
func (r *SaleRepository) CreateBatch(ctx context.Context, sales []*sale.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range sales {
		_, err := tx.Exec(ctx,
			`INSERT INTO sales (id, product_id, quantity, transfer_amount, sale_date, cancelled, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, s.ProductID, s.Quantity, s.TransferAmount, s.SaleDate, s.Cancelled, s.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao registrar venda do lote: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar lote de vendas: %w", err)
	}
	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale
	err := r.db.QueryRow(ctx,
		`SELECT id, product_id, quantity, transfer_amount, sale_date, cancelled, created_at
		 FROM sales WHERE id = $1`,
		id).Scan(&s.ID, &s.ProductID, &s.Quantity, &s.TransferAmount, &s.SaleDate, &s.Cancelled, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return &s, nil
}

// FindByDateRange implementa sale.Repository.FindByDateRange.
// O intervalo é inclusivo nas duas pontas.
func (r *SaleRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, quantity, transfer_amount, sale_date, cancelled, created_at
		 FROM sales WHERE sale_date >= $1 AND sale_date <= $2 ORDER BY sale_date`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do período: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, quantity, transfer_amount, sale_date, cancelled, created_at
		 FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

func scanSales(rows pgx.Rows) ([]*sale.Sale, error) {
	var sales []*sale.Sale
	for rows.Next() {
		var s sale.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.TransferAmount, &s.SaleDate, &s.Cancelled, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}
	return sales, nil
}
