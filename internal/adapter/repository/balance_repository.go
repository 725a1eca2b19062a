package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/padocadigital/gestao-padaria/internal/domain/balance"
)

var ErrBalanceNotFound = errors.New("fechamento não encontrado")

// BalanceRepository implementa a interface balance.Repository
type BalanceRepository struct {
	db *pgxpool.Pool
}

// NewBalanceRepository cria uma nova instância de BalanceRepository
func NewBalanceRepository(db *pgxpool.Pool) balance.Repository {
	return &BalanceRepository{db: db}
}

// Upsert implementa balance.Repository.Upsert. A linha é chaveada por
// data_date: reprocessar a mesma data substitui os valores anteriores
// em uma única operação idempotente.
func (r *BalanceRepository) Upsert(ctx context.Context, b *balance.DailyBalance) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO daily_balances (data_date, total_paes, total_salgados, total_repasse, total_vendas, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (data_date) DO UPDATE SET
			total_paes = EXCLUDED.total_paes,
			total_salgados = EXCLUDED.total_salgados,
			total_repasse = EXCLUDED.total_repasse,
			total_vendas = EXCLUDED.total_vendas,
			updated_at = EXCLUDED.updated_at`,
		b.DataDate, b.TotalPaes, b.TotalSalgados, b.TotalRepasse, b.TotalVendas, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar fechamento diário: %w", err)
	}
	return nil
}

// FindByDate implementa balance.Repository.FindByDate
func (r *BalanceRepository) FindByDate(ctx context.Context, date time.Time) (*balance.DailyBalance, error) {
	var b balance.DailyBalance
	err := r.db.QueryRow(ctx,
		`SELECT data_date, total_paes, total_salgados, total_repasse, total_vendas, updated_at
		 FROM daily_balances WHERE data_date = $1`,
		date).Scan(&b.DataDate, &b.TotalPaes, &b.TotalSalgados, &b.TotalRepasse, &b.TotalVendas, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBalanceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fechamento: %w", err)
	}
	return &b, nil
}

// FindByDateRange implementa balance.Repository.FindByDateRange
func (r *BalanceRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*balance.DailyBalance, error) {
	rows, err := r.db.Query(ctx,
		`SELECT data_date, total_paes, total_salgados, total_repasse, total_vendas, updated_at
		 FROM daily_balances WHERE data_date >= $1 AND data_date <= $2 ORDER BY data_date`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fechamentos: %w", err)
	}
	defer rows.Close()

	return scanBalances(rows)
}

// FindLatest implementa balance.Repository.FindLatest
func (r *BalanceRepository) FindLatest(ctx context.Context, n int) ([]*balance.DailyBalance, error) {
	rows, err := r.db.Query(ctx,
		`SELECT data_date, total_paes, total_salgados, total_repasse, total_vendas, updated_at
		 FROM daily_balances ORDER BY data_date DESC LIMIT $1`,
		n)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar últimos fechamentos: %w", err)
	}
	defer rows.Close()

	return scanBalances(rows)
}

func scanBalances(rows pgx.Rows) ([]*balance.DailyBalance, error) {
	var balances []*balance.DailyBalance
	for rows.Next() {
		var b balance.DailyBalance
		if err := rows.Scan(&b.DataDate, &b.TotalPaes, &b.TotalSalgados, &b.TotalRepasse, &b.TotalVendas, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler fechamento: %w", err)
		}
		balances = append(balances, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer fechamentos: %w", err)
	}
	return balances, nil
}
