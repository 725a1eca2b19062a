package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/padocadigital/gestao-padaria/internal/domain/ledger"
)

var ErrEntryNotFound = errors.New("lançamento não encontrado")

// LedgerRepository implementa a interface ledger.Repository
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository cria uma nova instância de LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) ledger.Repository {
	return &LedgerRepository{db: db}
}

// Create implementa ledger.Repository.Create
func (r *LedgerRepository) Create(ctx context.Context, e *ledger.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ledger_entries (id, user_id, institute_id, entry_date, period, kind, amount, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.UserID, e.InstituteID, e.EntryDate, e.Period, e.Kind, e.Amount, e.Description, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar lançamento: %w", err)
	}
	return nil
}

// FindByID implementa ledger.Repository.FindByID
func (r *LedgerRepository) FindByID(ctx context.Context, id string) (*ledger.Entry, error) {
	var e ledger.Entry
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, institute_id, entry_date, period, kind, amount, description, created_at, updated_at
		 FROM ledger_entries WHERE id = $1`,
		id).Scan(&e.ID, &e.UserID, &e.InstituteID, &e.EntryDate, &e.Period, &e.Kind, &e.Amount, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lançamento: %w", err)
	}
	return &e, nil
}

// List implementa ledger.Repository.List
func (r *LedgerRepository) List(ctx context.Context, f ledger.Filter, limit, offset int) ([]*ledger.Entry, error) {
	where, args := buildLedgerFilter(f)
	args = append(args, limit, offset)

	query := fmt.Sprintf(
		`SELECT id, user_id, institute_id, entry_date, period, kind, amount, description, created_at, updated_at
		 FROM ledger_entries%s ORDER BY entry_date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.InstituteID, &e.EntryDate, &e.Period, &e.Kind, &e.Amount, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler lançamento: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer lançamentos: %w", err)
	}
	return entries, nil
}

// Update implementa ledger.Repository.Update
func (r *LedgerRepository) Update(ctx context.Context, e *ledger.Entry) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE ledger_entries SET entry_date = $2, period = $3, kind = $4, amount = $5, description = $6, updated_at = $7
		 WHERE id = $1`,
		e.ID, e.EntryDate, e.Period, e.Kind, e.Amount, e.Description, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lançamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Delete implementa ledger.Repository.Delete
func (r *LedgerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover lançamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Count implementa ledger.Repository.Count
func (r *LedgerRepository) Count(ctx context.Context, f ledger.Filter) (int, error) {
	where, args := buildLedgerFilter(f)

	var count int
	err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM ledger_entries%s`, where), args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar lançamentos: %w", err)
	}
	return count, nil
}

// buildLedgerFilter monta a cláusula WHERE e os argumentos do filtro
func buildLedgerFilter(f ledger.Filter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if f.InstituteID != "" {
		add("institute_id = $%d", f.InstituteID)
	}
	if f.UserID != "" {
		add("user_id = $%d", f.UserID)
	}
	if f.Period != "" {
		add("period = $%d", f.Period)
	}
	if f.Kind != "" {
		add("kind = $%d", f.Kind)
	}
	if !f.StartDate.IsZero() {
		add("entry_date >= $%d", f.StartDate)
	}
	if !f.EndDate.IsZero() {
		add("entry_date <= $%d", f.EndDate)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
