package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/padocadigital/gestao-padaria/internal/domain/audit"
)

// AuditRepository implementa a interface audit.Repository
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository cria uma nova instância de AuditRepository
func NewAuditRepository(db *pgxpool.Pool) audit.Repository {
	return &AuditRepository{db: db}
}

// Append implementa audit.Repository.Append
func (r *AuditRepository) Append(ctx context.Context, rec *audit.Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO audit_log (id, source, action, ok, payload, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Source, rec.Action, rec.OK, rec.Payload, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("erro ao gravar auditoria: %w", err)
	}
	return nil
}

// ListBySource implementa audit.Repository.ListBySource
func (r *AuditRepository) ListBySource(ctx context.Context, source string, limit int) ([]*audit.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, source, action, ok, payload, timestamp
		 FROM audit_log WHERE source = $1 ORDER BY timestamp DESC LIMIT $2`,
		source, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar auditoria: %w", err)
	}
	defer rows.Close()

	var records []*audit.Record
	for rows.Next() {
		var rec audit.Record
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Action, &rec.OK, &rec.Payload, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao ler auditoria: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer auditoria: %w", err)
	}
	return records, nil
}
