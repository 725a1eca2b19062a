package audit

import (
	"context"
)

// Repository define a interface para o registro de auditoria (append-only)
type Repository interface {
	// Append grava um registro de auditoria
	Append(ctx context.Context, r *Record) error

	// ListBySource lista os registros de uma origem, do mais recente
	// para o mais antigo
	ListBySource(ctx context.Context, source string, limit int) ([]*Record, error)
}
