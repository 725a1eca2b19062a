package institute

import (
	"context"
)

type contextKey string

const instituteIDKey contextKey = "institute_id"

// SetInstituteIDContext define o institute ID no contexto
func SetInstituteIDContext(ctx context.Context, instituteID string) context.Context {
	return context.WithValue(ctx, instituteIDKey, instituteID)
}

// GetInstituteIDFromContext obtém o institute ID do contexto
func GetInstituteIDFromContext(ctx context.Context) string {
	if instituteID, ok := ctx.Value(instituteIDKey).(string); ok {
		return instituteID
	}
	return ""
}
