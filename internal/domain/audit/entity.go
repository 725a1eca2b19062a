package audit

import (
	"time"

	"github.com/google/uuid"
)

// Record é um registro de auditoria de uma mutação bem-sucedida.
// A gravação é fire-and-forget: nenhuma garantia de ordenação ou
// durabilidade, e falhas são descartadas pelo chamador.
type Record struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"` // Origem da operação (ex: "daily-settlement")
	Action    string    `json:"action"` // Ação executada (ex: "upsert-balance")
	OK        bool      `json:"ok"`
	Payload   string    `json:"payload"` // Resumo JSON da operação
	Timestamp time.Time `json:"timestamp"`
}

// NewRecord cria um novo registro de auditoria
func NewRecord(source, action string, ok bool, payload string) *Record {
	return &Record{
		ID:        uuid.New().String(),
		Source:    source,
		Action:    action,
		OK:        ok,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}
