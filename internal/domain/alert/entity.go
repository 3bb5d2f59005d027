package alert

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/pkg/apperr"
)

// Priority es la urgencia de una alerta
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid informa si la prioridad es conocida
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Kind clasifica el origen de la alerta
type Kind string

const (
	// KindLowStock la genera el procesador de transacciones al quedar un
	// producto en o bajo su stock mínimo
	KindLowStock Kind = "low_stock"
	// KindManual la crea un usuario
	KindManual Kind = "manual"
)

// Alert es un aviso asociado a una empresa, con metadatos estructurados
// sobre lo que la gatilló (producto y niveles de stock, por ejemplo)
type Alert struct {
	ID         string            `json:"id"`
	BusinessID string            `json:"business_id"`
	Kind       Kind              `json:"kind"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Priority   Priority          `json:"priority"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Read       bool              `json:"read"`
	Resolved   bool              `json:"resolved"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// New crea una alerta sin leer ni resolver
func New(businessID string, kind Kind, title, message string, priority Priority, metadata map[string]string) (*Alert, error) {
	if businessID == "" {
		return nil, apperr.Validation("la empresa es obligatoria")
	}
	if title == "" {
		return nil, apperr.Validation("el título es obligatorio")
	}
	if !priority.Valid() {
		return nil, apperr.Validation("prioridad desconocida: %s", priority)
	}

	now := time.Now()
	return &Alert{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Kind:       kind,
		Title:      title,
		Message:    message,
		Priority:   priority,
		Metadata:   metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// MarkRead marca la alerta como leída
func (a *Alert) MarkRead() {
	a.Read = true
	a.UpdatedAt = time.Now()
}

// Resolve marca la alerta como resuelta (implica leída)
func (a *Alert) Resolve() {
	a.Read = true
	a.Resolved = true
	a.UpdatedAt = time.Now()
}
