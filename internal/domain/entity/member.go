package entity

import "time"

// Member representa un socio de la biblioteca.
// PenaltyExpiry no nulo indica sanción vigente hasta esa fecha: la fija el
// flujo de devolución y la limpia el flujo de préstamo al observarla vencida.
type Member struct {
	Code          string // código único, clave primaria (ej. "M001")
	Name          string
	PenaltyExpiry *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Penalized indica si el socio tiene una sanción vigente respecto a now.
func (m *Member) Penalized(now time.Time) bool {
	return m.PenaltyExpiry != nil && m.PenaltyExpiry.After(now)
}
