package entity

import "time"

// Loan registro de préstamo activo: vincula un socio con un ejemplar desde
// BorrowedAt hasta su devolución. Inmutable entre creación y borrado; solo el
// flujo de préstamo lo crea y solo el de devolución lo elimina.
type Loan struct {
	ID         string // UUID
	MemberCode string
	BookCode   string
	BorrowedAt time.Time
	CreatedAt  time.Time
}
