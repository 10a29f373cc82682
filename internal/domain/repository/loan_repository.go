package repository

import "github.com/jhoicas/biblioteca-api/internal/domain/entity"

// LoanRepository define el puerto sobre el libro mayor de préstamos activos.
// Solo los flujos de préstamo/devolución crean y eliminan registros; no existe
// operación de actualización.
type LoanRepository interface {
	Create(loan *entity.Loan) error
	// Find devuelve el préstamo activo del socio sobre el libro, o nil.
	Find(memberCode, bookCode string) (*entity.Loan, error)
	Delete(id string) error
	CountByMember(memberCode string) (int, error)
	CountByBook(bookCode string) (int, error)
	// CountsByBook y CountsByMember devuelven los conteos agrupados para los
	// listados (equivalente al join+group del catálogo).
	CountsByBook() (map[string]int, error)
	CountsByMember() (map[string]int, error)
	ListByMember(memberCode string) ([]*entity.Loan, error)
}
