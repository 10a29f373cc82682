package lending

import (
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// Availability deriva la disponibilidad desde el libro mayor de préstamos.
// Solo lecturas, sin efectos secundarios; refleja el estado del ledger en el
// momento de la llamada (dentro de una transacción, el estado bloqueado).
// El stock almacenado es capacidad total inmutable: la disponibilidad se
// calcula en cada lectura, nunca se descuenta de un contador.
type Availability struct {
	loans repository.LoanRepository
}

// NewAvailability construye el calculador sobre un repositorio de préstamos
// (atado al pool o a una transacción, según el contexto del caller).
func NewAvailability(loans repository.LoanRepository) Availability {
	return Availability{loans: loans}
}

// AvailableStock devuelve stock total menos préstamos activos del libro.
// Puede ser negativo si los invariantes se rompieron aguas arriba (ej. stock
// reducido por CRUD con préstamos vigentes); el caller no debe asumir >= 0.
func (a Availability) AvailableStock(book *entity.Book) (int, error) {
	borrowed, err := a.loans.CountByBook(book.Code)
	if err != nil {
		return 0, err
	}
	return book.Stock - borrowed, nil
}

// MemberLoanCount devuelve la cantidad de préstamos activos del socio.
func (a Availability) MemberLoanCount(memberCode string) (int, error) {
	return a.loans.CountByMember(memberCode)
}
