package lending

import (
	"context"

	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// TxRunner ejecuta la decisión completa de préstamo/devolución como una unidad
// atómica: los repos que recibe fn están atados a la misma transacción (o al
// mismo lock de escritor único en la implementación en memoria). Las lecturas
// de disponibilidad y las mutaciones del ledger y de la sanción del socio
// ocurren dentro de la misma unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		books repository.BookRepository,
		members repository.MemberRepository,
		loans repository.LoanRepository,
	) error) error
}

// EventPublisher publica eventos de préstamo hacia el broker. Puede ser nil
// (instalaciones sin RabbitMQ); la publicación es best-effort y nunca afecta
// el resultado de la operación.
type EventPublisher interface {
	LoanCreated(loan *entity.Loan)
	LoanReturned(memberCode, bookCode string, penalized bool)
}
