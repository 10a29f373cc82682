package lending

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/domain"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/lending"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// Reglas de préstamo fijas del negocio.
const (
	maxLoansPerMember = 2
	gracePeriod       = 7 * 24 * time.Hour
	penaltyDays       = 3
)

// LendingUseCase ejecuta los flujos de préstamo y devolución de forma
// transaccional, con bloqueo de fila sobre socio y libro (orden fijo
// socio → libro) y Commit/Rollback.
type LendingUseCase struct {
	txRunner TxRunner
	events   EventPublisher // puede ser nil
}

// NewLendingUseCase construye el caso de uso. events puede ser nil.
func NewLendingUseCase(txRunner TxRunner, events EventPublisher) *LendingUseCase {
	return &LendingUseCase{txRunner: txRunner, events: events}
}

// Borrow valida y ejecuta un préstamo como una decisión atómica. El orden de
// las verificaciones es parte del contrato: existencia del socio, sanción,
// existencia del libro, límite por socio, disponibilidad del libro, fecha.
// La primera que falla determina el error devuelto.
func (uc *LendingUseCase) Borrow(ctx context.Context, in dto.BorrowRequest) (*dto.LoanResponse, error) {
	if in.MemberCode == "" || in.BookCode == "" {
		return nil, domain.InvalidInput("Missing required fields!")
	}

	var created *entity.Loan
	err := uc.txRunner.Run(ctx, func(
		books repository.BookRepository,
		members repository.MemberRepository,
		loans repository.LoanRepository,
	) error {
		now := time.Now()

		// Bloquea la fila del socio: serializa el conteo de préstamos del
		// socio y la mutación de su sanción frente a peticiones concurrentes.
		member, err := members.GetForUpdate(in.MemberCode)
		if err != nil {
			return err
		}
		if member == nil {
			return domain.NotFound("Member not found")
		}

		// Sanción vigente corta el flujo; vencida se limpia y se persiste.
		if member.PenaltyExpiry != nil {
			if member.Penalized(now) {
				return domain.PolicyViolation("Member is currently being penalized!")
			}
			if err := members.UpdatePenalty(member.Code, nil); err != nil {
				return err
			}
		}

		// Bloquea la fila del libro: serializa la decisión de disponibilidad.
		book, err := books.GetForUpdate(in.BookCode)
		if err != nil {
			return err
		}
		if book == nil {
			return domain.NotFound("Book not found")
		}

		calc := lending.NewAvailability(loans)
		memberLoans, err := calc.MemberLoanCount(member.Code)
		if err != nil {
			return err
		}
		if memberLoans >= maxLoansPerMember {
			return domain.PolicyViolation("Member has borrowed more than 2 books!")
		}

		// Compara préstamos activos contra el stock total: con stock 1
		// también bloquea al socio que ya tiene el ejemplar.
		bookLoans, err := loans.CountByBook(book.Code)
		if err != nil {
			return err
		}
		if bookLoans >= book.Stock {
			return domain.PolicyViolation("Book is borrowed by other members!")
		}

		borrowedAt, err := parseDate(in.BorrowedDate, now)
		if err != nil {
			return domain.InvalidInput("Invalid date!")
		}

		created = &entity.Loan{
			ID:         uuid.New().String(),
			MemberCode: member.Code,
			BookCode:   book.Code,
			BorrowedAt: borrowedAt,
			CreatedAt:  now,
		}
		return loans.Create(created)
	})
	if err != nil {
		return nil, err
	}

	if uc.events != nil {
		uc.events.LoanCreated(created)
	}
	return toLoanResponse(created), nil
}

func toLoanResponse(l *entity.Loan) *dto.LoanResponse {
	if l == nil {
		return nil
	}
	return &dto.LoanResponse{
		ID:           l.ID,
		MemberCode:   l.MemberCode,
		BookCode:     l.BookCode,
		BorrowedDate: l.BorrowedAt,
	}
}
