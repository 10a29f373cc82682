package lending

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/domain"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// Return valida y ejecuta una devolución: busca el préstamo, calcula la
// demora, aplica la sanción si corresponde y elimina el registro del ledger,
// todo dentro de la misma unidad atómica que el préstamo usa (mismos locks,
// mismo orden socio → libro).
func (uc *LendingUseCase) Return(ctx context.Context, in dto.ReturnRequest) (string, error) {
	if in.MemberCode == "" || in.BookCode == "" {
		return "", domain.InvalidInput("Missing required fields!")
	}

	var message string
	var penalized bool
	err := uc.txRunner.Run(ctx, func(
		books repository.BookRepository,
		members repository.MemberRepository,
		loans repository.LoanRepository,
	) error {
		member, err := members.GetForUpdate(in.MemberCode)
		if err != nil {
			return err
		}
		if member == nil {
			return domain.NotFound("Member not found")
		}
		book, err := books.GetForUpdate(in.BookCode)
		if err != nil {
			return err
		}
		if book == nil {
			return domain.NotFound("Book not found")
		}

		returnedAt, err := parseDate(in.ReturnedDate, time.Now())
		if err != nil {
			return domain.InvalidInput("Invalid date!")
		}

		loan, err := loans.Find(member.Code, book.Code)
		if err != nil {
			return err
		}
		if loan == nil {
			return domain.PolicyViolation("The returned book is not a book that the member has borrowed!")
		}

		message = "book returned successfully"
		elapsed := returnedAt.Sub(loan.BorrowedAt)
		if elapsed > gracePeriod {
			// La sanción ancla al reloj del proceso, no a returnedDate.
			expiry := time.Now().AddDate(0, 0, penaltyDays)
			if err := members.UpdatePenalty(member.Code, &expiry); err != nil {
				return err
			}
			days := float64(elapsed) / float64(24*time.Hour)
			message += " but member is being penalized until " + expiry.Format(time.RFC3339) +
				" due to returning the book after more than " + strconv.FormatFloat(days, 'f', -1, 64) + " days"
			penalized = true
		}

		return loans.Delete(loan.ID)
	})
	if err != nil {
		return "", err
	}

	if uc.events != nil {
		uc.events.LoanReturned(in.MemberCode, in.BookCode, penalized)
	}
	return message, nil
}
