package usecase

import (
	"time"

	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/domain"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/lending"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// MemberUseCase casos de uso CRUD para socios. PenaltyExpiry no se toca por
// CRUD: lo mutan exclusivamente los flujos de préstamo/devolución.
type MemberUseCase struct {
	members repository.MemberRepository
	loans   repository.LoanRepository
}

// NewMemberUseCase construye el caso de uso.
func NewMemberUseCase(members repository.MemberRepository, loans repository.LoanRepository) *MemberUseCase {
	return &MemberUseCase{members: members, loans: loans}
}

// Create registra un socio nuevo. Código duplicado es error de validación.
func (uc *MemberUseCase) Create(in dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.InvalidInput("Missing required fields!")
	}
	existing, err := uc.members.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.InvalidInput("Validation error")
	}
	now := time.Now()
	member := &entity.Member{
		Code:      in.Code,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.members.Create(member); err != nil {
		return nil, err
	}
	return &dto.MemberResponse{Code: member.Code, Name: member.Name}, nil
}

// GetByCode obtiene un socio con el detalle de sus préstamos activos.
// nil si no existe.
func (uc *MemberUseCase) GetByCode(code string) (*dto.MemberDetailResponse, error) {
	member, err := uc.members.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	loans, err := uc.loans.ListByMember(code)
	if err != nil {
		return nil, err
	}
	borrowed := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		borrowed = append(borrowed, dto.LoanResponse{
			ID:           l.ID,
			MemberCode:   l.MemberCode,
			BookCode:     l.BookCode,
			BorrowedDate: l.BorrowedAt,
		})
	}
	return &dto.MemberDetailResponse{
		MemberResponse: dto.MemberResponse{
			Code:               member.Code,
			Name:               member.Name,
			PenaltyExpiry:      member.PenaltyExpiry,
			BorrowedBooksCount: len(borrowed),
		},
		BorrowedBooks: borrowed,
	}, nil
}

// List lista todos los socios con la cantidad de libros que cada uno tiene
// prestados (conteo agrupado, una sola consulta).
func (uc *MemberUseCase) List() ([]dto.MemberResponse, error) {
	members, err := uc.members.List()
	if err != nil {
		return nil, err
	}
	counts, err := uc.loans.CountsByMember()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		items = append(items, dto.MemberResponse{
			Code:               m.Code,
			Name:               m.Name,
			PenaltyExpiry:      m.PenaltyExpiry,
			BorrowedBooksCount: counts[m.Code],
		})
	}
	return items, nil
}

// LoanCount devuelve los préstamos activos de un socio vía el calculador de
// disponibilidad.
func (uc *MemberUseCase) LoanCount(code string) (int, error) {
	calc := lending.NewAvailability(uc.loans)
	return calc.MemberLoanCount(code)
}

// Update actualiza el nombre de un socio por código. nil si no existe.
func (uc *MemberUseCase) Update(in dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	member, err := uc.members.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	if in.Name != "" {
		member.Name = in.Name
	}
	member.UpdatedAt = time.Now()
	if err := uc.members.Update(member); err != nil {
		return nil, err
	}
	return &dto.MemberResponse{Code: member.Code, Name: member.Name, PenaltyExpiry: member.PenaltyExpiry}, nil
}

// Delete elimina un socio por código. Devuelve false si no existía.
func (uc *MemberUseCase) Delete(code string) (bool, error) {
	member, err := uc.members.GetByCode(code)
	if err != nil {
		return false, err
	}
	if member == nil {
		return false, nil
	}
	if err := uc.members.Delete(code); err != nil {
		return false, err
	}
	return true, nil
}
