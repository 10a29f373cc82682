package dto

import "time"

// CreateMemberRequest alta de socio.
type CreateMemberRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// UpdateMemberRequest actualización de socio; Code identifica el registro.
type UpdateMemberRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// MemberResponse socio con la cantidad de libros que tiene prestados.
type MemberResponse struct {
	Code               string     `json:"code"`
	Name               string     `json:"name"`
	PenaltyExpiry      *time.Time `json:"penaltyExpiry"`
	BorrowedBooksCount int        `json:"borrowedBooksCount"`
}

// MemberDetailResponse socio con el detalle de sus préstamos activos.
type MemberDetailResponse struct {
	MemberResponse
	BorrowedBooks []LoanResponse `json:"borrowedBooks"`
}
