package dto

import "time"

// BorrowRequest solicitud de préstamo. BorrowedDate es opcional; vacío usa la
// hora actual. Se valida dentro del flujo, en el paso que corresponde.
type BorrowRequest struct {
	MemberCode   string `json:"memberCode"`
	BookCode     string `json:"bookCode"`
	BorrowedDate string `json:"borrowedDate,omitempty"`
}

// ReturnRequest solicitud de devolución. ReturnedDate opcional, igual que arriba.
type ReturnRequest struct {
	MemberCode   string `json:"memberCode"`
	BookCode     string `json:"bookCode"`
	ReturnedDate string `json:"returnedDate,omitempty"`
}

// LoanResponse préstamo activo tal como se expone por la API.
type LoanResponse struct {
	ID           string    `json:"id"`
	MemberCode   string    `json:"memberCode"`
	BookCode     string    `json:"bookCode"`
	BorrowedDate time.Time `json:"borrowedDate"`
}
