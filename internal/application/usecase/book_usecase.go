package usecase

import (
	"time"

	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/domain"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/lending"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// BookUseCase casos de uso CRUD para libros. El stock expuesto en las
// lecturas es el disponible: total menos préstamos activos, calculado en
// cada lectura desde el ledger.
type BookUseCase struct {
	books repository.BookRepository
	loans repository.LoanRepository
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(books repository.BookRepository, loans repository.LoanRepository) *BookUseCase {
	return &BookUseCase{books: books, loans: loans}
}

// Create registra un libro nuevo. Código duplicado es error de validación.
func (uc *BookUseCase) Create(in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if in.Code == "" || in.Title == "" || in.Author == "" || in.Stock <= 0 {
		return nil, domain.InvalidInput("Missing required fields!")
	}
	existing, err := uc.books.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.InvalidInput("Validation error")
	}
	now := time.Now()
	book := &entity.Book{
		Code:      in.Code,
		Title:     in.Title,
		Author:    in.Author,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.books.Create(book); err != nil {
		return nil, err
	}
	return &dto.BookResponse{Code: book.Code, Title: book.Title, Author: book.Author, Stock: book.Stock}, nil
}

// GetByCode obtiene un libro con su stock disponible. nil si no existe.
func (uc *BookUseCase) GetByCode(code string) (*dto.BookResponse, error) {
	book, err := uc.books.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}
	calc := lending.NewAvailability(uc.loans)
	available, err := calc.AvailableStock(book)
	if err != nil {
		return nil, err
	}
	return &dto.BookResponse{Code: book.Code, Title: book.Title, Author: book.Author, Stock: available}, nil
}

// List lista todos los libros con el stock disponible de cada uno
// (conteo agrupado de préstamos, una sola consulta).
func (uc *BookUseCase) List() ([]dto.BookResponse, error) {
	books, err := uc.books.List()
	if err != nil {
		return nil, err
	}
	counts, err := uc.loans.CountsByBook()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, dto.BookResponse{
			Code:   b.Code,
			Title:  b.Title,
			Author: b.Author,
			Stock:  b.Stock - counts[b.Code],
		})
	}
	return items, nil
}

// Update actualiza un libro existente por código. nil si no existe.
func (uc *BookUseCase) Update(in dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := uc.books.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}
	if in.Title != "" {
		book.Title = in.Title
	}
	if in.Author != "" {
		book.Author = in.Author
	}
	if in.Stock > 0 {
		book.Stock = in.Stock
	}
	book.UpdatedAt = time.Now()
	if err := uc.books.Update(book); err != nil {
		return nil, err
	}
	return &dto.BookResponse{Code: book.Code, Title: book.Title, Author: book.Author, Stock: book.Stock}, nil
}

// Delete elimina un libro por código. Devuelve false si no existía.
func (uc *BookUseCase) Delete(code string) (bool, error) {
	book, err := uc.books.GetByCode(code)
	if err != nil {
		return false, err
	}
	if book == nil {
		return false, nil
	}
	if err := uc.books.Delete(code); err != nil {
		return false, err
	}
	return true, nil
}
