package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biblioteca-api/internal/domain"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

// BookRepo implementación de BookRepository sobre PostgreSQL (usable con pool o tx).
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador de libros. Pasar pool o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

// Create persiste un libro nuevo.
func (r *BookRepo) Create(book *entity.Book) error {
	query := `
		INSERT INTO books (code, title, author, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		book.Code, book.Title, book.Author, book.Stock, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.InvalidInput("Validation error")
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByCode obtiene un libro por código. nil si no existe.
func (r *BookRepo) GetByCode(code string) (*entity.Book, error) {
	return r.get(code, false)
}

// GetForUpdate obtiene el libro y bloquea su fila (SELECT FOR UPDATE).
func (r *BookRepo) GetForUpdate(code string) (*entity.Book, error) {
	return r.get(code, true)
}

func (r *BookRepo) get(code string, forUpdate bool) (*entity.Book, error) {
	query := `
		SELECT code, title, author, stock, created_at, updated_at
		FROM books WHERE code = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var b entity.Book
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&b.Code, &b.Title, &b.Author, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &b, nil
}

// List lista todos los libros ordenados por código.
func (r *BookRepo) List() ([]*entity.Book, error) {
	query := `
		SELECT code, title, author, stock, created_at, updated_at
		FROM books ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.Code, &b.Title, &b.Author, &b.Stock, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza un libro existente por código.
func (r *BookRepo) Update(book *entity.Book) error {
	query := `
		UPDATE books SET title = $2, author = $3, stock = $4, updated_at = $5
		WHERE code = $1`
	_, err := r.q.Exec(context.Background(), query,
		book.Code, book.Title, book.Author, book.Stock, book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// Delete elimina un libro por código.
func (r *BookRepo) Delete(code string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM books WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
