package repository

import "github.com/jhoicas/biblioteca-api/internal/domain/entity"

// BookRepository define el puerto de persistencia para libros.
type BookRepository interface {
	Create(book *entity.Book) error
	GetByCode(code string) (*entity.Book, error)
	// GetForUpdate bloquea la fila del libro dentro de una transacción
	// (SELECT FOR UPDATE) para serializar la decisión de disponibilidad.
	GetForUpdate(code string) (*entity.Book, error)
	List() ([]*entity.Book, error)
	Update(book *entity.Book) error
	Delete(code string) error
}
