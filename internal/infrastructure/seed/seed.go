// Package seed puebla el catálogo y los socios de arranque. Es un
// colaborador externo al núcleo: se invoca explícitamente (cmd/seed para
// PostgreSQL, o al arrancar con el almacén en memoria), nunca desde los
// flujos de negocio.
package seed

import (
	"time"

	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// Books devuelve el catálogo inicial.
func Books() []*entity.Book {
	now := time.Now()
	return []*entity.Book{
		{Code: "JK-45", Title: "Harry Potter", Author: "J.K Rowling", Stock: 1, CreatedAt: now, UpdatedAt: now},
		{Code: "SHR-1", Title: "A Study in Scarlet", Author: "Arthur Conan Doyle", Stock: 1, CreatedAt: now, UpdatedAt: now},
		{Code: "TW-11", Title: "Twilight", Author: "Stephenie Meyer", Stock: 1, CreatedAt: now, UpdatedAt: now},
		{Code: "HOB-83", Title: "The Hobbit, or There and Back Again", Author: "J.R.R. Tolkien", Stock: 1, CreatedAt: now, UpdatedAt: now},
		{Code: "NRN-7", Title: "The Lion, the Witch and the Wardrobe", Author: "C.S. Lewis", Stock: 1, CreatedAt: now, UpdatedAt: now},
	}
}

// Members devuelve los socios iniciales.
func Members() []*entity.Member {
	now := time.Now()
	return []*entity.Member{
		{Code: "M001", Name: "Angga", CreatedAt: now, UpdatedAt: now},
		{Code: "M002", Name: "Ferry", CreatedAt: now, UpdatedAt: now},
		{Code: "M003", Name: "Putri", CreatedAt: now, UpdatedAt: now},
	}
}

// Run inserta los datos iniciales que aún no existan (idempotente por código).
func Run(books repository.BookRepository, members repository.MemberRepository) error {
	for _, b := range Books() {
		existing, err := books.GetByCode(b.Code)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := books.Create(b); err != nil {
				return err
			}
		}
	}
	for _, m := range Members() {
		existing, err := members.GetByCode(m.Code)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := members.Create(m); err != nil {
				return err
			}
		}
	}
	return nil
}
