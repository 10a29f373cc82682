package repository

import (
	"time"

	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
)

// MemberRepository define el puerto de persistencia para socios.
type MemberRepository interface {
	Create(member *entity.Member) error
	GetByCode(code string) (*entity.Member, error)
	// GetForUpdate bloquea la fila del socio dentro de una transacción
	// (SELECT FOR UPDATE); el orden de bloqueo es siempre socio → libro.
	GetForUpdate(code string) (*entity.Member, error)
	List() ([]*entity.Member, error)
	Update(member *entity.Member) error
	// UpdatePenalty fija o limpia (nil) la fecha de expiración de la sanción.
	UpdatePenalty(code string, expiry *time.Time) error
	Delete(code string) error
}
