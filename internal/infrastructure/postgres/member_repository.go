package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biblioteca-api/internal/domain"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementación de MemberRepository sobre PostgreSQL (usable con pool o tx).
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el adaptador de socios. Pasar pool o tx (Querier).
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

// Create persiste un socio nuevo.
func (r *MemberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (code, name, penalty_expiry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		member.Code, member.Name, member.PenaltyExpiry, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.InvalidInput("Validation error")
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByCode obtiene un socio por código. nil si no existe.
func (r *MemberRepo) GetByCode(code string) (*entity.Member, error) {
	return r.get(code, false)
}

// GetForUpdate obtiene el socio y bloquea su fila (SELECT FOR UPDATE).
// El orden de bloqueo en los flujos es siempre socio → libro.
func (r *MemberRepo) GetForUpdate(code string) (*entity.Member, error) {
	return r.get(code, true)
}

func (r *MemberRepo) get(code string, forUpdate bool) (*entity.Member, error) {
	query := `
		SELECT code, name, penalty_expiry, created_at, updated_at
		FROM members WHERE code = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var m entity.Member
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&m.Code, &m.Name, &m.PenaltyExpiry, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// List lista todos los socios ordenados por código.
func (r *MemberRepo) List() ([]*entity.Member, error) {
	query := `
		SELECT code, name, penalty_expiry, created_at, updated_at
		FROM members ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	var list []*entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.Code, &m.Name, &m.PenaltyExpiry, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza los datos básicos del socio. No toca penalty_expiry
// (eso es exclusivo de los flujos de préstamo/devolución vía UpdatePenalty).
func (r *MemberRepo) Update(member *entity.Member) error {
	query := `
		UPDATE members SET name = $2, updated_at = $3
		WHERE code = $1`
	_, err := r.q.Exec(context.Background(), query, member.Code, member.Name, member.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// UpdatePenalty fija o limpia (nil) la expiración de la sanción del socio.
func (r *MemberRepo) UpdatePenalty(code string, expiry *time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE members SET penalty_expiry = $2, updated_at = now() WHERE code = $1`,
		code, expiry,
	)
	if err != nil {
		return fmt.Errorf("update member penalty: %w", err)
	}
	return nil
}

// Delete elimina un socio por código.
func (r *MemberRepo) Delete(code string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM members WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
