package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

var _ repository.LoanRepository = (*LoanRepo)(nil)

// LoanRepo implementación de LoanRepository sobre PostgreSQL (usable con pool o tx).
// Los registros son inmutables: solo INSERT, SELECT y DELETE.
type LoanRepo struct {
	q Querier
}

// NewLoanRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewLoanRepository(q Querier) *LoanRepo {
	return &LoanRepo{q: q}
}

// Create persiste un préstamo nuevo.
func (r *LoanRepo) Create(loan *entity.Loan) error {
	query := `
		INSERT INTO loans (id, member_code, book_code, borrowed_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		loan.ID, loan.MemberCode, loan.BookCode, loan.BorrowedAt, loan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert loan: %w", err)
	}
	return nil
}

// Find devuelve el préstamo activo del socio sobre el libro, o nil.
// Con varios registros devuelve el más antiguo.
func (r *LoanRepo) Find(memberCode, bookCode string) (*entity.Loan, error) {
	query := `
		SELECT id, member_code, book_code, borrowed_at, created_at
		FROM loans WHERE member_code = $1 AND book_code = $2
		ORDER BY borrowed_at LIMIT 1`
	var l entity.Loan
	err := r.q.QueryRow(context.Background(), query, memberCode, bookCode).Scan(
		&l.ID, &l.MemberCode, &l.BookCode, &l.BorrowedAt, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find loan: %w", err)
	}
	return &l, nil
}

// Delete elimina un préstamo por id.
func (r *LoanRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	return nil
}

// CountByMember cuenta los préstamos activos de un socio.
func (r *LoanRepo) CountByMember(memberCode string) (int, error) {
	return r.count(`SELECT COUNT(*) FROM loans WHERE member_code = $1`, memberCode)
}

// CountByBook cuenta los préstamos activos de un libro.
func (r *LoanRepo) CountByBook(bookCode string) (int, error) {
	return r.count(`SELECT COUNT(*) FROM loans WHERE book_code = $1`, bookCode)
}

func (r *LoanRepo) count(query, arg string) (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("count loans: %w", err)
	}
	return n, nil
}

// CountsByBook devuelve préstamos activos agrupados por libro.
func (r *LoanRepo) CountsByBook() (map[string]int, error) {
	return r.grouped(`SELECT book_code, COUNT(*) FROM loans GROUP BY book_code`)
}

// CountsByMember devuelve préstamos activos agrupados por socio.
func (r *LoanRepo) CountsByMember() (map[string]int, error) {
	return r.grouped(`SELECT member_code, COUNT(*) FROM loans GROUP BY member_code`)
}

func (r *LoanRepo) grouped(query string) (map[string]int, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("group loans: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var code string
		var n int
		if err := rows.Scan(&code, &n); err != nil {
			return nil, fmt.Errorf("scan loan count: %w", err)
		}
		counts[code] = n
	}
	return counts, rows.Err()
}

// ListByMember lista los préstamos activos de un socio.
func (r *LoanRepo) ListByMember(memberCode string) ([]*entity.Loan, error) {
	query := `
		SELECT id, member_code, book_code, borrowed_at, created_at
		FROM loans WHERE member_code = $1 ORDER BY borrowed_at`
	rows, err := r.q.Query(context.Background(), query, memberCode)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()
	var list []*entity.Loan
	for rows.Next() {
		var l entity.Loan
		if err := rows.Scan(&l.ID, &l.MemberCode, &l.BookCode, &l.BorrowedAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
