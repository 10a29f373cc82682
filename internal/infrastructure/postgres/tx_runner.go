package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/biblioteca-api/internal/application/lending"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// Ensure TxRunner implements lending.TxRunner.
var _ lending.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la decisión de préstamo/devolución dentro de una
// transacción PostgreSQL. La exclusión por socio y por libro la dan los
// SELECT FOR UPDATE de los repos atados a la transacción.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los errores de dominio pasan sin envolver para conservar
// su tipo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	books repository.BookRepository,
	members repository.MemberRepository,
	loans repository.LoanRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	books := NewBookRepository(tx)
	members := NewMemberRepository(tx)
	loans := NewLoanRepository(tx)

	if err := fn(books, members, loans); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
