package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/biblioteca-api/internal/application/lending"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// Ensure Store implements lending.TxRunner.
var _ lending.TxRunner = (*Store)(nil)

// Store almacén en memoria. Es el backend por defecto cuando no hay
// DATABASE_URL configurado (desarrollo local y tests).
//
// La atomicidad de préstamo/devolución la da un lock de escritor único:
// Run retiene el mutex del store durante toda la decisión, la estrategia de
// "cola de un solo escritor" para serializar el check-then-act.
type Store struct {
	mu      sync.Mutex
	books   map[string]*entity.Book
	members map[string]*entity.Member
	loans   map[string]*entity.Loan // por id
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		books:   make(map[string]*entity.Book),
		members: make(map[string]*entity.Member),
		loans:   make(map[string]*entity.Loan),
	}
}

// Run ejecuta fn bajo el lock del store: ninguna otra operación observa ni
// muta el estado hasta que la decisión completa. No hay rollback: las
// mutaciones previas a un fallo (limpieza de sanción) persisten.
func (s *Store) Run(ctx context.Context, fn func(
	books repository.BookRepository,
	members repository.MemberRepository,
	loans repository.LoanRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(txBooks{s}, txMembers{s}, txLoans{s})
}

// Books devuelve la vista con locking para uso fuera de Run (CRUD).
func (s *Store) Books() repository.BookRepository { return lockedBooks{s} }

// Members devuelve la vista con locking para uso fuera de Run (CRUD).
func (s *Store) Members() repository.MemberRepository { return lockedMembers{s} }

// Loans devuelve la vista con locking para uso fuera de Run (CRUD y listados).
func (s *Store) Loans() repository.LoanRepository { return lockedLoans{s} }

// ── operaciones crudas, sin lock (el caller debe sostener mu) ──

func copyBook(b *entity.Book) *entity.Book {
	cp := *b
	return &cp
}

func copyMember(m *entity.Member) *entity.Member {
	cp := *m
	if m.PenaltyExpiry != nil {
		t := *m.PenaltyExpiry
		cp.PenaltyExpiry = &t
	}
	return &cp
}

func copyLoan(l *entity.Loan) *entity.Loan {
	cp := *l
	return &cp
}

func (s *Store) createBook(b *entity.Book) error {
	s.books[b.Code] = copyBook(b)
	return nil
}

func (s *Store) getBook(code string) (*entity.Book, error) {
	b, ok := s.books[code]
	if !ok {
		return nil, nil
	}
	return copyBook(b), nil
}

func (s *Store) listBooks() ([]*entity.Book, error) {
	list := make([]*entity.Book, 0, len(s.books))
	for _, b := range s.books {
		list = append(list, copyBook(b))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (s *Store) updateBook(b *entity.Book) error {
	if _, ok := s.books[b.Code]; ok {
		s.books[b.Code] = copyBook(b)
	}
	return nil
}

func (s *Store) deleteBook(code string) error {
	delete(s.books, code)
	return nil
}

func (s *Store) createMember(m *entity.Member) error {
	s.members[m.Code] = copyMember(m)
	return nil
}

func (s *Store) getMember(code string) (*entity.Member, error) {
	m, ok := s.members[code]
	if !ok {
		return nil, nil
	}
	return copyMember(m), nil
}

func (s *Store) listMembers() ([]*entity.Member, error) {
	list := make([]*entity.Member, 0, len(s.members))
	for _, m := range s.members {
		list = append(list, copyMember(m))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (s *Store) updateMember(m *entity.Member) error {
	if cur, ok := s.members[m.Code]; ok {
		cp := copyMember(m)
		cp.PenaltyExpiry = cur.PenaltyExpiry // el CRUD no toca la sanción
		s.members[m.Code] = cp
	}
	return nil
}

func (s *Store) updatePenalty(code string, expiry *time.Time) error {
	if m, ok := s.members[code]; ok {
		if expiry != nil {
			t := *expiry
			m.PenaltyExpiry = &t
		} else {
			m.PenaltyExpiry = nil
		}
		m.UpdatedAt = time.Now()
	}
	return nil
}

func (s *Store) deleteMember(code string) error {
	delete(s.members, code)
	return nil
}

func (s *Store) createLoan(l *entity.Loan) error {
	s.loans[l.ID] = copyLoan(l)
	return nil
}

func (s *Store) findLoan(memberCode, bookCode string) (*entity.Loan, error) {
	var found *entity.Loan
	for _, l := range s.loans {
		if l.MemberCode != memberCode || l.BookCode != bookCode {
			continue
		}
		if found == nil || l.BorrowedAt.Before(found.BorrowedAt) {
			found = l
		}
	}
	if found == nil {
		return nil, nil
	}
	return copyLoan(found), nil
}

func (s *Store) deleteLoan(id string) error {
	delete(s.loans, id)
	return nil
}

func (s *Store) countLoans(match func(*entity.Loan) bool) (int, error) {
	n := 0
	for _, l := range s.loans {
		if match(l) {
			n++
		}
	}
	return n, nil
}

func (s *Store) groupLoans(key func(*entity.Loan) string) (map[string]int, error) {
	counts := make(map[string]int)
	for _, l := range s.loans {
		counts[key(l)]++
	}
	return counts, nil
}

func (s *Store) listLoansByMember(memberCode string) ([]*entity.Loan, error) {
	var list []*entity.Loan
	for _, l := range s.loans {
		if l.MemberCode == memberCode {
			list = append(list, copyLoan(l))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].BorrowedAt.Before(list[j].BorrowedAt) })
	return list, nil
}
