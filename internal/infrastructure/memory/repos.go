package memory

import (
	"time"

	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
)

// Vistas tx*: operan sin tomar el lock; solo se entregan dentro de Run, que
// ya lo sostiene. GetForUpdate equivale a Get porque el lock de escritor
// único ya excluye a todo otro escritor.

var (
	_ repository.BookRepository   = txBooks{}
	_ repository.MemberRepository = txMembers{}
	_ repository.LoanRepository   = txLoans{}
)

type txBooks struct{ s *Store }

func (v txBooks) Create(b *entity.Book) error                 { return v.s.createBook(b) }
func (v txBooks) GetByCode(code string) (*entity.Book, error) { return v.s.getBook(code) }
func (v txBooks) GetForUpdate(code string) (*entity.Book, error) {
	return v.s.getBook(code)
}
func (v txBooks) List() ([]*entity.Book, error) { return v.s.listBooks() }
func (v txBooks) Update(b *entity.Book) error   { return v.s.updateBook(b) }
func (v txBooks) Delete(code string) error      { return v.s.deleteBook(code) }

type txMembers struct{ s *Store }

func (v txMembers) Create(m *entity.Member) error                 { return v.s.createMember(m) }
func (v txMembers) GetByCode(code string) (*entity.Member, error) { return v.s.getMember(code) }
func (v txMembers) GetForUpdate(code string) (*entity.Member, error) {
	return v.s.getMember(code)
}
func (v txMembers) List() ([]*entity.Member, error) { return v.s.listMembers() }
func (v txMembers) Update(m *entity.Member) error   { return v.s.updateMember(m) }
func (v txMembers) UpdatePenalty(code string, expiry *time.Time) error {
	return v.s.updatePenalty(code, expiry)
}
func (v txMembers) Delete(code string) error { return v.s.deleteMember(code) }

type txLoans struct{ s *Store }

func (v txLoans) Create(l *entity.Loan) error { return v.s.createLoan(l) }
func (v txLoans) Find(memberCode, bookCode string) (*entity.Loan, error) {
	return v.s.findLoan(memberCode, bookCode)
}
func (v txLoans) Delete(id string) error { return v.s.deleteLoan(id) }
func (v txLoans) CountByMember(memberCode string) (int, error) {
	return v.s.countLoans(func(l *entity.Loan) bool { return l.MemberCode == memberCode })
}
func (v txLoans) CountByBook(bookCode string) (int, error) {
	return v.s.countLoans(func(l *entity.Loan) bool { return l.BookCode == bookCode })
}
func (v txLoans) CountsByBook() (map[string]int, error) {
	return v.s.groupLoans(func(l *entity.Loan) string { return l.BookCode })
}
func (v txLoans) CountsByMember() (map[string]int, error) {
	return v.s.groupLoans(func(l *entity.Loan) string { return l.MemberCode })
}
func (v txLoans) ListByMember(memberCode string) ([]*entity.Loan, error) {
	return v.s.listLoansByMember(memberCode)
}

// Vistas locked*: para uso fuera de Run (CRUD y listados); toman el lock en
// cada operación.

var (
	_ repository.BookRepository   = lockedBooks{}
	_ repository.MemberRepository = lockedMembers{}
	_ repository.LoanRepository   = lockedLoans{}
)

type lockedBooks struct{ s *Store }

func (v lockedBooks) Create(b *entity.Book) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.createBook(b)
}

func (v lockedBooks) GetByCode(code string) (*entity.Book, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.getBook(code)
}

func (v lockedBooks) GetForUpdate(code string) (*entity.Book, error) {
	return v.GetByCode(code)
}

func (v lockedBooks) List() ([]*entity.Book, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.listBooks()
}

func (v lockedBooks) Update(b *entity.Book) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.updateBook(b)
}

func (v lockedBooks) Delete(code string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.deleteBook(code)
}

type lockedMembers struct{ s *Store }

func (v lockedMembers) Create(m *entity.Member) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.createMember(m)
}

func (v lockedMembers) GetByCode(code string) (*entity.Member, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.getMember(code)
}

func (v lockedMembers) GetForUpdate(code string) (*entity.Member, error) {
	return v.GetByCode(code)
}

func (v lockedMembers) List() ([]*entity.Member, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.listMembers()
}

func (v lockedMembers) Update(m *entity.Member) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.updateMember(m)
}

func (v lockedMembers) UpdatePenalty(code string, expiry *time.Time) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.updatePenalty(code, expiry)
}

func (v lockedMembers) Delete(code string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.deleteMember(code)
}

type lockedLoans struct{ s *Store }

func (v lockedLoans) Create(l *entity.Loan) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.createLoan(l)
}

func (v lockedLoans) Find(memberCode, bookCode string) (*entity.Loan, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.findLoan(memberCode, bookCode)
}

func (v lockedLoans) Delete(id string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.deleteLoan(id)
}

func (v lockedLoans) CountByMember(memberCode string) (int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.countLoans(func(l *entity.Loan) bool { return l.MemberCode == memberCode })
}

func (v lockedLoans) CountByBook(bookCode string) (int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.countLoans(func(l *entity.Loan) bool { return l.BookCode == bookCode })
}

func (v lockedLoans) CountsByBook() (map[string]int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.groupLoans(func(l *entity.Loan) string { return l.BookCode })
}

func (v lockedLoans) CountsByMember() (map[string]int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.groupLoans(func(l *entity.Loan) string { return l.MemberCode })
}

func (v lockedLoans) ListByMember(memberCode string) ([]*entity.Loan, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return v.s.listLoansByMember(memberCode)
}
