package lending_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Return — flujo básico
// ──────────────────────────────────────────────────────────────────────────────

// Devolución dentro del plazo: mensaje simple, sin sanción y el ejemplar
// vuelve a estar disponible.
func TestReturn_DentroDelPlazo(t *testing.T) {
	store, uc := newLibrary(t)
	borrow(t, uc, "M001", "JK-45")

	msg, err := uc.Return(context.Background(), dto.ReturnRequest{MemberCode: "M001", BookCode: "JK-45"})
	require.NoError(t, err)
	assert.Equal(t, "book returned successfully", msg)

	m, err := store.Members().GetByCode("M001")
	require.NoError(t, err)
	assert.Nil(t, m.PenaltyExpiry, "la devolución a tiempo no sanciona")

	// El ejemplar queda libre y puede prestarse de nuevo.
	borrow(t, uc, "M002", "JK-45")
}

func TestReturn_CamposFaltantes(t *testing.T) {
	_, uc := newLibrary(t)

	_, err := uc.Return(context.Background(), dto.ReturnRequest{BookCode: "JK-45"})
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
	assert.Equal(t, "Missing required fields!", err.Error())
}

func TestReturn_SocioInexistente(t *testing.T) {
	_, uc := newLibrary(t)

	_, err := uc.Return(context.Background(), dto.ReturnRequest{MemberCode: "M999", BookCode: "JK-45"})
	require.Error(t, err)
	assert.Equal(t, "Member not found", err.Error())
}

func TestReturn_LibroInexistente(t *testing.T) {
	_, uc := newLibrary(t)

	_, err := uc.Return(context.Background(), dto.ReturnRequest{MemberCode: "M001", BookCode: "ZZ-99"})
	require.Error(t, err)
	assert.Equal(t, "Book not found", err.Error())
}

// Devolver un libro que el socio no tiene prestado.
func TestReturn_LibroNoPrestadoPorElSocio(t *testing.T) {
	_, uc := newLibrary(t)
	borrow(t, uc, "M001", "JK-45")

	_, err := uc.Return(context.Background(), dto.ReturnRequest{MemberCode: "M002", BookCode: "JK-45"})
	require.Error(t, err)
	assert.Equal(t, domain.KindPolicyViolation, domain.KindOf(err))
	assert.Equal(t, "The returned book is not a book that the member has borrowed!", err.Error())
}

func TestReturn_FechaInvalida(t *testing.T) {
	_, uc := newLibrary(t)
	borrow(t, uc, "M001", "JK-45")

	_, err := uc.Return(context.Background(), dto.ReturnRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		ReturnedDate: "not-a-date",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid date!", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Return — sanción por demora
// ──────────────────────────────────────────────────────────────────────────────

// Devolución 8 días después: sanciona 3 días y el mensaje lo informa.
func TestReturn_Tardia_AplicaSancion(t *testing.T) {
	store, uc := newLibrary(t)
	_, err := uc.Borrow(context.Background(), dto.BorrowRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		BorrowedDate: time.Now().AddDate(0, 0, -8).Format(time.RFC3339),
	})
	require.NoError(t, err)

	msg, err := uc.Return(context.Background(), dto.ReturnRequest{MemberCode: "M001", BookCode: "JK-45"})
	require.NoError(t, err)
	assert.Contains(t, msg, "book returned successfully")
	assert.Contains(t, msg, "penalized", "el mensaje debe informar la sanción")

	m, err := store.Members().GetByCode("M001")
	require.NoError(t, err)
	require.NotNil(t, m.PenaltyExpiry, "el socio debe quedar sancionado")
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), *m.PenaltyExpiry, 5*time.Second,
		"la sanción dura 3 días desde el procesamiento")

	// El socio sancionado no puede volver a pedir prestado.
	_, err = uc.Borrow(context.Background(), dto.BorrowRequest{MemberCode: "M001", BookCode: "SHR-1"})
	require.Error(t, err)
	assert.Equal(t, "Member is currently being penalized!", err.Error())
}

// Exactamente 7 días no sanciona: el umbral es estrictamente mayor.
func TestReturn_ExactamenteSieteDias_SinSancion(t *testing.T) {
	store, uc := newLibrary(t)
	borrowedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := uc.Borrow(context.Background(), dto.BorrowRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		BorrowedDate: borrowedAt.Format(time.RFC3339),
	})
	require.NoError(t, err)

	msg, err := uc.Return(context.Background(), dto.ReturnRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		ReturnedDate: borrowedAt.AddDate(0, 0, 7).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, "book returned successfully", msg)

	m, err := store.Members().GetByCode("M001")
	require.NoError(t, err)
	assert.Nil(t, m.PenaltyExpiry)
}

// Un segundo más allá de los 7 días ya sanciona.
func TestReturn_UnSegundoTarde_Sanciona(t *testing.T) {
	store, uc := newLibrary(t)
	borrowedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := uc.Borrow(context.Background(), dto.BorrowRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		BorrowedDate: borrowedAt.Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = uc.Return(context.Background(), dto.ReturnRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		ReturnedDate: borrowedAt.AddDate(0, 0, 7).Add(time.Second).Format(time.RFC3339),
	})
	require.NoError(t, err)

	m, err := store.Members().GetByCode("M001")
	require.NoError(t, err)
	assert.NotNil(t, m.PenaltyExpiry, "superar el plazo por un segundo ya sanciona")
}

// La demora se informa en días con fracción, no redondeada.
func TestReturn_MensajeConDiasFraccionarios(t *testing.T) {
	_, uc := newLibrary(t)
	borrowedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Borrow(context.Background(), dto.BorrowRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		BorrowedDate: borrowedAt.Format(time.RFC3339),
	})
	require.NoError(t, err)

	// 7 días y 12 horas de demora → 7.5 días.
	msg, err := uc.Return(context.Background(), dto.ReturnRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		ReturnedDate: borrowedAt.Add(7*24*time.Hour + 12*time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Contains(t, msg, "7.5 days", "la demora se informa con fracción")
}

// Tras devolver tarde y cumplir la sanción, el socio puede volver a pedir.
func TestReturn_SancionExpira_SocioVuelveAPedir(t *testing.T) {
	store, uc := newLibrary(t)
	_, err := uc.Borrow(context.Background(), dto.BorrowRequest{
		MemberCode:   "M001",
		BookCode:     "JK-45",
		BorrowedDate: time.Now().AddDate(0, 0, -10).Format(time.RFC3339),
	})
	require.NoError(t, err)
	_, err = uc.Return(context.Background(), dto.ReturnRequest{MemberCode: "M001", BookCode: "JK-45"})
	require.NoError(t, err)

	// Simula el paso del tiempo: la sanción queda en el pasado.
	expired := time.Now().Add(-time.Minute)
	require.NoError(t, store.Members().UpdatePenalty("M001", &expired))

	borrow(t, uc, "M001", "JK-45")
}
