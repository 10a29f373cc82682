package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biblioteca-api/internal/application/lending"
	"github.com/jhoicas/biblioteca-api/internal/application/usecase"
	"github.com/jhoicas/biblioteca-api/internal/infrastructure/memory"
	"github.com/jhoicas/biblioteca-api/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/biblioteca-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// envelope espejo de dto.Response con data cruda para decodificar por caso.
type envelope struct {
	Code    string          `json:"code"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// buildTestApp construye la aplicación Fiber completa sobre el almacén en
// memoria con el catálogo de ejemplo cargado.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Run(store.Books(), store.Members()))

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		BookUC:    usecase.NewBookUseCase(store.Books(), store.Loans()),
		MemberUC:  usecase.NewMemberUseCase(store.Members(), store.Loans()),
		LendingUC: lending.NewLendingUseCase(store, nil),
	})
	return app
}

// doJSON lanza una petición con body JSON y devuelve la envolvente decodificada.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type bookJSON struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}

// getBookStock consulta el stock disponible de un libro vía la API.
func getBookStock(t *testing.T, app *fiber.App, code string) int {
	t.Helper()
	status, env := doJSON(t, app, http.MethodGet, "/api/v1/books/"+code, nil)
	require.Equal(t, http.StatusOK, status)
	var b bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &b))
	return b.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ListarLibros(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/books", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "200", env.Code)
	assert.Equal(t, "OK", env.Status)

	var books []bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &books))
	assert.Len(t, books, 5, "el catálogo de ejemplo tiene 5 libros")
	for _, b := range books {
		assert.Equal(t, 1, b.Stock, "sin préstamos el stock disponible es el total")
	}
}

func TestAPI_CrearLibro(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/books", fiber.Map{
		"code": "LOTR-1", "title": "The Fellowship of the Ring", "author": "J.R.R. Tolkien", "stock": 2,
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "CREATED", env.Status)

	var b bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, "LOTR-1", b.Code)
	assert.Equal(t, 2, b.Stock)
}

func TestAPI_CrearLibro_CodigoDuplicado(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/books", fiber.Map{
		"code": "JK-45", "title": "Harry Potter", "author": "J.K Rowling", "stock": 1,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Validation error", env.Error.Message)
}

func TestAPI_CrearLibro_CamposFaltantes(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/books", fiber.Map{"code": "X-1"})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Missing required fields!", env.Error.Message)
}

func TestAPI_LibroNoEncontrado(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/books/ZZ-99", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Data not found!", env.Error.Message)
}

func TestAPI_ActualizarLibro(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodPut, "/api/v1/books", fiber.Map{
		"code": "JK-45", "stock": 4,
	})
	assert.Equal(t, http.StatusOK, status)
	var b bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, 4, b.Stock)
	assert.Equal(t, "Harry Potter", b.Title, "los campos no enviados se conservan")
}

func TestAPI_EliminarLibro(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodDelete, "/api/v1/books/NRN-7", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Delete Item with code NRN-7 success.", env.Message)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/books/NRN-7", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests socios
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ListarSocios(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/members", nil)
	assert.Equal(t, http.StatusOK, status)

	var members []struct {
		Code               string `json:"code"`
		Name               string `json:"name"`
		BorrowedBooksCount int    `json:"borrowedBooksCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 3)
	assert.Equal(t, "M001", members[0].Code)
	assert.Equal(t, "Angga", members[0].Name)
	assert.Equal(t, 0, members[0].BorrowedBooksCount)
}

func TestAPI_DetalleDeSocio_ConPrestamos(t *testing.T) {
	app := buildTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/borrow", fiber.Map{
		"memberCode": "M001", "bookCode": "JK-45", "borrowedDate": "2024-01-01",
	})
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/borrow", fiber.Map{
		"memberCode": "M001", "bookCode": "SHR-1", "borrowedDate": "2024-01-02",
	})
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/members/M001", nil)
	assert.Equal(t, http.StatusOK, status)

	var detail struct {
		Code               string `json:"code"`
		BorrowedBooksCount int    `json:"borrowedBooksCount"`
		BorrowedBooks      []struct {
			BookCode string `json:"bookCode"`
		} `json:"borrowedBooks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, 2, detail.BorrowedBooksCount)
	require.Len(t, detail.BorrowedBooks, 2)
	assert.Equal(t, "JK-45", detail.BorrowedBooks[0].BookCode, "los préstamos se listan por fecha")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests préstamo y devolución (flujo completo)
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FlujoPrestamoYDevolucion(t *testing.T) {
	app := buildTestApp(t)

	// M001 toma el único ejemplar de JK-45.
	status, env := doJSON(t, app, http.MethodPost, "/api/v1/borrow", fiber.Map{
		"memberCode": "M001", "bookCode": "JK-45",
	})
	assert.Equal(t, http.StatusOK, status)
	var loan struct {
		ID         string `json:"id"`
		MemberCode string `json:"memberCode"`
		BookCode   string `json:"bookCode"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loan))
	assert.NotEmpty(t, loan.ID)
	assert.Equal(t, "M001", loan.MemberCode)
	assert.Equal(t, "JK-45", loan.BookCode)

	// El stock disponible baja a 0; el total almacenado no se toca.
	assert.Equal(t, 0, getBookStock(t, app, "JK-45"))

	// M002 intenta el mismo ejemplar: rechazado.
	status, env = doJSON(t, app, http.MethodPost, "/api/v1/borrow", fiber.Map{
		"memberCode": "M002", "bookCode": "JK-45",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Book is borrowed by other members!", env.Error.Message)

	// M001 devuelve; el ejemplar queda disponible de nuevo.
	status, env = doJSON(t, app, http.MethodPost, "/api/v1/return", fiber.Map{
		"memberCode": "M001", "bookCode": "JK-45",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "book returned successfully", env.Message)
	assert.Equal(t, 1, getBookStock(t, app, "JK-45"))

	// Ahora M002 sí puede llevárselo.
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/borrow", fiber.Map{
		"memberCode": "M002", "bookCode": "JK-45",
	})
	assert.Equal(t, http.StatusOK, status)
}

// El "no encontrado" del flujo de préstamo responde 400, no 404.
func TestAPI_Prestamo_SocioInexistente_Responde400(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/borrow", fiber.Map{
		"memberCode": "M999", "bookCode": "JK-45",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Member not found", env.Error.Message)
}

func TestAPI_Devolucion_LibroNoPrestado(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/return", fiber.Map{
		"memberCode": "M001", "bookCode": "JK-45",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "The returned book is not a book that the member has borrowed!", env.Error.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests envolvente y errores del framework
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_BodyMalformado(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/borrow", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid request body!", env.Error.Message)
}

func TestAPI_RutaInexistente_EnvolventeUniforme(t *testing.T) {
	app := buildTestApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "404", env.Code)
	assert.Equal(t, "NOT_FOUND", env.Status)
	require.NotNil(t, env.Error)
}
