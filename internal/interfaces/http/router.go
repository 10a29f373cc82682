package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biblioteca-api/internal/application/lending"
	"github.com/jhoicas/biblioteca-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BookUC    *usecase.BookUseCase
	MemberUC  *usecase.MemberUseCase
	LendingUC *lending.LendingUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Catálogo de libros
	bookHandler := NewBookHandler(deps.BookUC)
	api.Get("/books", bookHandler.GetAll)
	api.Get("/books/:bookCode", bookHandler.GetByCode)
	api.Post("/books", bookHandler.Create)
	api.Put("/books", bookHandler.Update)
	api.Delete("/books/:bookCode", bookHandler.Delete)

	// Socios
	memberHandler := NewMemberHandler(deps.MemberUC)
	api.Get("/members", memberHandler.GetAll)
	api.Get("/members/:memberCode", memberHandler.GetByCode)
	api.Post("/members", memberHandler.Create)
	api.Put("/members", memberHandler.Update)
	api.Delete("/members/:memberCode", memberHandler.Delete)

	// Préstamo y devolución
	lendingHandler := NewLendingHandler(deps.LendingUC)
	api.Post("/borrow", lendingHandler.Borrow)
	api.Post("/return", lendingHandler.Return)
}
