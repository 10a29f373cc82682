package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/application/lending"
	"github.com/jhoicas/biblioteca-api/internal/domain"
)

// LendingHandler maneja las peticiones HTTP de préstamo y devolución.
type LendingHandler struct {
	uc *lending.LendingUseCase
}

// NewLendingHandler construye el handler.
func NewLendingHandler(uc *lending.LendingUseCase) *LendingHandler {
	return &LendingHandler{uc: uc}
}

// Borrow godoc
// @Summary      Prestar un libro a un socio
// @Tags         borrow
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BorrowRequest  true  "memberCode, bookCode, borrowedDate (opcional)"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /api/v1/borrow [post]
func (h *LendingHandler) Borrow(c *fiber.Ctx) error {
	var in dto.BorrowRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.InvalidInput("Invalid request body!"))
	}
	out, err := h.uc.Borrow(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Return godoc
// @Summary      Devolver un libro prestado
// @Tags         borrow
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnRequest  true  "memberCode, bookCode, returnedDate (opcional)"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /api/v1/return [post]
func (h *LendingHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.InvalidInput("Invalid request body!"))
	}
	message, err := h.uc.Return(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, message)
}
