package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/application/usecase"
	"github.com/jhoicas/biblioteca-api/internal/domain"
)

// BookHandler maneja las peticiones HTTP del catálogo de libros.
type BookHandler struct {
	uc *usecase.BookUseCase
}

// NewBookHandler construye el handler.
func NewBookHandler(uc *usecase.BookUseCase) *BookHandler {
	return &BookHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar libros con stock disponible
// @Description  El stock de cada libro descuenta los ejemplares prestados.
// @Tags         books
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/v1/books [get]
func (h *BookHandler) GetAll(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, items)
}

// GetByCode godoc
// @Summary      Obtener un libro por código
// @Tags         books
// @Produce      json
// @Param        bookCode  path  string  true  "Código del libro"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/books/{bookCode} [get]
func (h *BookHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Params("bookCode"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFoundData(c)
	}
	return respondOK(c, out)
}

// Create godoc
// @Summary      Crear un libro
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "code, title, author, stock"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.InvalidInput("Invalid request body!"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// Update godoc
// @Summary      Actualizar un libro (identificado por code en el body)
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBookRequest  true  "code, title, author, stock"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/books [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.InvalidInput("Invalid request body!"))
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFoundData(c)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar un libro
// @Tags         books
// @Produce      json
// @Param        bookCode  path  string  true  "Código del libro"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/books/{bookCode} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	code := c.Params("bookCode")
	found, err := h.uc.Delete(code)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return respondNotFoundData(c)
	}
	return respondMessage(c, fmt.Sprintf("Delete Item with code %s success.", code))
}
