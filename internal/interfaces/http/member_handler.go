package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/application/usecase"
	"github.com/jhoicas/biblioteca-api/internal/domain"
)

// MemberHandler maneja las peticiones HTTP de socios.
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar socios con su cantidad de libros prestados
// @Tags         members
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/v1/members [get]
func (h *MemberHandler) GetAll(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, items)
}

// GetByCode godoc
// @Summary      Obtener un socio con el detalle de sus préstamos
// @Tags         members
// @Produce      json
// @Param        memberCode  path  string  true  "Código del socio"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/members/{memberCode} [get]
func (h *MemberHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Params("memberCode"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFoundData(c)
	}
	return respondOK(c, out)
}

// Create godoc
// @Summary      Crear un socio
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMemberRequest  true  "code, name"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/v1/members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMemberRequest
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
// @Summary      Actualizar un socio (identificado por code en el body)
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateMemberRequest  true  "code, name"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/members [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMemberRequest
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
// @Summary      Eliminar un socio
// @Tags         members
// @Produce      json
// @Param        memberCode  path  string  true  "Código del socio"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/members/{memberCode} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	code := c.Params("memberCode")
	found, err := h.uc.Delete(code)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return respondNotFoundData(c)
	}
	return respondMessage(c, fmt.Sprintf("Delete Item with id %s success.", code))
}
