package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biblioteca-api/internal/application/dto"
	"github.com/jhoicas/biblioteca-api/internal/domain"
)

// Mapeo explícito tipo de error → respuesta HTTP. Única tabla de despacho:
// el NotFound de préstamo/devolución responde 400 (el flujo de negocio trata
// "no encontrado" como bad request); los 404 del CRUD son otra ruta de
// código (respondNotFoundData).
var statusByKind = map[domain.Kind]struct {
	httpStatus int
	status     string
}{
	domain.KindInvalidInput:    {fiber.StatusBadRequest, "BAD_REQUEST"},
	domain.KindNotFound:        {fiber.StatusBadRequest, "BAD_REQUEST"},
	domain.KindPolicyViolation: {fiber.StatusBadRequest, "BAD_REQUEST"},
	domain.KindInternal:        {fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
}

// respondError despacha un error de dominio según la tabla statusByKind.
func respondError(c *fiber.Ctx, err error) error {
	m := statusByKind[domain.KindOf(err)]
	return c.Status(m.httpStatus).JSON(dto.Response{
		Code:   itoa(m.httpStatus),
		Status: m.status,
		Error:  &dto.ErrorBody{Message: err.Error()},
	})
}

// respondOK responde 200 con data en la envolvente.
func respondOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{Code: "200", Status: "OK", Data: data})
}

// respondMessage responde 200 con un mensaje en la envolvente.
func respondMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{Code: "200", Status: "OK", Message: message})
}

// respondCreated responde 201 con data en la envolvente.
func respondCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Code: "201", Status: "CREATED", Data: data})
}

// respondNotFoundData responde el 404 del CRUD: recurso inexistente.
func respondNotFoundData(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Response{
		Code:   "404",
		Status: "NOT_FOUND",
		Error:  &dto.ErrorBody{Message: "Data not found!"},
	})
}

// ErrorHandler produce la envolvente para errores que llegan al framework
// (panics recuperados, rutas inexistentes). Nada se responde fuera de la
// envolvente uniforme.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}
	status := "INTERNAL_SERVER_ERROR"
	switch code {
	case fiber.StatusBadRequest:
		status = "BAD_REQUEST"
	case fiber.StatusNotFound:
		status = "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		status = "METHOD_NOT_ALLOWED"
	}
	return c.Status(code).JSON(dto.Response{
		Code:   itoa(code),
		Status: status,
		Error:  &dto.ErrorBody{Message: err.Error()},
	})
}

func itoa(code int) string {
	return strconv.Itoa(code)
}
