package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lunch-decider/internal/application/dto"
	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
)

// Políticas de acceso componibles por ruta. Cada política deja pasar las
// operaciones seguras (lecturas) y restringe las de escritura; una ruta con
// varias políticas exige que todas pasen antes de tocar estado. Deben usarse
// DESPUÉS de OptionalAuthMiddleware (leen los locals del token).

// isSafeMethod métodos sin efectos: siempre permitidos por las políticas *-or-read-only.
func isSafeMethod(method string) bool {
	switch method {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		return true
	}
	return false
}

// AuthenticatedOrReadOnly lecturas para cualquiera; escrituras solo autenticado.
func AuthenticatedOrReadOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isSafeMethod(c.Method()) {
			return c.Next()
		}
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "autenticación requerida para escribir",
			})
		}
		return c.Next()
	}
}

// AdminOrReadOnly lecturas para cualquiera; escrituras solo administradores.
func AdminOrReadOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isSafeMethod(c.Method()) {
			return c.Next()
		}
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "solo administradores pueden modificar este recurso",
			})
		}
		return c.Next()
	}
}
