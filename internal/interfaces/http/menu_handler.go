package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lunch-decider/internal/application/dto"
	"github.com/tu-usuario/lunch-decider/internal/application/usecase"
	"github.com/tu-usuario/lunch-decider/internal/domain"
	"github.com/tu-usuario/lunch-decider/pkg/upload"
)

// MenuHandler maneja las peticiones HTTP de menús diarios.
// Lecturas públicas; escrituras solo de administradores (política en el router).
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Listar menús de hoy
// @Description  La acción de listado usa la proyección de ranking: id, nombre y total de votos, en orden ascendente.
// @Tags         menus
// @Produce      json
// @Success      200  {array}  dto.RankedMenuItem
// @Router       /api/menus [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	// El mapa acción → proyección decide qué vista devuelve el listado.
	switch dto.MenuProjectionFor(dto.ActionList) {
	case dto.ProjectionRanked:
		items, err := h.uc.ListRankedToday()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(items)
	default:
		items, err := h.uc.TodayMenus()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(items)
	}
}

// GetByID GET /api/menus/:id con la proyección de detalle.
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.uc.GetDetail(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if detail == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
	}
	return c.JSON(detail)
}

// Create POST /api/menus (admin).
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return menuError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/menus/:id (admin).
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return menuError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/menus/:id (admin). Cascadea sus votos.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return menuError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AttachFile PUT /api/menus/:id/attachment (admin, multipart, campo "file").
// Acepta imagen o PDF con la carta del día.
func (h *MenuHandler) AttachFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	out, err := h.uc.AttachFile(c.Params("id"), fileHeader.Filename, f)
	if err != nil {
		return menuError(c, err)
	}
	return c.JSON(out)
}

// Today GET /api/today, todos los menús de hoy sin ranking.
func (h *MenuHandler) Today(c *fiber.Ctx) error {
	items, err := h.uc.TodayMenus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Top godoc
// @Summary      Menú ganador de hoy
// @Description  El menú de hoy con más votos (orden descendente por total).
// @Tags         menus
// @Produce      json
// @Success      200  {object}  dto.MenuDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/top [get]
func (h *MenuHandler) Top(c *fiber.Ctx) error {
	top, err := h.uc.TopToday()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if top == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hoy no hay menús"})
	}
	return c.JSON(top)
}

func menuError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurant_id y menu_items son requeridos; date en formato YYYY-MM-DD"})
	case domain.ErrDuplicateMenu:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el restaurante ya tiene menú para esa fecha"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
	case upload.ErrUnsupportedType:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FILE", Message: "tipo de archivo no soportado (.jpeg, .jpg, .png, .pdf)"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
