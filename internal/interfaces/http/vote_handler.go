package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lunch-decider/internal/application/dto"
	"github.com/tu-usuario/lunch-decider/internal/application/voting"
	"github.com/tu-usuario/lunch-decider/internal/domain"
)

// VoteHandler maneja el registro de votos. Requiere autenticación estricta.
type VoteHandler struct {
	uc *voting.VoteUseCase
}

// NewVoteHandler construye el handler de votos.
func NewVoteHandler(uc *voting.VoteUseCase) *VoteHandler {
	return &VoteHandler{uc: uc}
}

// Cast godoc
// @Summary      Votar por un menú de hoy
// @Description  La versión de la política se negocia en el header Accept con el parámetro version ("1.0" o "2.0"); cualquier otro valor usa "2.0".
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        Accept  header  string  false  "application/json; version=1.0"
// @Param        body    body    dto.CastVoteRequest  true  "menu_id"
// @Success      201  {object}  dto.VoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/votes [post]
func (h *VoteHandler) Cast(c *fiber.Ctx) error {
	var in dto.CastVoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	version := acceptPolicyVersion(c.Get(fiber.HeaderAccept))
	out, err := h.uc.CastVote(c.Context(), GetUserID(c), in.MenuID, version)
	if err != nil {
		return voteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// acceptPolicyVersion extrae el parámetro version del header Accept.
// Ejemplo: "application/json; version=1.0". Ausente o desconocido usa la
// versión por defecto.
func acceptPolicyVersion(accept string) voting.PolicyVersion {
	for _, part := range strings.Split(accept, ";") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, "version="); ok {
			return voting.ParsePolicyVersion(strings.TrimSpace(v))
		}
	}
	return voting.DefaultPolicyVersion
}

func voteError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "menu_id es requerido"})
	case domain.ErrNoEmployeeProfile:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_PROFILE", Message: "necesitas un perfil de empleado para votar"})
	case domain.ErrMenuNotToday:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MENU_NOT_TODAY", Message: "solo se puede votar por menús de hoy"})
	case domain.ErrAlreadyVoted:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_VOTED", Message: "ya votaste por este menú"})
	case domain.ErrVoteLimitReached:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VOTE_LIMIT", Message: "alcanzaste el límite de votos para este menú"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
