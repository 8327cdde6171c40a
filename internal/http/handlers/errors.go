package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/http/dto"
	"github.com/nortetel/avaliacoes-backend/internal/services"
)

// writeError mapeia os erros dos serviços para os códigos HTTP da API:
// ValidationError→400, ErrUnauthenticated→401, ErrForbidden→403,
// NotFoundError→404, resto→500.
func writeError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: ve.Msg})
	}

	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: nf.Msg})
	}

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		c.Set("WWW-Authenticate", "Bearer")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Não foi possível validar as credenciais."})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Detail: "Apenas administradores podem realizar esta ação."})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Não encontrado."})
	}

	log.Error("erro interno", zap.Error(err), zap.String("path", c.Path()))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: "Erro interno do servidor."})
}

func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: detail})
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, errors.New("id inválido")
	}
	return int64(id), nil
}
