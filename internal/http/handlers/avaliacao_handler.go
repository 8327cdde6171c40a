package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/http/dto"
	"github.com/nortetel/avaliacoes-backend/internal/middleware"
	"github.com/nortetel/avaliacoes-backend/internal/models"
	"github.com/nortetel/avaliacoes-backend/internal/services"
)

type AvaliacaoHandler struct {
	avaliacoes *services.AvaliacaoService
	log        *zap.Logger
}

func NewAvaliacaoHandler(avaliacoes *services.AvaliacaoService, log *zap.Logger) *AvaliacaoHandler {
	return &AvaliacaoHandler{avaliacoes: avaliacoes, log: log}
}

func (h *AvaliacaoHandler) Create(c *fiber.Ctx) error {
	var patch models.AvaliacaoPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "JSON inválido")
	}

	av, err := h.avaliacoes.Create(c.Context(), middleware.GetAtor(c), &patch)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(av)
}

func (h *AvaliacaoHandler) List(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	avaliacoes, err := h.avaliacoes.List(c.Context(), skip, limit)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if avaliacoes == nil {
		avaliacoes = []models.Avaliacao{}
	}
	return c.JSON(avaliacoes)
}

func (h *AvaliacaoHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	av, err := h.avaliacoes.Get(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(av)
}

func (h *AvaliacaoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var patch models.AvaliacaoPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "JSON inválido")
	}

	av, err := h.avaliacoes.Update(c.Context(), middleware.GetAtor(c), id, &patch)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(av)
}

func (h *AvaliacaoHandler) Auditoria(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	events, err := h.avaliacoes.Auditoria(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if events == nil {
		events = []models.AvaliacaoAuditoria{}
	}
	return c.JSON(events)
}

// --- Equipamentos ---

func (h *AvaliacaoHandler) AddEquipamento(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.EquipamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "JSON inválido")
	}

	e, err := h.avaliacoes.AddEquipamento(c.Context(), middleware.GetAtor(c), id, services.NovoEquipamento{
		Equipamento: req.Equipamento,
		Modelo:      req.Modelo,
		Quantidade:  req.Quantidade,
		Fabricante:  req.Fabricante,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(e)
}

func (h *AvaliacaoHandler) ListEquipamentos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	equipamentos, err := h.avaliacoes.ListEquipamentos(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if equipamentos == nil {
		equipamentos = []models.Equipamento{}
	}
	return c.JSON(equipamentos)
}

func (h *AvaliacaoHandler) RemoveEquipamento(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.avaliacoes.RemoveEquipamento(c.Context(), middleware.GetAtor(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Detail: "Equipamento removido com sucesso"})
}

// --- Outros recursos ---

func (h *AvaliacaoHandler) AddRecurso(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.OutroRecursoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "JSON inválido")
	}

	rec, err := h.avaliacoes.AddRecurso(c.Context(), middleware.GetAtor(c), id, services.NovoRecurso{
		Descricao:  req.Descricao,
		Quantidade: req.Quantidade,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(rec)
}

func (h *AvaliacaoHandler) ListRecursos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	recursos, err := h.avaliacoes.ListRecursos(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if recursos == nil {
		recursos = []models.OutroRecurso{}
	}
	return c.JSON(recursos)
}

func (h *AvaliacaoHandler) RemoveRecurso(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.avaliacoes.RemoveRecurso(c.Context(), middleware.GetAtor(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Detail: "Recurso removido com sucesso"})
}
