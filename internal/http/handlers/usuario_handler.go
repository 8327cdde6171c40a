package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/http/dto"
	"github.com/nortetel/avaliacoes-backend/internal/middleware"
	"github.com/nortetel/avaliacoes-backend/internal/models"
	"github.com/nortetel/avaliacoes-backend/internal/services"
)

type UsuarioHandler struct {
	usuarios *services.UsuarioService
	log      *zap.Logger
}

func NewUsuarioHandler(usuarios *services.UsuarioService, log *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{usuarios: usuarios, log: log}
}

func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "JSON inválido")
	}
	if req.Nome == "" || req.Email == "" || req.Username == "" || req.Senha == "" {
		return badRequest(c, "nome, email, username e senha são obrigatórios")
	}

	admin := middleware.GetUsuario(c)
	u, err := h.usuarios.Create(c.Context(), admin, services.NovoUsuario{
		Nome:     req.Nome,
		Email:    req.Email,
		Username: req.Username,
		Senha:    req.Senha,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(u)
}

func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.usuarios.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	if usuarios == nil {
		usuarios = []models.Usuario{}
	}
	return c.JSON(usuarios)
}

func (h *UsuarioHandler) SetStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UsuarioStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "JSON inválido")
	}
	if req.Ativo == nil {
		return badRequest(c, "ativo é obrigatório")
	}

	admin := middleware.GetUsuario(c)
	u, err := h.usuarios.SetStatus(c.Context(), admin, id, *req.Ativo)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(u)
}

func (h *UsuarioHandler) ResetSenha(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	admin := middleware.GetUsuario(c)
	temp, err := h.usuarios.ResetSenha(c.Context(), admin, id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ResetSenhaResponse{
		Detail:          "Senha temporária gerada com sucesso.",
		SenhaTemporaria: temp,
	})
}

func (h *UsuarioHandler) Auditoria(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	events, err := h.usuarios.Auditoria(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if events == nil {
		events = []models.UsuarioAuditoria{}
	}
	return c.JSON(events)
}
