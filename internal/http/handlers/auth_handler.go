package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/http/dto"
	"github.com/nortetel/avaliacoes-backend/internal/middleware"
	"github.com/nortetel/avaliacoes-backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Login recebe username e password em formulário (padrão OAuth2 password)
// e devolve o bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return badRequest(c, "username e password são obrigatórios")
	}

	token, err := h.auth.Login(c.Context(), username, password)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.GetUsuario(c))
}

func (h *AuthHandler) TrocarSenha(c *fiber.Ctx) error {
	var req dto.TrocarSenhaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "JSON inválido")
	}
	if req.SenhaAtual == "" || req.NovaSenha == "" {
		return badRequest(c, "senha_atual e nova_senha são obrigatórias")
	}

	u := middleware.GetUsuario(c)
	if err := h.auth.TrocarSenha(c.Context(), u, req.SenhaAtual, req.NovaSenha); err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.MessageResponse{Detail: "Senha alterada com sucesso."})
}
