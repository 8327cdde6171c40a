package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/models"
)

const (
	CtxUsuario = "usuario"
	CtxAtor    = "ator"
)

// TokenResolver converte um bearer token na conta ativa correspondente.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*models.Usuario, error)
}

// AuthMiddleware exige um bearer token válido de uma conta ativa.
func AuthMiddleware(resolver TokenResolver, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := bearerToken(c)
		if !ok {
			return credError(c)
		}

		u, err := resolver.ResolveToken(c.Context(), tokenStr)
		if err != nil {
			log.Debug("token rejeitado", zap.Error(err))
			return credError(c)
		}

		c.Locals(CtxUsuario, u)
		c.Locals(CtxAtor, u.Username)
		return c.Next()
	}
}

// OptionalAuthMiddleware resolve o token quando presente e válido; caso
// contrário segue com o ator "sistema". Nunca bloqueia a requisição.
func OptionalAuthMiddleware(resolver TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(CtxAtor, models.AtorSistema)

		if tokenStr, ok := bearerToken(c); ok {
			if u, err := resolver.ResolveToken(c.Context(), tokenStr); err == nil {
				c.Locals(CtxUsuario, u)
				c.Locals(CtxAtor, u.Username)
			}
		}
		return c.Next()
	}
}

// AdminMiddleware exige que a conta autenticada seja administradora.
// Deve vir depois de AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetUsuario(c)
		if u == nil {
			return credError(c)
		}
		if !u.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"detail": "Apenas administradores podem realizar esta ação.",
			})
		}
		return c.Next()
	}
}

func GetUsuario(c *fiber.Ctx) *models.Usuario {
	u, _ := c.Locals(CtxUsuario).(*models.Usuario)
	return u
}

// GetAtor devolve o rótulo de ator para auditoria: o username autenticado
// ou "sistema".
func GetAtor(c *fiber.Ctx) string {
	if ator, ok := c.Locals(CtxAtor).(string); ok && ator != "" {
		return ator
	}
	return models.AtorSistema
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	if header == "" {
		return "", false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == header || tokenStr == "" {
		return "", false
	}
	return tokenStr, true
}

func credError(c *fiber.Ctx) error {
	c.Set("WWW-Authenticate", "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"detail": "Não foi possível validar as credenciais.",
	})
}
