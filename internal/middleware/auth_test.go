package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/models"
)

// fakeResolver resolve tokens a partir de um mapa fixo.
type fakeResolver struct {
	contas map[string]*models.Usuario
}

func (f *fakeResolver) ResolveToken(_ context.Context, token string) (*models.Usuario, error) {
	if u, ok := f.contas[token]; ok {
		return u, nil
	}
	return nil, errors.New("token inválido")
}

func novoResolver() *fakeResolver {
	return &fakeResolver{contas: map[string]*models.Usuario{
		"token-maria": {ID: 2, Username: "maria", Ativo: true},
		"token-admin": {ID: 1, Username: "admin", IsAdmin: true, Ativo: true},
	}}
}

func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/rota", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/rota", AuthMiddleware(novoResolver(), zap.NewNop()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ator": GetAtor(c)})
	})

	t.Run("sem token devolve 401 com WWW-Authenticate", func(t *testing.T) {
		resp := doRequest(t, app, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	})

	t.Run("token desconhecido devolve 401", func(t *testing.T) {
		resp := doRequest(t, app, "token-falso")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token válido segue com o usuário no contexto", func(t *testing.T) {
		resp := doRequest(t, app, "token-maria")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/rota", OptionalAuthMiddleware(novoResolver()), func(c *fiber.Ctx) error {
		return c.SendString(GetAtor(c))
	})

	tests := []struct {
		name      string
		token     string
		wantAtor  string
		wantsCode int
	}{
		{"sem token o ator é sistema", "", models.AtorSistema, http.StatusOK},
		{"token inválido não bloqueia e mantém sistema", "token-falso", models.AtorSistema, http.StatusOK},
		{"token válido atribui o username", "token-maria", "maria", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, tt.token)
			assert.Equal(t, tt.wantsCode, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAtor, string(body))
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/rota", AuthMiddleware(novoResolver(), zap.NewNop()), AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	t.Run("conta comum devolve 403", func(t *testing.T) {
		resp := doRequest(t, app, "token-maria")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin passa", func(t *testing.T) {
		resp := doRequest(t, app, "token-admin")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("sem autenticação devolve 401", func(t *testing.T) {
		resp := doRequest(t, app, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
