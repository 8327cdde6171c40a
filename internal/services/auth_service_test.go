package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/auth"
	"github.com/nortetel/avaliacoes-backend/internal/models"
	"github.com/nortetel/avaliacoes-backend/internal/repositories"
)

func testAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:     "segredo-de-teste",
		JWTExpiration: 8 * time.Hour,
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminNome:     "Administrador",
		AdminEmail:    "admin@nortetel.com.br",
	}
}

func usuarioAtivo(t *testing.T, username, senha string) *models.Usuario {
	t.Helper()
	hash, err := auth.HashPassword(senha)
	require.NoError(t, err)
	return &models.Usuario{
		ID:        1,
		Nome:      "Maria Silva",
		Email:     "maria@nortetel.com.br",
		Username:  username,
		SenhaHash: hash,
		Ativo:     true,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("credenciais válidas devolvem token com sub", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "maria", "senha123")
		usuarios.On("GetByUsername", mock.Anything, "maria").Return(u, nil)

		token, err := svc.Login(ctx, "maria", "senha123")
		require.NoError(t, err)

		claims, err := auth.ParseJWT("segredo-de-teste", token)
		require.NoError(t, err)
		assert.Equal(t, "maria", claims.Subject)
		usuarios.AssertExpectations(t)
	})

	t.Run("usuário desconhecido devolve mensagem genérica", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		usuarios.On("GetByUsername", mock.Anything, "fantasma").Return(nil, repositories.ErrNotFound)

		_, err := svc.Login(ctx, "fantasma", "qualquer")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Usuário ou senha incorretos.", err.Error())
	})

	t.Run("senha errada devolve mensagem genérica", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "maria", "senha123")
		usuarios.On("GetByUsername", mock.Anything, "maria").Return(u, nil)

		_, err := svc.Login(ctx, "maria", "senha-errada")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Usuário ou senha incorretos.", err.Error())
	})

	t.Run("conta inativa devolve a mesma mensagem genérica", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "maria", "senha123")
		u.Ativo = false
		usuarios.On("GetByUsername", mock.Anything, "maria").Return(u, nil)

		_, err := svc.Login(ctx, "maria", "senha123")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Usuário ou senha incorretos.", err.Error())
	})
}

func TestResolveToken(t *testing.T) {
	ctx := context.Background()

	t.Run("token válido de conta ativa devolve o usuário", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "maria", "senha123")
		usuarios.On("GetByUsername", mock.Anything, "maria").Return(u, nil)

		token, err := auth.GenerateJWT("segredo-de-teste", "maria", time.Hour)
		require.NoError(t, err)

		resolved, err := svc.ResolveToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "maria", resolved.Username)
	})

	t.Run("token inválido devolve ErrUnauthenticated", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		_, err := svc.ResolveToken(ctx, "nao-e-um-jwt")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("conta inexistente devolve ErrUnauthenticated", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		usuarios.On("GetByUsername", mock.Anything, "maria").Return(nil, repositories.ErrNotFound)

		token, err := auth.GenerateJWT("segredo-de-teste", "maria", time.Hour)
		require.NoError(t, err)

		_, err = svc.ResolveToken(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("conta inativa devolve ErrUnauthenticated", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "maria", "senha123")
		u.Ativo = false
		usuarios.On("GetByUsername", mock.Anything, "maria").Return(u, nil)

		token, err := auth.GenerateJWT("segredo-de-teste", "maria", time.Hour)
		require.NoError(t, err)

		_, err = svc.ResolveToken(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestTrocarSenha(t *testing.T) {
	ctx := context.Background()

	t.Run("senha atual errada devolve 400 sem gravar", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "maria", "senha123")
		err := svc.TrocarSenha(ctx, u, "senha-errada", "nova-senha")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Senha atual incorreta.", err.Error())
		usuarios.AssertNotCalled(t, "UpdateSenha", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("troca grava hash novo com a própria conta como responsável", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "maria", "senha123")
		usuarios.On("UpdateSenha", mock.Anything, u.ID,
			mock.MatchedBy(func(hash string) bool {
				return auth.CheckPassword(hash, "nova-senha")
			}),
			mock.MatchedBy(func(acaoPorID *int64) bool {
				return acaoPorID != nil && *acaoPorID == u.ID
			}),
			mock.MatchedBy(func(detalhes *string) bool {
				if detalhes == nil {
					return false
				}
				var d map[string]any
				if err := json.Unmarshal([]byte(*detalhes), &d); err != nil {
					return false
				}
				return d["acao"] == models.AcaoTrocarSenha && d["usuario"] == "maria"
			}),
		).Return(nil)

		err := svc.TrocarSenha(ctx, u, "senha123", "nova-senha")
		require.NoError(t, err)
		usuarios.AssertExpectations(t)
	})
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin existente não cria nada", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		u := usuarioAtivo(t, "admin", "admin123")
		usuarios.On("GetByUsername", mock.Anything, "admin").Return(u, nil)

		require.NoError(t, svc.EnsureAdmin(ctx))
		usuarios.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("admin ausente é criado com os flags certos", func(t *testing.T) {
		usuarios := new(mockUsuarioStore)
		svc := NewAuthService(usuarios, testAuthConfig(), zap.NewNop())

		usuarios.On("GetByUsername", mock.Anything, "admin").Return(nil, repositories.ErrNotFound)
		usuarios.On("Create", mock.Anything, mock.MatchedBy(func(u *models.Usuario) bool {
			return u.Username == "admin" &&
				u.Email == "admin@nortetel.com.br" &&
				u.IsAdmin && u.Ativo && u.PrecisaTrocarSenha &&
				auth.CheckPassword(u.SenhaHash, "admin123")
		})).Return(nil)

		require.NoError(t, svc.EnsureAdmin(ctx))
		usuarios.AssertExpectations(t)
	})
}
