package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/auth"
	"github.com/nortetel/avaliacoes-backend/internal/models"
	"github.com/nortetel/avaliacoes-backend/internal/repositories"
)

type AuthService struct {
	usuarios UsuarioStore
	log      *zap.Logger

	jwtSecret     string
	jwtExpiration time.Duration

	adminUsername string
	adminPassword string
	adminNome     string
	adminEmail    string
}

type AuthConfig struct {
	JWTSecret     string
	JWTExpiration time.Duration
	AdminUsername string
	AdminPassword string
	AdminNome     string
	AdminEmail    string
}

func NewAuthService(usuarios UsuarioStore, cfg AuthConfig, log *zap.Logger) *AuthService {
	return &AuthService{
		usuarios:      usuarios,
		log:           log,
		jwtSecret:     cfg.JWTSecret,
		jwtExpiration: cfg.JWTExpiration,
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		adminNome:     cfg.AdminNome,
		adminEmail:    cfg.AdminEmail,
	}
}

// Login valida usuário e senha e devolve o token de acesso. A resposta é
// propositalmente genérica: login desconhecido, senha errada e conta
// inativa produzem a mesma mensagem.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.usuarios.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", validation("Usuário ou senha incorretos.")
		}
		return "", err
	}
	if !u.Ativo || !auth.CheckPassword(u.SenhaHash, password) {
		return "", validation("Usuário ou senha incorretos.")
	}

	token, err := auth.GenerateJWT(s.jwtSecret, u.Username, s.jwtExpiration)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// ResolveToken converte um bearer token na conta correspondente.
// Token inválido, conta inexistente ou conta inativa resultam em 401.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.Usuario, error) {
	claims, err := auth.ParseJWT(s.jwtSecret, token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	u, err := s.usuarios.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if !u.Ativo {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// TrocarSenha troca a senha da conta autenticada, limpa o flag
// precisa_trocar_senha e registra TROCAR_SENHA tendo a própria conta como
// responsável.
func (s *AuthService) TrocarSenha(ctx context.Context, u *models.Usuario, senhaAtual, novaSenha string) error {
	if !auth.CheckPassword(u.SenhaHash, senhaAtual) {
		return validation("Senha atual incorreta.")
	}

	hash, err := auth.HashPassword(novaSenha)
	if err != nil {
		return err
	}

	detalhes := auditDetail(map[string]any{
		"acao":    models.AcaoTrocarSenha,
		"usuario": u.Username,
	})
	return s.usuarios.UpdateSenha(ctx, u.ID, hash, &u.ID, detalhes)
}

// EnsureAdmin cria a conta administrativa inicial se ela ainda não existir.
// Chamado uma vez na subida do processo; idempotente.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.usuarios.GetByUsername(ctx, s.adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(s.adminPassword)
	if err != nil {
		return err
	}

	admin := &models.Usuario{
		Nome:               s.adminNome,
		Email:              s.adminEmail,
		Username:           s.adminUsername,
		SenhaHash:          hash,
		IsAdmin:            true,
		PrecisaTrocarSenha: true,
		Ativo:              true,
	}
	if err := s.usuarios.Create(ctx, admin); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	s.log.Info("usuário admin inicial criado", zap.String("username", s.adminUsername))
	return nil
}

// auditDetail serializa o mapa como o texto de detalhes da auditoria.
func auditDetail(m map[string]any) *string {
	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}
