package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/auth"
	"github.com/nortetel/avaliacoes-backend/internal/models"
	"github.com/nortetel/avaliacoes-backend/internal/repositories"
)

const tempPasswordLen = 10

type UsuarioService struct {
	usuarios UsuarioStore
	audit    AuditStore
	log      *zap.Logger
}

func NewUsuarioService(usuarios UsuarioStore, audit AuditStore, log *zap.Logger) *UsuarioService {
	return &UsuarioService{usuarios: usuarios, audit: audit, log: log}
}

type NovoUsuario struct {
	Nome     string
	Email    string
	Username string
	Senha    string
	IsAdmin  bool
}

// Create cadastra uma nova conta. A conta nasce com precisa_trocar_senha
// ligado e a criação é auditada tendo o admin autenticado como responsável.
func (s *UsuarioService) Create(ctx context.Context, admin *models.Usuario, novo NovoUsuario) (*models.Usuario, error) {
	existe, err := s.usuarios.ExistsByUsernameOrEmail(ctx, novo.Username, novo.Email)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, validation("Já existe usuário com esse login ou e-mail.")
	}

	hash, err := auth.HashPassword(novo.Senha)
	if err != nil {
		return nil, err
	}

	u := &models.Usuario{
		Nome:               novo.Nome,
		Email:              novo.Email,
		Username:           novo.Username,
		SenhaHash:          hash,
		IsAdmin:            novo.IsAdmin,
		PrecisaTrocarSenha: true,
		Ativo:              true,
	}

	detalhes := auditDetail(map[string]any{
		"acao":     models.AcaoCriarUsuario,
		"nome":     u.Nome,
		"email":    u.Email,
		"username": u.Username,
	})
	if err := s.usuarios.CreateAudited(ctx, u, &admin.ID, detalhes); err != nil {
		return nil, err
	}

	s.log.Info("usuário criado", zap.Int64("id", u.ID), zap.String("username", u.Username))
	return u, nil
}

func (s *UsuarioService) List(ctx context.Context) ([]models.Usuario, error) {
	return s.usuarios.List(ctx)
}

// SetStatus ativa ou desativa uma conta. Um admin não pode desativar a
// própria conta autenticada.
func (s *UsuarioService) SetStatus(ctx context.Context, admin *models.Usuario, id int64, ativo bool) (*models.Usuario, error) {
	alvo, err := s.usuarios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Usuário não encontrado.")
		}
		return nil, err
	}

	if alvo.ID == admin.ID && !ativo {
		return nil, validation("Você não pode desativar o próprio usuário logado.")
	}

	acao := models.AcaoDesativarUsuario
	if ativo {
		acao = models.AcaoAtivarUsuario
	}
	detalhes := auditDetail(map[string]any{
		"acao":         acao,
		"usuario_alvo": alvo.Username,
	})

	atualizado, err := s.usuarios.SetAtivo(ctx, id, ativo, &admin.ID, acao, detalhes)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Usuário não encontrado.")
		}
		return nil, err
	}
	return atualizado, nil
}

// ResetSenha gera uma senha temporária, reativa a conta e força nova troca.
// A senha em texto é devolvida uma única vez, na resposta desta chamada.
func (s *UsuarioService) ResetSenha(ctx context.Context, admin *models.Usuario, id int64) (string, error) {
	alvo, err := s.usuarios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", notFound("Usuário não encontrado.")
		}
		return "", err
	}

	temp, err := auth.GenerateTempPassword(tempPasswordLen)
	if err != nil {
		return "", err
	}
	hash, err := auth.HashPassword(temp)
	if err != nil {
		return "", err
	}

	detalhes := auditDetail(map[string]any{
		"acao":         models.AcaoResetSenha,
		"usuario_alvo": alvo.Username,
	})
	if err := s.usuarios.ResetSenha(ctx, id, hash, &admin.ID, detalhes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", notFound("Usuário não encontrado.")
		}
		return "", err
	}

	s.log.Info("senha resetada", zap.Int64("usuario_alvo_id", id))
	return temp, nil
}

// Auditoria devolve o histórico da conta em ordem cronológica. Só responde
// 404 quando a conta não existe e não há nenhum registro.
func (s *UsuarioService) Auditoria(ctx context.Context, id int64) ([]models.UsuarioAuditoria, error) {
	events, err := s.audit.ListUsuarioEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		existe, err := s.usuarios.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !existe {
			return nil, notFound("Usuário não encontrado.")
		}
	}
	return events, nil
}
