package services

import (
	"context"

	"github.com/nortetel/avaliacoes-backend/internal/models"
)

// Interfaces de persistência consumidas pelos serviços. Implementadas pelos
// repositórios pgx; nos testes, por mocks.

type UsuarioStore interface {
	Create(ctx context.Context, u *models.Usuario) error
	CreateAudited(ctx context.Context, u *models.Usuario, acaoPorID *int64, detalhes *string) error
	GetByID(ctx context.Context, id int64) (*models.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*models.Usuario, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]models.Usuario, error)
	SetAtivo(ctx context.Context, id int64, ativo bool, acaoPorID *int64, acao string, detalhes *string) (*models.Usuario, error)
	UpdateSenha(ctx context.Context, id int64, senhaHash string, acaoPorID *int64, detalhes *string) error
	ResetSenha(ctx context.Context, id int64, senhaHash string, acaoPorID *int64, detalhes *string) error
}

type AvaliacaoStore interface {
	Create(ctx context.Context, av *models.Avaliacao, usuario string, detalhes *string) error
	GetByID(ctx context.Context, id int64) (*models.Avaliacao, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, skip, limit int) ([]models.Avaliacao, error)
	Update(ctx context.Context, av *models.Avaliacao, usuario string, detalhes *string) error

	AddEquipamento(ctx context.Context, e *models.Equipamento, usuario string, detalhes *string) error
	GetEquipamento(ctx context.Context, id int64) (*models.Equipamento, error)
	ListEquipamentos(ctx context.Context, avaliacaoID int64) ([]models.Equipamento, error)
	RemoveEquipamento(ctx context.Context, id, avaliacaoID int64, usuario string, detalhes *string) error

	AddRecurso(ctx context.Context, rec *models.OutroRecurso, usuario string, detalhes *string) error
	GetRecurso(ctx context.Context, id int64) (*models.OutroRecurso, error)
	ListRecursos(ctx context.Context, avaliacaoID int64) ([]models.OutroRecurso, error)
	RemoveRecurso(ctx context.Context, id, avaliacaoID int64, usuario string, detalhes *string) error
}

type AuditStore interface {
	ListAvaliacaoEvents(ctx context.Context, avaliacaoID int64) ([]models.AvaliacaoAuditoria, error)
	ListUsuarioEvents(ctx context.Context, usuarioID int64) ([]models.UsuarioAuditoria, error)
}
