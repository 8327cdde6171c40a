package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nortetel/avaliacoes-backend/internal/models"
)

type mockUsuarioStore struct {
	mock.Mock
}

func (m *mockUsuarioStore) Create(ctx context.Context, u *models.Usuario) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUsuarioStore) CreateAudited(ctx context.Context, u *models.Usuario, acaoPorID *int64, detalhes *string) error {
	args := m.Called(ctx, u, acaoPorID, detalhes)
	return args.Error(0)
}

func (m *mockUsuarioStore) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioStore) GetByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*models.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsuarioStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsuarioStore) List(ctx context.Context) ([]models.Usuario, error) {
	args := m.Called(ctx)
	if us, ok := args.Get(0).([]models.Usuario); ok {
		return us, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioStore) SetAtivo(ctx context.Context, id int64, ativo bool, acaoPorID *int64, acao string, detalhes *string) (*models.Usuario, error) {
	args := m.Called(ctx, id, ativo, acaoPorID, acao, detalhes)
	if u, ok := args.Get(0).(*models.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioStore) UpdateSenha(ctx context.Context, id int64, senhaHash string, acaoPorID *int64, detalhes *string) error {
	args := m.Called(ctx, id, senhaHash, acaoPorID, detalhes)
	return args.Error(0)
}

func (m *mockUsuarioStore) ResetSenha(ctx context.Context, id int64, senhaHash string, acaoPorID *int64, detalhes *string) error {
	args := m.Called(ctx, id, senhaHash, acaoPorID, detalhes)
	return args.Error(0)
}

type mockAvaliacaoStore struct {
	mock.Mock
}

func (m *mockAvaliacaoStore) Create(ctx context.Context, av *models.Avaliacao, usuario string, detalhes *string) error {
	args := m.Called(ctx, av, usuario, detalhes)
	return args.Error(0)
}

func (m *mockAvaliacaoStore) GetByID(ctx context.Context, id int64) (*models.Avaliacao, error) {
	args := m.Called(ctx, id)
	if av, ok := args.Get(0).(*models.Avaliacao); ok {
		return av, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvaliacaoStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAvaliacaoStore) List(ctx context.Context, skip, limit int) ([]models.Avaliacao, error) {
	args := m.Called(ctx, skip, limit)
	if avs, ok := args.Get(0).([]models.Avaliacao); ok {
		return avs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvaliacaoStore) Update(ctx context.Context, av *models.Avaliacao, usuario string, detalhes *string) error {
	args := m.Called(ctx, av, usuario, detalhes)
	return args.Error(0)
}

func (m *mockAvaliacaoStore) AddEquipamento(ctx context.Context, e *models.Equipamento, usuario string, detalhes *string) error {
	args := m.Called(ctx, e, usuario, detalhes)
	return args.Error(0)
}

func (m *mockAvaliacaoStore) GetEquipamento(ctx context.Context, id int64) (*models.Equipamento, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*models.Equipamento); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvaliacaoStore) ListEquipamentos(ctx context.Context, avaliacaoID int64) ([]models.Equipamento, error) {
	args := m.Called(ctx, avaliacaoID)
	if es, ok := args.Get(0).([]models.Equipamento); ok {
		return es, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvaliacaoStore) RemoveEquipamento(ctx context.Context, id, avaliacaoID int64, usuario string, detalhes *string) error {
	args := m.Called(ctx, id, avaliacaoID, usuario, detalhes)
	return args.Error(0)
}

func (m *mockAvaliacaoStore) AddRecurso(ctx context.Context, rec *models.OutroRecurso, usuario string, detalhes *string) error {
	args := m.Called(ctx, rec, usuario, detalhes)
	return args.Error(0)
}

func (m *mockAvaliacaoStore) GetRecurso(ctx context.Context, id int64) (*models.OutroRecurso, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*models.OutroRecurso); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvaliacaoStore) ListRecursos(ctx context.Context, avaliacaoID int64) ([]models.OutroRecurso, error) {
	args := m.Called(ctx, avaliacaoID)
	if recs, ok := args.Get(0).([]models.OutroRecurso); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvaliacaoStore) RemoveRecurso(ctx context.Context, id, avaliacaoID int64, usuario string, detalhes *string) error {
	args := m.Called(ctx, id, avaliacaoID, usuario, detalhes)
	return args.Error(0)
}

type mockAuditStore struct {
	mock.Mock
}

func (m *mockAuditStore) ListAvaliacaoEvents(ctx context.Context, avaliacaoID int64) ([]models.AvaliacaoAuditoria, error) {
	args := m.Called(ctx, avaliacaoID)
	if events, ok := args.Get(0).([]models.AvaliacaoAuditoria); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuditStore) ListUsuarioEvents(ctx context.Context, usuarioID int64) ([]models.UsuarioAuditoria, error) {
	args := m.Called(ctx, usuarioID)
	if events, ok := args.Get(0).([]models.UsuarioAuditoria); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}
