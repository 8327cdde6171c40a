package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/models"
	"github.com/nortetel/avaliacoes-backend/internal/repositories"
)

const (
	defaultListLimit = 100

	msgAvaliacaoNaoEncontrada   = "Avaliação não encontrada"
	msgEquipamentoNaoEncontrado = "Equipamento não encontrado"
	msgRecursoNaoEncontrado     = "Recurso não encontrado"
	msgDataInvalida             = "data_avaliacao deve estar no formato YYYY-MM-DD"
	msgNenhumaAlteracao         = "Atualização chamada, mas nenhum campo foi alterado."
)

type AvaliacaoService struct {
	avaliacoes AvaliacaoStore
	audit      AuditStore
	log        *zap.Logger
}

func NewAvaliacaoService(avaliacoes AvaliacaoStore, audit AuditStore, log *zap.Logger) *AvaliacaoService {
	return &AvaliacaoService{avaliacoes: avaliacoes, audit: audit, log: log}
}

// Create monta a avaliação a partir do payload e grava junto com o evento
// CRIAR. ator é o username autenticado, ou "sistema" sem token.
func (s *AvaliacaoService) Create(ctx context.Context, ator string, patch *models.AvaliacaoPatch) (*models.Avaliacao, error) {
	if patch.ClienteNome == nil || *patch.ClienteNome == "" {
		return nil, validation("cliente_nome é obrigatório")
	}
	if patch.DataAvaliacao == nil || *patch.DataAvaliacao == "" {
		return nil, validation("data_avaliacao é obrigatória")
	}

	av := &models.Avaliacao{Status: models.StatusAberto}
	if _, err := patch.Apply(av); err != nil {
		return nil, validation(msgDataInvalida)
	}

	detalhes := "Avaliação criada via API"
	if err := s.avaliacoes.Create(ctx, av, ator, &detalhes); err != nil {
		return nil, err
	}

	s.log.Info("avaliação criada", zap.Int64("id", av.ID), zap.String("cliente", av.ClienteNome))
	return av, nil
}

func (s *AvaliacaoService) Get(ctx context.Context, id int64) (*models.Avaliacao, error) {
	av, err := s.avaliacoes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound(msgAvaliacaoNaoEncontrada)
		}
		return nil, err
	}
	return av, nil
}

func (s *AvaliacaoService) List(ctx context.Context, skip, limit int) ([]models.Avaliacao, error) {
	if skip < 0 || limit < 0 {
		return nil, validation("skip e limit devem ser maiores ou iguais a zero")
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	return s.avaliacoes.List(ctx, skip, limit)
}

// Update aplica a atualização parcial e grava o evento EDITAR com o diff
// campo a campo. Mesmo sem alterações a escrita acontece e o evento é
// registrado com um detalhe de "nenhum campo alterado".
func (s *AvaliacaoService) Update(ctx context.Context, ator string, id int64, patch *models.AvaliacaoPatch) (*models.Avaliacao, error) {
	av, err := s.avaliacoes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound(msgAvaliacaoNaoEncontrada)
		}
		return nil, err
	}

	alteracoes, err := patch.Apply(av)
	if err != nil {
		return nil, validation(msgDataInvalida)
	}

	var detalhes *string
	if len(alteracoes) == 0 {
		msg := msgNenhumaAlteracao
		detalhes = &msg
	} else {
		detalhes = auditDetail(map[string]any{"alteracoes": alteracoes})
	}

	if err := s.avaliacoes.Update(ctx, av, ator, detalhes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound(msgAvaliacaoNaoEncontrada)
		}
		return nil, err
	}
	return av, nil
}

// Auditoria lista o trilho da avaliação em ordem cronológica. Só responde
// 404 quando a avaliação não existe e não há nenhum registro.
func (s *AvaliacaoService) Auditoria(ctx context.Context, id int64) ([]models.AvaliacaoAuditoria, error) {
	events, err := s.audit.ListAvaliacaoEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		existe, err := s.avaliacoes.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !existe {
			return nil, notFound(msgAvaliacaoNaoEncontrada)
		}
	}
	return events, nil
}

// --- Equipamentos ---

type NovoEquipamento struct {
	Equipamento string
	Modelo      *string
	Quantidade  int
	Fabricante  *string
}

func (s *AvaliacaoService) AddEquipamento(ctx context.Context, ator string, avaliacaoID int64, novo NovoEquipamento) (*models.Equipamento, error) {
	if novo.Equipamento == "" {
		return nil, validation("equipamento é obrigatório")
	}
	if novo.Quantidade < 1 {
		return nil, validation("quantidade deve ser maior ou igual a 1")
	}

	existe, err := s.avaliacoes.Exists(ctx, avaliacaoID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, notFound(msgAvaliacaoNaoEncontrada)
	}

	e := &models.Equipamento{
		AvaliacaoID: avaliacaoID,
		Equipamento: novo.Equipamento,
		Modelo:      novo.Modelo,
		Quantidade:  novo.Quantidade,
		Fabricante:  novo.Fabricante,
	}
	detalhes := auditDetail(map[string]any{
		"acao":        "adicionar_equipamento",
		"equipamento": e.Equipamento,
		"modelo":      e.Modelo,
		"quantidade":  e.Quantidade,
		"fabricante":  e.Fabricante,
	})
	if err := s.avaliacoes.AddEquipamento(ctx, e, ator, detalhes); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *AvaliacaoService) ListEquipamentos(ctx context.Context, avaliacaoID int64) ([]models.Equipamento, error) {
	existe, err := s.avaliacoes.Exists(ctx, avaliacaoID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, notFound(msgAvaliacaoNaoEncontrada)
	}
	return s.avaliacoes.ListEquipamentos(ctx, avaliacaoID)
}

// RemoveEquipamento apaga a linha e registra o evento com um snapshot dos
// campos removidos.
func (s *AvaliacaoService) RemoveEquipamento(ctx context.Context, ator string, id int64) error {
	e, err := s.avaliacoes.GetEquipamento(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(msgEquipamentoNaoEncontrado)
		}
		return err
	}

	detalhes := auditDetail(map[string]any{
		"acao":        "remover_equipamento",
		"equipamento": e.Equipamento,
		"modelo":      e.Modelo,
		"quantidade":  e.Quantidade,
		"fabricante":  e.Fabricante,
	})
	if err := s.avaliacoes.RemoveEquipamento(ctx, id, e.AvaliacaoID, ator, detalhes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(msgEquipamentoNaoEncontrado)
		}
		return err
	}
	return nil
}

// --- Outros recursos ---

type NovoRecurso struct {
	Descricao  string
	Quantidade int
}

func (s *AvaliacaoService) AddRecurso(ctx context.Context, ator string, avaliacaoID int64, novo NovoRecurso) (*models.OutroRecurso, error) {
	if novo.Descricao == "" {
		return nil, validation("descricao é obrigatória")
	}
	if novo.Quantidade < 1 {
		return nil, validation("quantidade deve ser maior ou igual a 1")
	}

	existe, err := s.avaliacoes.Exists(ctx, avaliacaoID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, notFound(msgAvaliacaoNaoEncontrada)
	}

	rec := &models.OutroRecurso{
		AvaliacaoID: avaliacaoID,
		Descricao:   novo.Descricao,
		Quantidade:  novo.Quantidade,
	}
	detalhes := auditDetail(map[string]any{
		"acao":       "adicionar_outro_recurso",
		"descricao":  rec.Descricao,
		"quantidade": rec.Quantidade,
	})
	if err := s.avaliacoes.AddRecurso(ctx, rec, ator, detalhes); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *AvaliacaoService) ListRecursos(ctx context.Context, avaliacaoID int64) ([]models.OutroRecurso, error) {
	existe, err := s.avaliacoes.Exists(ctx, avaliacaoID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, notFound(msgAvaliacaoNaoEncontrada)
	}
	return s.avaliacoes.ListRecursos(ctx, avaliacaoID)
}

func (s *AvaliacaoService) RemoveRecurso(ctx context.Context, ator string, id int64) error {
	rec, err := s.avaliacoes.GetRecurso(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(msgRecursoNaoEncontrado)
		}
		return err
	}

	detalhes := auditDetail(map[string]any{
		"acao":       "remover_outro_recurso",
		"descricao":  rec.Descricao,
		"quantidade": rec.Quantidade,
	})
	if err := s.avaliacoes.RemoveRecurso(ctx, id, rec.AvaliacaoID, ator, detalhes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(msgRecursoNaoEncontrado)
		}
		return err
	}
	return nil
}
