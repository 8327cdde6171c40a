package models

import "time"

// Ações de auditoria de avaliações.
const (
	AcaoCriar              = "CRIAR"
	AcaoEditar             = "EDITAR"
	AcaoAddEquipamento     = "ADD_EQUIPAMENTO"
	AcaoRemoverEquipamento = "REMOVER_EQUIPAMENTO"
	AcaoAddOutroRecurso    = "ADD_OUTRO_RECURSO"
	AcaoRemoverOutroRec    = "REMOVER_OUTRO_RECURSO"
)

// Ações de auditoria de usuários.
const (
	AcaoCriarUsuario     = "CRIAR_USUARIO"
	AcaoAtivarUsuario    = "ATIVAR_USUARIO"
	AcaoDesativarUsuario = "DESATIVAR_USUARIO"
	AcaoResetSenha       = "RESET_SENHA"
	AcaoTrocarSenha      = "TROCAR_SENHA"
)

// AtorSistema identifica mutações feitas sem token (ou pelo próprio processo).
const AtorSistema = "sistema"

// AvaliacaoAuditoria é uma linha imutável do trilho de auditoria de uma
// avaliação. Nunca é alterada nem removida, exceto em cascata quando a
// avaliação é excluída.
type AvaliacaoAuditoria struct {
	ID          int64     `json:"id"`
	AvaliacaoID int64     `json:"avaliacao_id"`
	Usuario     string    `json:"usuario"`
	Acao        string    `json:"acao"`
	Detalhes    *string   `json:"detalhes,omitempty"`
	DataHora    time.Time `json:"data_hora"`
}

// UsuarioAuditoria registra ações sobre contas. UsuarioAcaoID é nulo para
// ações iniciadas pelo sistema.
type UsuarioAuditoria struct {
	ID            int64     `json:"id"`
	UsuarioAlvoID int64     `json:"usuario_alvo_id"`
	UsuarioAcaoID *int64    `json:"usuario_acao_id,omitempty"`
	Acao          string    `json:"acao"`
	Detalhes      *string   `json:"detalhes,omitempty"`
	DataHora      time.Time `json:"data_hora"`
}

// Alteracao descreve a mudança de um único campo em uma atualização parcial.
type Alteracao struct {
	Campo  string `json:"campo"`
	Antes  any    `json:"antes"`
	Depois any    `json:"depois"`
}
