package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nortetel/avaliacoes-backend/internal/models"
)

// DBTX é o subconjunto de pgxpool.Pool/pgx.Tx usado pelos repositórios.
// Permite que os inserts de auditoria rodem tanto fora quanto dentro da
// transação da mutação que os originou.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// logAvaliacaoEvent insere uma linha no trilho de auditoria da avaliação.
// Chamado pelos repositórios dentro da mesma transação da escrita de dados.
func logAvaliacaoEvent(ctx context.Context, q DBTX, avaliacaoID int64, usuario, acao string, detalhes *string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO avaliacoes_auditoria (avaliacao_id, usuario, acao, detalhes)
		VALUES ($1, $2, $3, $4)
	`, avaliacaoID, usuario, acao, detalhes)
	return err
}

// logUsuarioEvent insere uma linha no trilho de auditoria de contas.
// acaoPorID nulo indica ação do sistema.
func logUsuarioEvent(ctx context.Context, q DBTX, alvoID int64, acaoPorID *int64, acao string, detalhes *string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO usuarios_auditoria (usuario_alvo_id, usuario_acao_id, acao, detalhes)
		VALUES ($1, $2, $3, $4)
	`, alvoID, acaoPorID, acao, detalhes)
	return err
}

// AuditRepo expõe apenas leitura: as linhas de auditoria são gravadas pelos
// repositórios de dados, dentro das transações das mutações.
type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) ListAvaliacaoEvents(ctx context.Context, avaliacaoID int64) ([]models.AvaliacaoAuditoria, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, avaliacao_id, usuario, acao, detalhes, data_hora
		FROM avaliacoes_auditoria
		WHERE avaliacao_id = $1
		ORDER BY data_hora ASC, id ASC
	`, avaliacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.AvaliacaoAuditoria
	for rows.Next() {
		var e models.AvaliacaoAuditoria
		if err := rows.Scan(&e.ID, &e.AvaliacaoID, &e.Usuario, &e.Acao, &e.Detalhes, &e.DataHora); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *AuditRepo) ListUsuarioEvents(ctx context.Context, usuarioID int64) ([]models.UsuarioAuditoria, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, usuario_alvo_id, usuario_acao_id, acao, detalhes, data_hora
		FROM usuarios_auditoria
		WHERE usuario_alvo_id = $1
		ORDER BY data_hora ASC, id ASC
	`, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.UsuarioAuditoria
	for rows.Next() {
		var e models.UsuarioAuditoria
		if err := rows.Scan(&e.ID, &e.UsuarioAlvoID, &e.UsuarioAcaoID, &e.Acao, &e.Detalhes, &e.DataHora); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
