package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nortetel/avaliacoes-backend/internal/models"
)

const usuarioColumns = "id, nome, email, username, senha_hash, is_admin, precisa_trocar_senha, ativo, criado_em, atualizado_em"

type UsuarioRepo struct {
	pool *pgxpool.Pool
}

func NewUsuarioRepo(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

func scanUsuario(row interface{ Scan(dest ...any) error }) (*models.Usuario, error) {
	var u models.Usuario
	err := row.Scan(
		&u.ID, &u.Nome, &u.Email, &u.Username, &u.SenhaHash,
		&u.IsAdmin, &u.PrecisaTrocarSenha, &u.Ativo, &u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// Create insere a conta sem registrar auditoria. Usado apenas pelo
// bootstrap do administrador inicial.
func (r *UsuarioRepo) Create(ctx context.Context, u *models.Usuario) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (nome, email, username, senha_hash, is_admin, precisa_trocar_senha, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, criado_em, atualizado_em
	`, u.Nome, u.Email, u.Username, u.SenhaHash, u.IsAdmin, u.PrecisaTrocarSenha, u.Ativo).
		Scan(&u.ID, &u.CriadoEm, &u.AtualizadoEm)
}

// CreateAudited insere a conta e a linha CRIAR_USUARIO na mesma transação.
func (r *UsuarioRepo) CreateAudited(ctx context.Context, u *models.Usuario, acaoPorID *int64, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO usuarios (nome, email, username, senha_hash, is_admin, precisa_trocar_senha, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, criado_em, atualizado_em
	`, u.Nome, u.Email, u.Username, u.SenhaHash, u.IsAdmin, u.PrecisaTrocarSenha, u.Ativo).
		Scan(&u.ID, &u.CriadoEm, &u.AtualizadoEm)
	if err != nil {
		return err
	}

	if err := logUsuarioEvent(ctx, tx, u.ID, acaoPorID, models.AcaoCriarUsuario, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	return scanUsuario(r.pool.QueryRow(ctx,
		`SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id))
}

func (r *UsuarioRepo) GetByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	return scanUsuario(r.pool.QueryRow(ctx,
		`SELECT `+usuarioColumns+` FROM usuarios WHERE username = $1`, username))
}

func (r *UsuarioRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuarios WHERE username = $1 OR email = $2)`,
		username, email).Scan(&exists)
	return exists, err
}

func (r *UsuarioRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuarios WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *UsuarioRepo) List(ctx context.Context) ([]models.Usuario, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+usuarioColumns+` FROM usuarios ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []models.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, *u)
	}
	return usuarios, rows.Err()
}

// SetAtivo altera o flag ativo e registra a auditoria correspondente na
// mesma transação. acao deve ser ATIVAR_USUARIO ou DESATIVAR_USUARIO.
func (r *UsuarioRepo) SetAtivo(ctx context.Context, id int64, ativo bool, acaoPorID *int64, acao string, detalhes *string) (*models.Usuario, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUsuario(tx.QueryRow(ctx, `
		UPDATE usuarios SET ativo = $1, atualizado_em = now()
		WHERE id = $2
		RETURNING `+usuarioColumns, ativo, id))
	if err != nil {
		return nil, err
	}

	if err := logUsuarioEvent(ctx, tx, id, acaoPorID, acao, detalhes); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateSenha grava o novo hash (troca voluntária): limpa
// precisa_trocar_senha e audita TROCAR_SENHA.
func (r *UsuarioRepo) UpdateSenha(ctx context.Context, id int64, senhaHash string, acaoPorID *int64, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE usuarios SET senha_hash = $1, precisa_trocar_senha = false, atualizado_em = now()
		WHERE id = $2
	`, senhaHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := logUsuarioEvent(ctx, tx, id, acaoPorID, models.AcaoTrocarSenha, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ResetSenha grava o hash temporário, força nova troca, reativa a conta e
// audita RESET_SENHA — tudo na mesma transação.
func (r *UsuarioRepo) ResetSenha(ctx context.Context, id int64, senhaHash string, acaoPorID *int64, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE usuarios SET senha_hash = $1, precisa_trocar_senha = true, ativo = true, atualizado_em = now()
		WHERE id = $2
	`, senhaHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := logUsuarioEvent(ctx, tx, id, acaoPorID, models.AcaoResetSenha, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
