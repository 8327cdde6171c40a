package models

import "time"

// Usuario é uma conta de acesso ao sistema. Contas nunca são removidas do
// banco: desativação é feita pelo flag Ativo.
type Usuario struct {
	ID                 int64     `json:"id"`
	Nome               string    `json:"nome"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	SenhaHash          string    `json:"-"`
	IsAdmin            bool      `json:"is_admin"`
	PrecisaTrocarSenha bool      `json:"precisa_trocar_senha"`
	Ativo              bool      `json:"ativo"`
	CriadoEm           time.Time `json:"criado_em"`
	AtualizadoEm       time.Time `json:"atualizado_em"`
}
