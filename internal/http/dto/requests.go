package dto

type TrocarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual"`
	NovaSenha  string `json:"nova_senha"`
}

type CreateUsuarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Senha    string `json:"senha"`
	IsAdmin  bool   `json:"is_admin"`
}

// UsuarioStatusRequest usa ponteiro para distinguir "ativo": false de campo
// ausente.
type UsuarioStatusRequest struct {
	Ativo *bool `json:"ativo"`
}

type EquipamentoRequest struct {
	Equipamento string  `json:"equipamento"`
	Modelo      *string `json:"modelo"`
	Quantidade  int     `json:"quantidade"`
	Fabricante  *string `json:"fabricante"`
}

type OutroRecursoRequest struct {
	Descricao  string `json:"descricao"`
	Quantidade int    `json:"quantidade"`
}
