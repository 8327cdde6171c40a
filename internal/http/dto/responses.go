package dto

// ErrorResponse segue o envelope {"detail": ...} esperado pelos clientes
// existentes.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Detail string `json:"detail"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ResetSenhaResponse devolve a senha temporária em texto uma única vez.
type ResetSenhaResponse struct {
	Detail          string `json:"detail"`
	SenhaTemporaria string `json:"senha_temporaria"`
}
