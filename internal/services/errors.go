package services

import (
	"errors"
	"fmt"
)

// Sentinelas mapeadas pelos handlers para os códigos HTTP da API.
var (
	ErrNotFound        = errors.New("não encontrado")
	ErrUnauthenticated = errors.New("não foi possível validar as credenciais")
	ErrForbidden       = errors.New("acesso negado")
)

// ValidationError carrega uma mensagem de 400 voltada ao cliente.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError é um 404 com mensagem específica do recurso.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(msg string) error {
	return &NotFoundError{Msg: msg}
}
