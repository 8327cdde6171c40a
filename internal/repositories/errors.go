package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound é devolvido quando a linha consultada não existe.
var ErrNotFound = errors.New("registro não encontrado")

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
