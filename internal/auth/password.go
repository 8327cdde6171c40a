package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword gera o hash bcrypt da senha com o custo padrão.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compara a senha em texto com o hash armazenado.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

const tempPasswordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTempPassword produz uma senha temporária aleatória de n caracteres
// alfanuméricos usando crypto/rand.
func GenerateTempPassword(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate temp password: %w", err)
		}
		buf[i] = tempPasswordChars[idx.Int64()]
	}
	return string(buf), nil
}
