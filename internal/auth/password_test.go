package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "senha-secreta" {
		t.Fatal("hash não pode ser a senha em texto")
	}

	if !CheckPassword(hash, "senha-secreta") {
		t.Error("senha correta rejeitada")
	}
	if CheckPassword(hash, "senha-errada") {
		t.Error("senha errada aceita")
	}
	if CheckPassword("", "senha-secreta") {
		t.Error("hash vazio aceito")
	}
}

func TestGenerateTempPassword(t *testing.T) {
	visto := map[string]bool{}
	for i := 0; i < 20; i++ {
		temp, err := GenerateTempPassword(10)
		if err != nil {
			t.Fatalf("GenerateTempPassword: %v", err)
		}
		if len(temp) != 10 {
			t.Fatalf("len = %d, esperava 10", len(temp))
		}
		for _, r := range temp {
			if !strings.ContainsRune(tempPasswordChars, r) {
				t.Fatalf("caractere fora do alfabeto: %q", r)
			}
		}
		visto[temp] = true
	}
	if len(visto) < 2 {
		t.Error("senhas temporárias repetidas demais para serem aleatórias")
	}
}
