package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "segredo-de-teste"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testSecret, "maria", 8*time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(testSecret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.Subject != "maria" {
		t.Errorf("Subject = %q, esperava %q", claims.Subject, "maria")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("ExpiresAt ausente")
	}
	restante := time.Until(claims.ExpiresAt.Time)
	if restante < 7*time.Hour || restante > 8*time.Hour {
		t.Errorf("expiração fora do esperado: restam %v", restante)
	}
}

func TestGenerateJWTDefaultExpiration(t *testing.T) {
	token, err := GenerateJWT(testSecret, "maria", 0)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	claims, err := ParseJWT(testSecret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	restante := time.Until(claims.ExpiresAt.Time)
	if restante < 7*time.Hour || restante > 8*time.Hour {
		t.Errorf("expiração padrão deveria ser 8h, restam %v", restante)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, "maria", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT("outro-segredo", token); err == nil {
		t.Error("token assinado com outro segredo deveria ser rejeitado")
	}
}

func TestParseJWTTampered(t *testing.T) {
	token, err := GenerateJWT(testSecret, "maria", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	parts := strings.Split(token, ".")
	parts[1] = parts[1] + "x"
	if _, err := ParseJWT(testSecret, strings.Join(parts, ".")); err == nil {
		t.Error("token adulterado deveria ser rejeitado")
	}
}

func TestParseJWTExpired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "maria",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(testSecret, token); err == nil {
		t.Error("token expirado deveria ser rejeitado")
	}
}

func TestParseJWTMissingSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(testSecret, token); err == nil {
		t.Error("token sem subject deveria ser rejeitado")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT(testSecret, "nao-e-um-jwt"); err == nil {
		t.Error("texto arbitrário deveria ser rejeitado")
	}
}
