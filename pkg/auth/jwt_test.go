package auth

import (
	"errors"
	"testing"

	"github.com/padocadigital/gestao-padaria/internal/domain/user"
)

func testUser() *user.User {
	return &user.User{
		ID:          "user-1",
		InstituteID: "inst-1",
		Name:        "Maria",
		Email:       "maria@example.com",
		Role:        user.RoleManager,
		Status:      user.StatusActive,
	}
}

func TestNewJWTServiceMissingKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := NewJWTService(); !errors.Is(err, ErrMissingJWTKey) {
		t.Errorf("esperava ErrMissingJWTKey, obteve %v", err)
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("NewJWTService falhou: %v", err)
	}

	token, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken falhou: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken falhou: %v", err)
	}

	if claims.UserID != "user-1" || claims.InstituteID != "inst-1" {
		t.Errorf("claims: obteve (%q, %q)", claims.UserID, claims.InstituteID)
	}
	if claims.Role != "manager" {
		t.Errorf("Role: esperava manager, obteve %q", claims.Role)
	}
	if claims.Issuer != "gestao-padaria-api" {
		t.Errorf("Issuer: obteve %q", claims.Issuer)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")
	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("NewJWTService falhou: %v", err)
	}

	token, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken falhou: %v", err)
	}

	t.Setenv("JWT_SECRET_KEY", "outro-segredo")
	other, err := NewJWTService()
	if err != nil {
		t.Fatalf("NewJWTService falhou: %v", err)
	}

	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("esperava ErrInvalidToken, obteve %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")
	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("NewJWTService falhou: %v", err)
	}

	if _, err := svc.ValidateToken("nao-e-um-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("esperava ErrInvalidToken, obteve %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")
	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("NewJWTService falhou: %v", err)
	}

	token, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken falhou: %v", err)
	}

	refreshed, err := svc.RefreshToken(token)
	if err != nil {
		t.Fatalf("RefreshToken falhou: %v", err)
	}

	claims, err := svc.ValidateToken(refreshed)
	if err != nil {
		t.Fatalf("token renovado inválido: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("claims do token renovado: obteve %q", claims.UserID)
	}
}

func TestRefreshTokenInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")
	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("NewJWTService falhou: %v", err)
	}

	if _, err := svc.RefreshToken("nao-e-um-token"); err == nil {
		t.Error("esperava erro ao renovar token inválido")
	}
}
