package domain

import (
	"time"
)

// tokenExpirySkew é a margem de segurança antes da expiração real do token.
// Renovamos um pouco antes para nunca enviar um token no limite da validade
const tokenExpirySkew = 5 * time.Minute

// GoogleAccount representa o conjunto de credenciais OAuth de uma conta Google
// conectada ao Search Console. O core apenas lê a conta e solicita a renovação
// quando o token expira; a criação acontece no fluxo de autorização, fora daqui
type GoogleAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsExpired indica se o access token precisa ser renovado antes do próximo uso
func (a *GoogleAccount) IsExpired(now time.Time) bool {
	if a.AccessToken == "" {
		return true
	}
	if a.ExpiresAt.IsZero() {
		return true
	}
	return !now.Add(tokenExpirySkew).Before(a.ExpiresAt)
}
