package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica uma sessão aberta com a senha da configuração
type Claims struct {
	SessionID  string
	ConfigFile string
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Created   bool   `json:"created"`
	ExpiresAt string `json:"expires_at"`
}

type ResetConfigRequest struct {
	Password string `json:"password"`
}

type ResetConfigResponse struct {
	Backup string `json:"backup,omitempty"`
}
