package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de autenticação
	ErrInvalidPassword = errors.New("senha da configuração inválida")
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
	ErrConfigLocked    = errors.New("configuração bloqueada: faça login novamente")

	// Erros de validação
	ErrMissingPassword = errors.New("senha é obrigatória")

	// Erros do arquivo de configuração
	ErrStorageOperation = errors.New("erro ao ler ou gravar o arquivo de configuração")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) ErrorCode() string {
	return e.Code
}

// IsCredentialsError verifica se o erro está relacionado a senha inválida
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidPassword) || errors.Is(err, ErrMissingPassword)
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de sessão
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrConfigLocked)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
