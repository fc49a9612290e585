package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	// Erros de validação
	ErrAccountFieldsRequired = errors.New("nome, client id e client key são obrigatórios")
	ErrAccountNotFound       = errors.New("conta não encontrada")
	ErrAccountExists         = errors.New("já existe uma conta com esse nome")
	ErrDuplicateCredentials  = errors.New("client id e client key já usados em outra conta")
	ErrInvalidMaxWorkers     = errors.New("quantidade de workers deve ficar entre 1 e 64")

	// Erros de serviços externos
	ErrRateLimited      = errors.New("conta com limite de requisições atingido, tente mais tarde")
	ErrStoreListFailed  = errors.New("falha ao obter as lojas da conta")
	ErrNoInternet       = errors.New("sem conexão com a internet")
	ErrCheckUnavailable = errors.New("verificação das contas indisponível")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("falha ao ler ou gravar a configuração")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Name    string // Conta envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

func (e *AccountError) ErrorCode() string {
	return e.Code
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithName cria um novo AccountError com o nome da conta
func NewAccountErrorWithName(err error, code string, name string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Name:    name,
		Details: details,
	}
}
