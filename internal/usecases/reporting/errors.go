package reporting

import (
	"errors"
	"fmt"
)

// Erros de validação do relatório, verificados antes de qualquer chamada à LiveIQ
var (
	ErrMissingDates     = errors.New("informe as datas de início e fim")
	ErrInvertedRange    = errors.New("a data inicial é posterior à data final")
	ErrRangeTooLarge    = errors.New("período maior que o permitido para o relatório")
	ErrNoStoresSelected = errors.New("nenhuma loja selecionada")
	ErrNoValidAccounts  = errors.New("nenhuma conta válida para as lojas selecionadas")
	ErrUnknownEndpoint  = errors.New("endpoint inválido")

	// Erros de execução
	ErrLoadAccounts = errors.New("erro ao carregar as contas")
)

// ReportError é um erro com o código da API e detalhes do relatório
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// ErrorCode permite que o handler escolha o status HTTP
func (e *ReportError) ErrorCode() string {
	return e.Code
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
