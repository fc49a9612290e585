package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Senha da configuração inválida
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrConfigLocked       = "AUTH_011" // Configuração ainda não desbloqueada

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidDateRange    = "VAL_004" // Data inicial depois da final
	ErrRangeTooLarge       = "VAL_005" // Período maior que o permitido pelo relatório
	ErrNoStoresSelected    = "VAL_006" // Nenhuma loja selecionada
	ErrNoValidAccounts     = "VAL_007" // Nenhuma conta válida para as lojas selecionadas

	// Erros de recurso (3000-3999)
	ErrResourceNotFound = "RES_001" // Conta ou destinatário não encontrado
	ErrResourceConflict = "RES_002" // Conta ou destinatário duplicado
	ErrMethodNotAllowed = "RES_003" // Método HTTP não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrStorageOperation  = "SRV_002" // Erro ao ler ou gravar o arquivo de configuração
	ErrExternalService   = "SRV_003" // Erro na LiveIQ
	ErrCommunication     = "SRV_004" // Sem conexão com a internet
	ErrRateLimited       = "SRV_005" // LiveIQ recusou por limite de requisições
	ErrMailDelivery      = "SRV_006" // Falha no envio por SMTP
	ErrExportOperation   = "SRV_007" // Falha ao gerar arquivo de exportação
	ErrSMTPNotConfigured = "SRV_008" // SMTP incompleto
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrConfigLocked:        http.StatusLocked,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidDateRange:    http.StatusBadRequest,
	ErrRangeTooLarge:       http.StatusBadRequest,
	ErrNoStoresSelected:    http.StatusUnprocessableEntity,
	ErrNoValidAccounts:     http.StatusUnprocessableEntity,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrResourceConflict:    http.StatusConflict,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorageOperation:    http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
	ErrRateLimited:         http.StatusTooManyRequests,
	ErrMailDelivery:        http.StatusBadGateway,
	ErrExportOperation:     http.StatusInternalServerError,
	ErrSMTPNotConfigured:   http.StatusUnprocessableEntity,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// CodedError é implementado pelos erros tipados dos casos de uso
type CodedError interface {
	error
	ErrorCode() string
}

// StatusFor devolve o status HTTP de um código (500 se desconhecido)
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError usa o código do erro tipado quando existir; caso contrário fallback
func WriteFromError(w http.ResponseWriter, err error, fallback string) {
	apiErr := FromError(err, fallback)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var coded CodedError
	if errors.As(err, &coded) && coded.ErrorCode() != "" {
		code = coded.ErrorCode()
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
