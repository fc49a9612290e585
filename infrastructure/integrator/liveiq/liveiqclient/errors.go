package liveiqclient

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRateLimited = errors.New("limite de requisições da LiveIQ excedido")

// RateLimitError é devolvido quando a LiveIQ responde 429 para um par de credenciais
type RateLimitError struct {
	Endpoint Endpoint
	StoreIDs []string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s (%s, lojas %s)", ErrRateLimited.Error(), endpointOrNA(e.Endpoint), strings.Join(e.StoreIDs, ","))
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// StatusError representa qualquer outra resposta fora da faixa 2xx
type StatusError struct {
	Endpoint   Endpoint
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("requisição %s falhou com status: %s", endpointOrNA(e.Endpoint), e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// IsRateLimited indica se err é (ou embrulha) um 429
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func endpointOrNA(e Endpoint) string {
	if e == "" {
		return "Restaurants"
	}
	return string(e)
}
