package domain

import "strings"

type AccountStatus string

const (
	AccountStatusOK          AccountStatus = "OK"
	AccountStatusError       AccountStatus = "ERROR"
	AccountStatusEmpty       AccountStatus = "EMPTY"
	AccountStatusRateLimited AccountStatus = "RATE LIMITED"
	AccountStatusPending     AccountStatus = "PENDING"
)

// Account é um par de credenciais da LiveIQ autorizado a consultar um conjunto de lojas.
// As chaves JSON seguem o formato do arquivo de configuração criptografado.
type Account struct {
	Name      string        `json:"Name"`
	ClientID  string        `json:"ClientID"`
	ClientKey string        `json:"ClientKEY"`
	StoreIDs  []string      `json:"StoreIDs"`
	Status    AccountStatus `json:"Status"`
}

// HasCredentials indica se a conta tem nome, client id e client key preenchidos
func (a Account) HasCredentials() bool {
	return strings.TrimSpace(a.Name) != "" &&
		strings.TrimSpace(a.ClientID) != "" &&
		strings.TrimSpace(a.ClientKey) != ""
}

func (a Account) OwnsStore(storeID string) bool {
	for _, id := range a.StoreIDs {
		if id == storeID {
			return true
		}
	}
	return false
}

func (a Account) SameCredentials(clientID, clientKey string) bool {
	return a.ClientID == clientID && a.ClientKey == clientKey
}

// AccountRequest é o payload de criação/edição de conta
type AccountRequest struct {
	Name      string `json:"name"`
	ClientID  string `json:"client_id"`
	ClientKey string `json:"client_key"`
}

// AccountResponse omite a client key nas respostas da API
type AccountResponse struct {
	Name     string        `json:"name"`
	ClientID string        `json:"client_id"`
	StoreIDs []string      `json:"store_ids"`
	Status   AccountStatus `json:"status"`
	Selected bool          `json:"selected"`
}

// StoreNode é uma loja na árvore conta → lojas
type StoreNode struct {
	StoreID  string `json:"store_id"`
	Selected bool   `json:"selected"`
}

type AccountNode struct {
	Name     string        `json:"name"`
	Status   AccountStatus `json:"status"`
	Selected bool          `json:"selected"`
	Stores   []StoreNode   `json:"stores"`
}

// AccountCheckResult resume a verificação de uma conta
type AccountCheckResult struct {
	Name   string        `json:"name"`
	Status AccountStatus `json:"status"`
	Stores int           `json:"stores"`
	Error  string        `json:"error,omitempty"`
}
