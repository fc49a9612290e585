package domain

const DefaultMaxWorkers = 8

type SMTPSettings struct {
	Server   string `json:"server"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// Complete indica se todos os campos necessários para o envio estão preenchidos
func (s SMTPSettings) Complete() bool {
	return s.Server != "" && s.Port > 0 && s.Username != "" && s.Password != "" && s.From != ""
}

// Settings é o conteúdo do arquivo de configuração criptografado.
// Seleções nulas significam "tudo selecionado".
type Settings struct {
	Accounts         []Account    `json:"accounts"`
	MaxWorkers       int          `json:"max_workers"`
	Emails           []string     `json:"emails"`
	SMTP             SMTPSettings `json:"smtp"`
	SelectedAccounts []string     `json:"selected_accounts"`
	SelectedStores   []string     `json:"selected_stores"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Accounts:   []Account{},
		MaxWorkers: DefaultMaxWorkers,
		Emails:     []string{},
	}
}

// Normalize aplica as regras de carga: contas sem credenciais ficam com status ERROR,
// contas sem status ficam PENDING.
func (s *Settings) Normalize() {
	if s.MaxWorkers <= 0 {
		s.MaxWorkers = DefaultMaxWorkers
	}
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.Emails == nil {
		s.Emails = []string{}
	}

	for i := range s.Accounts {
		acc := &s.Accounts[i]
		if acc.StoreIDs == nil {
			acc.StoreIDs = []string{}
		}
		if !acc.HasCredentials() {
			acc.Status = AccountStatusError
			continue
		}
		if acc.Status == "" {
			acc.Status = AccountStatusPending
		}
	}
}

// Clone devolve uma cópia profunda das configurações
func (s *Settings) Clone() *Settings {
	out := *s
	out.Accounts = make([]Account, len(s.Accounts))
	for i, acc := range s.Accounts {
		acc.StoreIDs = append([]string{}, acc.StoreIDs...)
		out.Accounts[i] = acc
	}
	out.Emails = append([]string{}, s.Emails...)
	if s.SelectedAccounts != nil {
		out.SelectedAccounts = append([]string{}, s.SelectedAccounts...)
	}
	if s.SelectedStores != nil {
		out.SelectedStores = append([]string{}, s.SelectedStores...)
	}
	return &out
}

// Selection é a seleção persistida de contas e lojas
type Selection struct {
	Accounts []string `json:"accounts"`
	Stores   []string `json:"stores"`
}
