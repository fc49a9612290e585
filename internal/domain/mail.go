package domain

// SendReportRequest é o corpo dos envios por e-mail e mailto
type SendReportRequest struct {
	ReportRequestBody
	Format     string   `json:"format"`
	Recipients []string `json:"recipients"`
}

type SendReportResponse struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	File       string   `json:"file"`
}

// MailtoResponse devolve a URL mailto e o arquivo que deve ser anexado manualmente
type MailtoResponse struct {
	URL  string `json:"url"`
	File string `json:"file"`
}

type RecipientRequest struct {
	Email string `json:"email"`
}

// SMTPView é a forma exibida das configurações SMTP, sem a senha
type SMTPView struct {
	Server      string `json:"server"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	From        string `json:"from"`
	HasPassword bool   `json:"has_password"`
	Complete    bool   `json:"complete"`
}

func (s SMTPSettings) View() SMTPView {
	return SMTPView{
		Server:      s.Server,
		Port:        s.Port,
		Username:    s.Username,
		From:        s.From,
		HasPassword: s.Password != "",
		Complete:    s.Complete(),
	}
}
