package mailing

import (
	"crypto/tls"

	"github.com/vfg2006/liveiq-reports/internal/domain"
	"gopkg.in/gomail.v2"
)

const implicitTLSPort = 465

// Sender entrega mensagens por SMTP
type Sender interface {
	Dial(settings domain.SMTPSettings) error
	Send(settings domain.SMTPSettings, msg *gomail.Message) error
}

type smtpSender struct{}

func NewSMTPSender() Sender {
	return smtpSender{}
}

// Na porta 465 a conexão já nasce TLS; nas demais o gomail negocia STARTTLS
func dialer(settings domain.SMTPSettings) *gomail.Dialer {
	d := gomail.NewDialer(settings.Server, settings.Port, settings.Username, settings.Password)
	d.SSL = settings.Port == implicitTLSPort
	d.TLSConfig = &tls.Config{ServerName: settings.Server}
	return d
}

// Dial conecta e autentica, sem enviar nada
func (smtpSender) Dial(settings domain.SMTPSettings) error {
	conn, err := dialer(settings).Dial()
	if err != nil {
		return err
	}
	return conn.Close()
}

func (smtpSender) Send(settings domain.SMTPSettings, msg *gomail.Message) error {
	return dialer(settings).DialAndSend(msg)
}
