package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	errorLogTimeLayout = "2006-01-02 15:04:05"
	storeField         = "sid"
	endpointField      = "endpoint"
	notAvailable       = "N/A"
)

// ErrorLog grava falhas de busca, rate limits e erros de configuração
// em um arquivo de texto, uma linha por ocorrência:
//
//	[2024-01-02 15:04:05 UTC] [sid=12345][Daily Sales Summary] mensagem
type ErrorLog struct {
	logger *logrus.Logger
	closer io.Closer
}

// NewErrorLog abre (ou cria) o arquivo em modo append
func NewErrorLog(path string) (*ErrorLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do log de erros: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir log de erros %s: %w", path, err)
	}

	el := NewErrorLogWriter(f)
	el.closer = f
	return el, nil
}

// NewErrorLogWriter grava as linhas em qualquer io.Writer
func NewErrorLogWriter(w io.Writer) *ErrorLog {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(errorLineFormatter{})
	l.SetLevel(logrus.ErrorLevel)

	return &ErrorLog{logger: l}
}

// Record acrescenta uma linha. storeID e endpoint vazios viram N/A.
// Um ErrorLog nil ignora a chamada.
func (e *ErrorLog) Record(storeID, endpoint, message string) {
	if e == nil || e.logger == nil {
		return
	}

	e.logger.WithFields(logrus.Fields{
		storeField:    storeID,
		endpointField: endpoint,
	}).Error(message)
}

func (e *ErrorLog) Recordf(storeID, endpoint, format string, args ...interface{}) {
	e.Record(storeID, endpoint, fmt.Sprintf(format, args...))
}

func (e *ErrorLog) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

type errorLineFormatter struct{}

func (errorLineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	line := fmt.Sprintf("[%s UTC] [sid=%s][%s] %s\n",
		entry.Time.UTC().Format(errorLogTimeLayout),
		fieldOrNA(entry.Data, storeField),
		fieldOrNA(entry.Data, endpointField),
		entry.Message,
	)
	return []byte(line), nil
}

func fieldOrNA(data logrus.Fields, key string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return notAvailable
}
