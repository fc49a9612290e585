package exporting

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/presenter"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

const maxNameAttempts = 20

var (
	ErrExportFailed   = errors.New("falha ao exportar relatório")
	ErrNameCollisions = errors.New("não foi possível gerar um nome de arquivo livre")
)

// ExportError carrega o código usado pela API
type ExportError struct {
	Err  error
	Code string
}

func (e *ExportError) Error() string { return e.Err.Error() }

func (e *ExportError) Unwrap() error { return e.Err }

func (e *ExportError) ErrorCode() string { return e.Code }

// Exported descreve o arquivo gravado em disco
type Exported struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type Exporter interface {
	Export(report *domain.Report, format presenter.Format) (*Exported, error)
}

type Service struct {
	dir         string
	renderer    func(format presenter.Format) (presenter.Renderer, error)
	suffix      func() (string, error)
	maxAttempts int
}

func NewService(cfg config.Storage) *Service {
	return &Service{
		dir:         cfg.ReportsDir,
		renderer:    presenter.NewRenderer,
		suffix:      utils.GenerateSuffix,
		maxAttempts: maxNameAttempts,
	}
}

// Export renderiza o relatório e grava em <dir>/<Nome>-XXXX.<ext>. O arquivo é
// criado com O_EXCL, então uma colisão de sufixo só leva a uma nova tentativa.
func (s *Service) Export(report *domain.Report, format presenter.Format) (*Exported, error) {
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, &ExportError{Err: err, Code: apiErrors.ErrInvalidRequest}
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, report); err != nil {
		return nil, s.fail(pkgerrors.Wrapf(err, "erro ao renderizar %s", format))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, s.fail(pkgerrors.Wrapf(err, "erro ao criar diretório %s", s.dir))
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		suffix, err := s.suffix()
		if err != nil {
			return nil, s.fail(pkgerrors.Wrap(err, "erro ao gerar sufixo"))
		}

		name := fmt.Sprintf("%s-%s.%s", report.Type.FileLabel(), suffix, format.Extension())
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, s.fail(pkgerrors.Wrapf(err, "erro ao criar %s", path))
		}

		if _, err := f.Write(buf.Bytes()); err != nil {
			f.Close()
			os.Remove(path)
			return nil, s.fail(pkgerrors.Wrapf(err, "erro ao gravar %s", path))
		}
		if err := f.Close(); err != nil {
			return nil, s.fail(pkgerrors.Wrapf(err, "erro ao fechar %s", path))
		}

		logrus.WithFields(logrus.Fields{
			"report": report.ID,
			"path":   path,
			"bytes":  buf.Len(),
		}).Info("Relatório exportado")

		return &Exported{
			Path:        path,
			Name:        name,
			Format:      string(format),
			ContentType: format.ContentType(),
			Size:        buf.Len(),
		}, nil
	}

	return nil, s.fail(ErrNameCollisions)
}

func (s *Service) fail(err error) error {
	logrus.WithError(err).Error("Falha ao exportar relatório")
	return &ExportError{Err: fmt.Errorf("%w: %v", ErrExportFailed, err), Code: apiErrors.ErrExportOperation}
}
