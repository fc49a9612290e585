package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/presenter"
	"github.com/vfg2006/liveiq-reports/internal/usecases/exporting"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/internal/usecases/reporting"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

const defaultFormat = presenter.FormatTXT

type ExportRequest struct {
	domain.ReportRequestBody
	Format string `json:"format"`
}

type PresetResponse struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// now é substituído nos testes
var now = time.Now

func ReportTypes(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Types())
	}
}

// DatePresets lista os períodos pré-definidos já resolvidos para hoje
func DatePresets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := now()

		presets := make([]PresetResponse, 0, len(utils.DatePresets()))
		for _, name := range utils.DatePresets() {
			preset := PresetResponse{Name: name}
			if start, end, err := utils.PresetRange(name, today); err == nil {
				preset.StartDate = start.Format(time.DateOnly)
				preset.EndDate = end.Format(time.DateOnly)
			}
			presets = append(presets, preset)
		}

		writeJSON(w, http.StatusOK, presets)
	}
}

// RunReport executa o relatório e devolve o documento em JSON. Com ?format=
// a resposta é o arquivo renderizado para download.
func RunReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body domain.ReportRequestBody
		if err := decodeBody(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		var format presenter.Format
		if q := r.URL.Query().Get("format"); q != "" {
			f, err := presenter.ParseFormat(q)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), map[string]any{"formats": presenter.Formats()})
				return
			}
			format = f
		}

		report, ok := runReport(w, r, service, body)
		if !ok {
			return
		}

		if format == "" {
			writeJSON(w, http.StatusOK, presenter.NewDocument(report))
			return
		}

		var buf bytes.Buffer
		if err := presenter.Render(&buf, report, format); err != nil {
			logrus.WithError(err).WithField("format", format).Error("Erro ao renderizar relatório")
			apiErrors.WriteError(w, apiErrors.ErrExportOperation, "Erro ao gerar o arquivo", nil)
			return
		}

		filename := fmt.Sprintf("%s.%s", report.Type.FileLabel(), format.Extension())
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := buf.WriteTo(w); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar arquivo do relatório")
		}
	}
}

// ExportReport executa o relatório e grava o arquivo na pasta de relatórios
func ExportReport(service reporting.Reporter, exporter exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExportRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		format, ok := requestFormat(w, req.Format)
		if !ok {
			return
		}

		report, ok := runReport(w, r, service, req.ReportRequestBody)
		if !ok {
			return
		}

		exported, err := exporter.Export(report, format)
		if err != nil {
			logrus.WithError(err).Error("Erro ao exportar relatório")
			apiErrors.WriteFromError(w, err, apiErrors.ErrExportOperation)
			return
		}

		writeJSON(w, http.StatusCreated, exported)
	}
}

// EmailReport executa o relatório e envia o arquivo por SMTP
func EmailReport(service reporting.Reporter, mailer mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SendReportRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		format, ok := requestFormat(w, req.Format)
		if !ok {
			return
		}

		report, ok := runReport(w, r, service, req.ReportRequestBody)
		if !ok {
			return
		}

		resp, err := mailer.SendReport(report, format, req.Recipients)
		if err != nil {
			logrus.WithError(err).Error("Erro ao enviar relatório por e-mail")
			apiErrors.WriteFromError(w, err, apiErrors.ErrMailDelivery)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// MailtoReport executa o relatório, exporta o arquivo e devolve a URL mailto
func MailtoReport(service reporting.Reporter, mailer mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SendReportRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		format, ok := requestFormat(w, req.Format)
		if !ok {
			return
		}

		report, ok := runReport(w, r, service, req.ReportRequestBody)
		if !ok {
			return
		}

		resp, err := mailer.Mailto(report, format, req.Recipients)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar mailto")
			apiErrors.WriteFromError(w, err, apiErrors.ErrExportOperation)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func requestFormat(w http.ResponseWriter, value string) (presenter.Format, bool) {
	if strings.TrimSpace(value) == "" {
		return defaultFormat, true
	}
	format, err := presenter.ParseFormat(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), map[string]any{"formats": presenter.Formats()})
		return "", false
	}
	return format, true
}

// runReport escreve o erro na resposta e devolve false quando o relatório não pôde ser gerado
func runReport(w http.ResponseWriter, r *http.Request, service reporting.Reporter, body domain.ReportRequestBody) (*domain.Report, bool) {
	reportType := httprouter.ParamsFromContext(r.Context()).ByName("type")

	req, err := reporting.BuildRequest(reportType, body, now())
	if err != nil {
		apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidRequest)
		return nil, false
	}

	report, err := service.Run(r.Context(), req)
	if err != nil {
		logrus.WithError(err).WithField("type", reportType).Warn("Relatório não gerado")
		apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
		return nil, false
	}

	return report, true
}
