package reporting

import (
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

var ErrInvalidDate = errors.New("data inválida, use YYYY-MM-DD")

// BuildRequest converte o corpo recebido em um ReportRequest, resolvendo o
// período pré-definido em relação a now
func BuildRequest(reportType string, body domain.ReportRequestBody, now time.Time) (*domain.ReportRequest, error) {
	t, err := domain.ParseReportType(reportType)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrInvalidRequest, reportType)
	}

	req := &domain.ReportRequest{
		Type:     t,
		StoreIDs: splitStores(body.Stores),
		Endpoint: strings.TrimSpace(body.Endpoint),
		Flatten:  body.Flatten,
	}

	preset := strings.TrimSpace(body.Preset)
	if preset != "" && preset != utils.PresetCustom {
		start, end, err := utils.PresetRange(preset, now)
		if err != nil {
			return nil, NewReportError(err, apiErrors.ErrInvalidRequest, preset)
		}
		req.StartDate, req.EndDate = start, end
		req.Preset = preset
		return req, nil
	}

	start, err := utils.ParseDate(body.StartDate)
	if err != nil {
		return nil, NewReportError(ErrInvalidDate, apiErrors.ErrInvalidFormat, body.StartDate)
	}
	end, err := utils.ParseDate(body.EndDate)
	if err != nil {
		return nil, NewReportError(ErrInvalidDate, apiErrors.ErrInvalidFormat, body.EndDate)
	}
	req.StartDate, req.EndDate = *start, *end
	req.Preset = utils.DetectPreset(*start, *end, now)

	return req, nil
}

// splitStores aceita tanto ["1","2"] quanto ["1,2"]
func splitStores(values []string) []string {
	var out []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}
