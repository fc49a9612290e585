package reporting

import (
	"fmt"
	"strings"

	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

const (
	columnLabel = "label"
	columnValue = "value"
	columnEntry = "entry"
	columnField = "field"
	columnJSON  = "json"
)

// customModule mostra a resposta bruta de qualquer endpoint, loja por loja
type customModule struct{}

func (customModule) Type() domain.ReportType { return domain.ReportCustom }

func (customModule) MaxDays() int { return 30 }

func (customModule) Validate(req *domain.ReportRequest) error {
	ep, err := liveiqclient.ParseEndpoint(req.Endpoint)
	if err != nil {
		return NewReportError(ErrUnknownEndpoint, apiErrors.ErrInvalidRequest, fmt.Sprintf("%q", req.Endpoint))
	}
	req.Endpoint = string(ep)
	return nil
}

func (customModule) Plan(req *domain.ReportRequest, routes []Route) []FetchTask {
	return perStoreTasks(liveiqclient.Endpoint(req.Endpoint), req, routes)
}

func (customModule) NewAccumulator(req *domain.ReportRequest) Accumulator {
	return &customAccumulator{
		req:      req,
		payloads: make(map[string]any),
		accounts: make(map[string]string),
	}
}

type customAccumulator struct {
	req      *domain.ReportRequest
	payloads map[string]any
	accounts map[string]string
}

func (a *customAccumulator) Fold(task FetchTask, payload []byte) error {
	sid := task.StoreIDs[0]
	a.accounts[sid] = task.Account

	value, err := liveiqdomain.DecodeValue(payload)
	if err != nil {
		return err
	}
	if obj, ok := value.(map[string]any); ok {
		if data, ok := obj["data"]; ok {
			value = data
		}
	}

	a.payloads[sid] = value
	return nil
}

func (a *customAccumulator) HasData(storeID string) bool {
	_, ok := a.payloads[storeID]
	return ok
}

func (a *customAccumulator) Build(report *domain.Report) {
	report.Title = fmt.Sprintf("%s: %s", report.Title, a.req.Endpoint)

	report.Sections = append(report.Sections, domain.Section{
		Key:   "request",
		Title: "Request",
		Columns: []domain.Column{
			textCol(columnLabel, "Field", 8),
			textCol(columnValue, "Value", 0),
		},
		Groups: singleGroup([]domain.Row{
			{columnLabel: "Endpoint", columnValue: a.req.Endpoint},
			{columnLabel: "Range", columnValue: report.Range()},
			{columnLabel: "Stores", columnValue: strings.Join(report.Stores, ", ")},
		}, ""),
	})

	section := domain.Section{Key: "responses", Title: "Responses", GroupLabel: "Store"}
	if a.req.Flatten {
		section.Columns = []domain.Column{
			countCol(columnEntry, "Entry", 5),
			textCol(columnField, "Field", 40),
			textCol(columnValue, "Value", 0),
		}
	} else {
		section.Columns = []domain.Column{blockCol(columnJSON, "JSON")}
	}

	for _, sid := range report.Stores {
		account := a.accounts[sid]
		status, _ := report.Status(sid)
		if account == "" {
			account = status.Account
		}

		group := domain.Group{Title: fmt.Sprintf("### %s (%s) ###", account, sid)}
		payload, ok := a.payloads[sid]
		switch {
		case !ok && status.Message != "":
			group.Empty = "ERROR: " + status.Message
		case !ok:
			group.Empty = fmt.Sprintf("ERROR: %s", status.Outcome)
		case a.req.Flatten:
			group.Rows = flattenedRows(payload)
		default:
			group.Rows = []domain.Row{{columnJSON: utils.PrettyJson(payload)}}
		}
		section.Groups = append(section.Groups, group)
	}

	report.Sections = append(report.Sections, section)
}

// flattenedRows gera uma linha por campo folha de cada entrada
func flattenedRows(payload any) []domain.Row {
	entries, ok := payload.([]any)
	if !ok {
		entries = []any{payload}
	}

	var rows []domain.Row
	for i, entry := range entries {
		for _, f := range utils.FlattenJSON(entry) {
			rows = append(rows, domain.Row{
				columnEntry: float64(i + 1),
				columnField: f.Key,
				columnValue: utils.FormatScalar(f.Value),
			})
		}
	}
	return rows
}
