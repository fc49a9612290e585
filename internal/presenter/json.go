package presenter

import (
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonColumn struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}

type jsonGroup struct {
	Title string           `json:"title,omitempty"`
	Rows  []map[string]any `json:"rows"`
	Empty string           `json:"empty,omitempty"`
}

type jsonSection struct {
	Key        string       `json:"key"`
	Title      string       `json:"title"`
	GroupLabel string       `json:"group_label,omitempty"`
	Columns    []jsonColumn `json:"columns"`
	Groups     []jsonGroup  `json:"groups"`
}

// Document é a forma JSON do relatório, usada no download e na API
type Document struct {
	ID          string               `json:"id"`
	Type        domain.ReportType    `json:"type"`
	Title       string               `json:"title"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Stores      []string             `json:"stores"`
	GeneratedAt string               `json:"generated_at"`
	Sections    []jsonSection        `json:"sections"`
	StoreStatus []domain.StoreStatus `json:"store_status"`
	Notices     []string             `json:"notices"`
}

func NewDocument(report *domain.Report) Document {
	doc := Document{
		ID:          report.ID,
		Type:        report.Type,
		Title:       report.Title,
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		Stores:      nonNil(report.Stores),
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Sections:    make([]jsonSection, 0, len(report.Sections)),
		StoreStatus: report.StoreStatus,
		Notices:     nonNil(report.Notices),
	}
	if doc.StoreStatus == nil {
		doc.StoreStatus = []domain.StoreStatus{}
	}

	for _, s := range report.Sections {
		js := jsonSection{
			Key:        s.Key,
			Title:      s.Title,
			GroupLabel: s.GroupLabel,
			Columns:    make([]jsonColumn, 0, len(s.Columns)),
			Groups:     make([]jsonGroup, 0, len(s.Groups)),
		}
		for _, c := range s.Columns {
			js.Columns = append(js.Columns, jsonColumn{Key: c.Key, Header: c.Header})
		}
		for _, g := range s.Groups {
			jg := jsonGroup{Title: g.Title, Empty: g.Empty, Rows: make([]map[string]any, 0, len(g.Rows))}
			for _, row := range g.Rows {
				out := make(map[string]any, len(s.Columns))
				for _, c := range s.Columns {
					out[c.Key] = cellValue(c, row[c.Key])
				}
				jg.Rows = append(jg.Rows, out)
			}
			js.Groups = append(js.Groups, jg)
		}
		doc.Sections = append(doc.Sections, js)
	}

	return doc
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, report *domain.Report) error {
	data, err := json.MarshalIndent(NewDocument(report), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
