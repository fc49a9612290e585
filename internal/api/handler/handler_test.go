package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/internal/api/handler/router"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/middleware"
)

// serve executa a requisição pelas rotas informadas, com uma sessão aberta no contexto
func serve(t *testing.T, routes []router.Route, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := context.WithValue(req.Context(), middleware.ContextKeySession, &domain.Claims{SessionID: "s-1"})

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func sampleReport() *domain.Report {
	return &domain.Report{
		ID:          "r-1",
		Type:        domain.ReportSales,
		Title:       "Sales Report",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-02",
		Stores:      []string{"25"},
		GeneratedAt: time.Date(2024, 1, 3, 8, 30, 0, 0, time.UTC),
		Sections: []domain.Section{
			{
				Key:   "store_summary",
				Title: "Store Summary",
				Columns: []domain.Column{
					{Key: "store", Header: "Store", Kind: domain.ColumnText, Width: 6},
					{Key: "sales", Header: "Sales", Kind: domain.ColumnMoney, Width: 10},
				},
				Groups: []domain.Group{{Rows: []domain.Row{{"store": "25", "sales": 1234.5}}}},
			},
		},
		StoreStatus: []domain.StoreStatus{{StoreID: "25", Account: "Conta A", Outcome: domain.OutcomeOK}},
	}
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	require.NoError(t, err)
}

func TestDecodeBody(t *testing.T) {
	var v map[string]string

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.NoError(t, decodeBody(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{invalido"))
	assert.Error(t, decodeBody(req, &v))
}
