package reporting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	liveiqmocks "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/mocks"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository/mocks"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/log"
	"go.uber.org/mock/gomock"
)

type fetchFunc func(ctx context.Context, ep liveiqclient.Endpoint, creds liveiqclient.Credentials, ids []string, start, end string) ([]byte, error)

type serviceFixture struct {
	service    *Service
	integrator *liveiqmocks.MockLiveIQIntegrator
	accounts   *mocks.MockAccountRepository
	prefs      *mocks.MockPreferencesRepository
	errorLog   *bytes.Buffer
}

func newFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		integrator: liveiqmocks.NewMockLiveIQIntegrator(ctrl),
		accounts:   mocks.NewMockAccountRepository(ctrl),
		prefs:      mocks.NewMockPreferencesRepository(ctrl),
		errorLog:   &bytes.Buffer{},
	}
	f.service = NewService(&config.Config{}, f.integrator, f.accounts, f.prefs, log.NewErrorLogWriter(f.errorLog))
	f.service.now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

// ready configura as chamadas que antecedem a busca
func (f *serviceFixture) ready(accounts []domain.Account, fetch fetchFunc) {
	f.accounts.EXPECT().ListAccounts().Return(accounts, nil)
	f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(nil)
	f.prefs.EXPECT().GetMaxWorkers().Return(4, nil)
	f.integrator.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(fetch).
		AnyTimes()
}

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func account(name, id string, stores ...string) domain.Account {
	return domain.Account{Name: name, ClientID: id, ClientKey: "key-" + id, StoreIDs: stores, Status: domain.AccountStatusOK}
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.ReportRequest
		wantErr error
	}{
		{
			name:    "período invertido",
			req:     domain.ReportRequest{Type: domain.ReportSales, StartDate: day("2024-01-10"), EndDate: day("2024-01-01"), StoreIDs: []string{"100"}},
			wantErr: ErrInvertedRange,
		},
		{
			name:    "período maior que sete dias",
			req:     domain.ReportRequest{Type: domain.ReportThirdParty, StartDate: day("2024-01-01"), EndDate: day("2024-01-08"), StoreIDs: []string{"100"}},
			wantErr: ErrRangeTooLarge,
		},
		{
			name:    "período maior que trinta dias",
			req:     domain.ReportRequest{Type: domain.ReportSales, StartDate: day("2024-01-01"), EndDate: day("2024-01-31"), StoreIDs: []string{"100"}},
			wantErr: ErrRangeTooLarge,
		},
		{
			name:    "endpoint desconhecido",
			req:     domain.ReportRequest{Type: domain.ReportCustom, StartDate: day("2024-01-01"), EndDate: day("2024-01-01"), Endpoint: "Nada"},
			wantErr: ErrUnknownEndpoint,
		},
		{
			name:    "tipo desconhecido",
			req:     domain.ReportRequest{Type: "weather", StartDate: day("2024-01-01"), EndDate: day("2024-01-01")},
			wantErr: domain.ErrUnknownReportType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma expectativa: qualquer chamada aos mocks falha o teste
			f := newFixture(t)

			report, err := f.service.Run(context.Background(), &tt.req)

			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunNoStoresSelected(t *testing.T) {
	f := newFixture(t)
	f.prefs.EXPECT().GetSelection().Return(domain.Selection{Stores: []string{}}, nil)

	_, err := f.service.Run(context.Background(), &domain.ReportRequest{
		Type: domain.ReportSales, StartDate: day("2024-01-01"), EndDate: day("2024-01-01"),
	})

	assert.ErrorIs(t, err, ErrNoStoresSelected)
	var reportErr *ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, "VAL_006", reportErr.ErrorCode())
}

func TestRunNoValidAccounts(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().ListAccounts().Return([]domain.Account{{Name: "sem credenciais", StoreIDs: []string{"100"}}}, nil)

	_, err := f.service.Run(context.Background(), &domain.ReportRequest{
		Type: domain.ReportSales, StartDate: day("2024-01-01"), EndDate: day("2024-01-01"), StoreIDs: []string{"100"},
	})

	assert.ErrorIs(t, err, ErrNoValidAccounts)
}

func TestRunNoInternet(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().ListAccounts().Return([]domain.Account{account("A", "a", "100")}, nil)
	f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(fmt.Errorf("%w: dns", liveiq.ErrNoInternet))

	_, err := f.service.Run(context.Background(), &domain.ReportRequest{
		Type: domain.ReportSales, StartDate: day("2024-01-01"), EndDate: day("2024-01-01"), StoreIDs: []string{"100"},
	})

	assert.ErrorIs(t, err, liveiq.ErrNoInternet)
	assert.Contains(t, f.errorLog.String(), "No internet connection")
}

func TestRunSalesUsesSelection(t *testing.T) {
	f := newFixture(t)
	f.prefs.EXPECT().GetSelection().Return(domain.Selection{Stores: []string{"200", "100", "999"}}, nil)

	var calls int32
	f.ready([]domain.Account{account("A", "a", "100", "200")}, func(ctx context.Context, ep liveiqclient.Endpoint, creds liveiqclient.Credentials, ids []string, start, end string) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		assert.NotEqual(t, "999", ids[0], "loja sem conta não deve ser consultada")

		switch ep {
		case liveiqclient.SalesSummary:
			return []byte(`{"data":[{"netSales":300,"tax":30,"units":40,"transactions":20}]}`), nil
		case liveiqclient.DailySalesSummary:
			if ids[0] == "200" {
				return []byte(`{"data":[]}`), nil
			}
			return []byte(`{"data":[
				{"businessDate":"2024-01-01T00:00:00","netSales":100.1,"tax":10.01,"unitCount":15,"transactionCount":7,"cashCardTotal":80.5,"thirdPartySaleTotal":19.6,"thirdPartyTransactionCount":2},
				{"businessDate":"2024-01-02T00:00:00","netSales":199.9,"tax":19.99,"units":25,"transactions":13,"cashCardTotal":150.25,"thirdPartySales":49.65,"thirdPartyTransactions":3}
			]}`), nil
		}
		return nil, errors.New("endpoint inesperado")
	})

	report, err := f.service.Run(context.Background(), &domain.ReportRequest{
		Type: domain.ReportSales, StartDate: day("2024-01-01"), EndDate: day("2024-01-02"),
	})
	require.NoError(t, err)

	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	assert.Equal(t, []string{"100", "200", "999"}, report.Stores)
	assert.Equal(t, "Sales Report", report.Title)
	assert.Equal(t, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), report.GeneratedAt)

	st, _ := report.Status("100")
	assert.Equal(t, domain.OutcomeOK, st.Outcome)
	st, _ = report.Status("999")
	assert.Equal(t, domain.OutcomeNoData, st.Outcome)
	assert.Empty(t, st.Account)

	summary := report.Section("store_summary").Groups[0].Rows
	require.Len(t, summary, 2)
	assert.Equal(t, "100", summary[0][columnStore])
	assert.Equal(t, allStoresLabel, summary[1][columnStore])

	perStore := report.Section("per_store")
	days := perStore.Group("100").Rows
	require.Len(t, days, 2)

	for _, field := range salesFields {
		var sum float64
		for _, row := range days {
			sum += row[field].(float64)
		}
		assert.InDelta(t, summary[0][field].(float64), sum, 1e-6, "campo %s", field)
	}
	assert.InDelta(t, 300.0, summary[0][fieldSales].(float64), 1e-6)
	assert.InDelta(t, 5.0, summary[0][fieldTPTxns].(float64), 1e-6)

	assert.Empty(t, perStore.Group("200").Rows)
	assert.Equal(t, "No data for this store.", perStore.Group("200").Empty)
	assert.Len(t, report.Section("per_day").Groups, 2)
}

func TestRunRateLimitDisablesAccountOnce(t *testing.T) {
	f := newFixture(t)

	f.ready([]domain.Account{account("A", "a", "100"), account("B", "b", "200")}, func(ctx context.Context, ep liveiqclient.Endpoint, creds liveiqclient.Credentials, ids []string, start, end string) ([]byte, error) {
		if creds.ClientID == "a" {
			return nil, &liveiqclient.RateLimitError{Endpoint: ep, StoreIDs: ids}
		}
		return []byte(`{"data":[{"totalSales":50,"totalNetSales":45,"totalTransactions":3,
			"providers":[{"provider":"DoorDash","transactions":2,"netSales":30,"sales":33}]}]}`), nil
	})
	f.accounts.EXPECT().DisableRateLimited("A").Return(true, nil).Times(1)

	report, err := f.service.Run(context.Background(), &domain.ReportRequest{
		Type: domain.ReportThirdParty, StartDate: day("2024-01-01"), EndDate: day("2024-01-03"), StoreIDs: []string{"100", "200"},
	})
	require.NoError(t, err)

	st, _ := report.Status("100")
	assert.Equal(t, domain.OutcomeRateLimited, st.Outcome)
	st, _ = report.Status("200")
	assert.Equal(t, domain.OutcomeOK, st.Outcome)

	assert.Equal(t, []string{"Account A disabled due to rate limits. Clear via Check Rate Limits."}, report.Notices)
	assert.Contains(t, f.errorLog.String(), "Rate limit hit for account A")

	rows := report.Section("summary").Groups[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "200", rows[0][columnStore])
	assert.InDelta(t, 150.0, rows[0][fieldTotalSales].(float64), 1e-9)
	assert.InDelta(t, 6.0, rows[0]["dd_txns"].(float64), 1e-9)
	assert.Equal(t, totalLabel, rows[1][columnStore])
}

func TestRunIgnoresCallerCancellation(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.ready([]domain.Account{account("A", "a", "100", "200")}, func(fetchCtx context.Context, ep liveiqclient.Endpoint, creds liveiqclient.Credentials, ids []string, start, end string) ([]byte, error) {
		// o cliente desconecta no meio da execução
		cancel()
		if err := fetchCtx.Err(); err != nil {
			return nil, err
		}
		return []byte(`{"data":[{"totalSales":10,"totalNetSales":9,"totalTransactions":1}]}`), nil
	})

	report, err := f.service.Run(ctx, &domain.ReportRequest{
		Type: domain.ReportThirdParty, StartDate: day("2024-01-01"), EndDate: day("2024-01-02"), StoreIDs: []string{"100", "200"},
	})
	require.NoError(t, err)

	for _, id := range []string{"100", "200"} {
		st, ok := report.Status(id)
		require.True(t, ok)
		assert.Equal(t, domain.OutcomeOK, st.Outcome, "loja %s", id)
	}
	assert.NotContains(t, f.errorLog.String(), "context canceled")
}

func TestRunRateLimitMarksPartialData(t *testing.T) {
	f := newFixture(t)
	var calls int32

	f.ready([]domain.Account{account("A", "a", "100")}, func(ctx context.Context, ep liveiqclient.Endpoint, creds liveiqclient.Credentials, ids []string, start, end string) ([]byte, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return []byte(`{"data":[{"totalSales":20,"totalNetSales":18,"totalTransactions":2}]}`), nil
		}
		return nil, &liveiqclient.RateLimitError{Endpoint: ep, StoreIDs: ids}
	})
	f.accounts.EXPECT().DisableRateLimited("A").Return(true, nil).Times(1)

	report, err := f.service.Run(context.Background(), &domain.ReportRequest{
		Type: domain.ReportThirdParty, StartDate: day("2024-01-01"), EndDate: day("2024-01-03"), StoreIDs: []string{"100"},
	})
	require.NoError(t, err)

	st, _ := report.Status("100")
	assert.Equal(t, domain.OutcomeRateLimited, st.Outcome)
	assert.Equal(t, partialDataMessage, st.Message)
}

func TestRunFetchFailureIsLogged(t *testing.T) {
	f := newFixture(t)

	f.ready([]domain.Account{account("A", "a", "100", "200")}, func(ctx context.Context, ep liveiqclient.Endpoint, creds liveiqclient.Credentials, ids []string, start, end string) ([]byte, error) {
		if ids[0] == "100" {
			return nil, errors.New("timeout")
		}
		return []byte(`{"error":"store not found"}`), nil
	})

	report, err := f.service.Run(context.Background(), &domain.ReportRequest{
		Type: domain.ReportTransactions, StartDate: day("2024-01-01"), EndDate: day("2024-01-01"), StoreIDs: []string{"100", "200"},
	})
	require.NoError(t, err)

	st, _ := report.Status("100")
	assert.Equal(t, domain.OutcomeFailed, st.Outcome)
	assert.Equal(t, "timeout", st.Message)

	st, _ = report.Status("200")
	assert.Equal(t, domain.OutcomeFailed, st.Outcome)
	assert.Equal(t, "API error: store not found", st.Message)

	assert.Contains(t, f.errorLog.String(), "[sid=100][Transaction Summary] timeout")
	assert.Contains(t, f.errorLog.String(), "[sid=200][Transaction Summary] API error: store not found")
}

func TestTypes(t *testing.T) {
	f := newFixture(t)

	types := f.service.Types()
	require.Len(t, types, len(domain.ReportTypes()))
	assert.Equal(t, domain.ReportSales, types[0].Type)
	assert.Equal(t, 30, types[0].MaxDays)
	assert.Equal(t, 7, types[2].MaxDays)
	assert.NotEmpty(t, types[6].Endpoints)
}
