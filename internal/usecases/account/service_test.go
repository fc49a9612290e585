package account

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	liveiqmocks "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/mocks"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository/mocks"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/log"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service    AccountService
	integrator *liveiqmocks.MockLiveIQIntegrator
	accounts   *mocks.MockAccountRepository
	prefs      *mocks.MockPreferencesRepository
	errorLog   *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		integrator: liveiqmocks.NewMockLiveIQIntegrator(ctrl),
		accounts:   mocks.NewMockAccountRepository(ctrl),
		prefs:      mocks.NewMockPreferencesRepository(ctrl),
		errorLog:   &bytes.Buffer{},
	}
	cfg := &config.Config{AccountCheck: config.AccountCheck{MaxConcurrentJobs: 2}}
	f.service = NewService(f.accounts, f.prefs, f.integrator, log.NewErrorLogWriter(f.errorLog), cfg)
	return f
}

func existing() []domain.Account {
	return []domain.Account{
		{Name: "Conta A", ClientID: "cid-a", ClientKey: "key-a", StoreIDs: []string{"300", "25"}, Status: domain.AccountStatusOK},
		{Name: "Conta B", ClientID: "cid-b", ClientKey: "key-b", StoreIDs: []string{"7"}, Status: domain.AccountStatusPending},
	}
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var accErr *AccountError
	require.ErrorAs(t, err, &accErr)
	return accErr.ErrorCode()
}

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name     string
		request  domain.AccountRequest
		setup    func(f *fixture)
		wantErr  error
		wantCode string
		want     *domain.AccountResponse
	}{
		{
			name:     "campos obrigatórios",
			request:  domain.AccountRequest{Name: " ", ClientID: "x", ClientKey: "y"},
			setup:    func(f *fixture) {},
			wantErr:  ErrAccountFieldsRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "par de credenciais repetido",
			request: domain.AccountRequest{Name: "Nova", ClientID: "cid-a", ClientKey: "key-a"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().ListAccounts().Return(existing(), nil)
			},
			wantErr:  ErrDuplicateCredentials,
			wantCode: apiErrors.ErrResourceConflict,
		},
		{
			name:    "limite de requisições na criação",
			request: domain.AccountRequest{Name: "Nova", ClientID: "cid-n", ClientKey: "key-n"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().ListAccounts().Return(existing(), nil)
				f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(nil)
				f.integrator.EXPECT().ListStores(gomock.Any(), gomock.Any()).
					Return(nil, &liveiqclient.RateLimitError{})
			},
			wantErr:  ErrRateLimited,
			wantCode: apiErrors.ErrRateLimited,
		},
		{
			name:    "sem internet",
			request: domain.AccountRequest{Name: "Nova", ClientID: "cid-n", ClientKey: "key-n"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().ListAccounts().Return(existing(), nil)
				f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(errors.New("dns"))
			},
			wantErr:  ErrNoInternet,
			wantCode: apiErrors.ErrCommunication,
		},
		{
			name:    "conta criada com lojas",
			request: domain.AccountRequest{Name: " Nova ", ClientID: "cid-n", ClientKey: "key-n"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().ListAccounts().Return(existing(), nil)
				f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(nil)
				f.integrator.EXPECT().ListStores(gomock.Any(), liveiqclient.Credentials{ClientID: "cid-n", ClientKey: "key-n"}).
					Return([]string{"40", "5"}, nil)
				f.accounts.EXPECT().CreateAccount(domain.Account{
					Name: "Nova", ClientID: "cid-n", ClientKey: "key-n",
					StoreIDs: []string{"40", "5"}, Status: domain.AccountStatusOK,
				}).Return(nil)
			},
			want: &domain.AccountResponse{
				Name: "Nova", ClientID: "cid-n", StoreIDs: []string{"5", "40"},
				Status: domain.AccountStatusOK, Selected: true,
			},
		},
		{
			name:    "conta sem lojas fica EMPTY",
			request: domain.AccountRequest{Name: "Vazia", ClientID: "cid-v", ClientKey: "key-v"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().ListAccounts().Return(existing(), nil)
				f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(nil)
				f.integrator.EXPECT().ListStores(gomock.Any(), gomock.Any()).Return([]string{}, nil)
				f.accounts.EXPECT().CreateAccount(gomock.Any()).Return(nil)
			},
			want: &domain.AccountResponse{
				Name: "Vazia", ClientID: "cid-v", StoreIDs: []string{},
				Status: domain.AccountStatusEmpty, Selected: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			got, err := f.service.CreateAccount(context.Background(), &tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, codeOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateAccountKeepsOwnCredentials(t *testing.T) {
	f := newFixture(t)

	current := existing()[0]
	f.accounts.EXPECT().GetAccount("Conta A").Return(&current, nil)
	f.accounts.EXPECT().ListAccounts().Return(existing(), nil)
	f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(nil)
	f.integrator.EXPECT().ListStores(gomock.Any(), gomock.Any()).Return([]string{"25"}, nil)
	f.accounts.EXPECT().UpdateAccount("Conta A", gomock.Any()).
		DoAndReturn(func(name string, acc domain.Account) error {
			assert.Equal(t, "Conta Renomeada", acc.Name)
			assert.Equal(t, []string{"25"}, acc.StoreIDs)
			return nil
		})

	got, err := f.service.UpdateAccount(context.Background(), "Conta A", &domain.AccountRequest{
		Name: "Conta Renomeada", ClientID: "cid-a", ClientKey: "key-a",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusOK, got.Status)
}

func TestUpdateAccountNotFound(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().GetAccount("X").Return(nil, nil)

	_, err := f.service.UpdateAccount(context.Background(), "X", &domain.AccountRequest{Name: "X", ClientID: "a", ClientKey: "b"})
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, apiErrors.ErrResourceNotFound, codeOf(t, err))
}

func TestDeleteAccount(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().DeleteAccount("Conta A").Return(nil)
	f.accounts.EXPECT().DeleteAccount("X").Return(repository.ErrNotFound)

	require.NoError(t, f.service.DeleteAccount("Conta A"))

	err := f.service.DeleteAccount("X")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestStoreTree(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().ListAccounts().Return(existing(), nil)
	f.prefs.EXPECT().GetSelection().Return(domain.Selection{
		Accounts: []string{"Conta A"},
		Stores:   []string{"25"},
	}, nil)

	tree, err := f.service.StoreTree()
	require.NoError(t, err)

	assert.Equal(t, []domain.AccountNode{
		{
			Name: "Conta A", Status: domain.AccountStatusOK, Selected: true,
			Stores: []domain.StoreNode{{StoreID: "25", Selected: true}, {StoreID: "300"}},
		},
		{
			Name: "Conta B", Status: domain.AccountStatusPending,
			Stores: []domain.StoreNode{{StoreID: "7"}},
		},
	}, tree)
}

func TestCheckAll(t *testing.T) {
	f := newFixture(t)

	accounts := append(existing(), domain.Account{Name: "Conta C", ClientID: "cid-c", ClientKey: "key-c", Status: domain.AccountStatusOK})

	f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(nil)
	f.accounts.EXPECT().ListAccounts().Return(accounts, nil)
	f.integrator.EXPECT().ListStores(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, creds liveiqclient.Credentials) ([]string, error) {
			switch creds.ClientID {
			case "cid-a":
				return []string{"25", "300", "301"}, nil
			case "cid-b":
				return nil, &liveiqclient.RateLimitError{}
			}
			return nil, errors.New("401 unauthorized")
		}).Times(3)

	var saved []domain.Account
	f.accounts.EXPECT().ApplyCheckResults(gomock.Any()).DoAndReturn(func(accs []domain.Account) error {
		saved = accs
		return nil
	})
	f.prefs.EXPECT().ResetSelection().Return(nil)

	results, err := f.service.CheckAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.AccountCheckResult{
		{Name: "Conta A", Status: domain.AccountStatusOK, Stores: 3},
		{Name: "Conta B", Status: domain.AccountStatusRateLimited, Stores: 1, Error: results[1].Error},
		{Name: "Conta C", Status: domain.AccountStatusError, Stores: 0, Error: "401 unauthorized"},
	}, results)
	assert.NotEmpty(t, results[1].Error)

	require.Len(t, saved, 3)
	assert.Equal(t, []string{"25", "300", "301"}, saved[0].StoreIDs)
	assert.Equal(t, domain.AccountStatusRateLimited, saved[1].Status)
	assert.Equal(t, domain.AccountStatusError, saved[2].Status)

	assert.Contains(t, f.errorLog.String(), "[check_rate_limits] Check failed for Conta C: 401 unauthorized")
	assert.NotContains(t, f.errorLog.String(), "Conta B")
}

func TestCheckAllWithoutInternet(t *testing.T) {
	f := newFixture(t)
	f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(errors.New("dns"))

	_, err := f.service.CheckAll(context.Background())
	assert.ErrorIs(t, err, ErrNoInternet)
}

func TestSetMaxWorkers(t *testing.T) {
	f := newFixture(t)
	f.prefs.EXPECT().SetMaxWorkers(12).Return(nil)

	require.NoError(t, f.service.SetMaxWorkers(12))
	assert.ErrorIs(t, f.service.SetMaxWorkers(0), ErrInvalidMaxWorkers)
	assert.ErrorIs(t, f.service.SetMaxWorkers(65), ErrInvalidMaxWorkers)
}
