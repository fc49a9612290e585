package liveiq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/mocks"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Fetch: config.Fetch{
			MaxAttempts: 3,
			MinBackoff:  time.Millisecond,
			MaxBackoff:  2 * time.Millisecond,
		},
		Connectivity: config.Connectivity{Enabled: true, Host: "example.com"},
	}
}

func TestFetchRetry(t *testing.T) {
	creds := liveiqclient.Credentials{ClientID: "cid", ClientKey: "ckey"}
	stores := []string{"100"}
	transient := errors.New("erro ao executar a requisição: timeout")

	tests := []struct {
		name      string
		setup     func(client *mocks.MockClient)
		wantBody  string
		wantErr   error
		rateLimit bool
	}{
		{
			name: "sucesso após uma falha transitória",
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().Fetch(gomock.Any(), liveiqclient.SalesSummary, creds, stores, "2024-01-01", "2024-01-02").
						Return(nil, transient),
					client.EXPECT().Fetch(gomock.Any(), liveiqclient.SalesSummary, creds, stores, "2024-01-01", "2024-01-02").
						Return([]byte(`{"data":[]}`), nil),
				)
			},
			wantBody: `{"data":[]}`,
		},
		{
			name: "desiste depois de três tentativas",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, transient).Times(3)
			},
			wantErr: transient,
		},
		{
			name: "429 não é repetido",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &liveiqclient.RateLimitError{Endpoint: liveiqclient.SalesSummary, StoreIDs: stores}).Times(1)
			},
			rateLimit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := New(testConfig(), client)
			body, err := service.Fetch(context.Background(), liveiqclient.SalesSummary, creds, stores, "2024-01-01", "2024-01-02")

			switch {
			case tt.rateLimit:
				assert.True(t, liveiqclient.IsRateLimited(err))
				var rlErr *liveiqclient.RateLimitError
				assert.ErrorAs(t, err, &rlErr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestListStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListRestaurants(gomock.Any(), gomock.Any()).
		Return([]byte(`[{"restaurantNumber":300},{"restaurantNumber":"25"},{"restaurantNumber":300},{"name":"sem número"}]`), nil)

	stores, err := New(testConfig(), client).ListStores(context.Background(), liveiqclient.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, []string{"25", "300"}, stores)
}

func TestCheckConnection(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		lookup  func(ctx context.Context, host string) ([]string, error)
		wantErr bool
	}{
		{
			name:    "dns resolvido",
			enabled: true,
			lookup: func(ctx context.Context, host string) ([]string, error) {
				return []string{"93.184.216.34"}, nil
			},
		},
		{
			name:    "dns falhou",
			enabled: true,
			lookup: func(ctx context.Context, host string) ([]string, error) {
				return nil, errors.New("no such host")
			},
			wantErr: true,
		},
		{
			name:    "verificação desligada",
			enabled: false,
			lookup: func(ctx context.Context, host string) ([]string, error) {
				return nil, errors.New("não deveria ser chamado")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Connectivity.Enabled = tt.enabled

			service := &LiveIQService{cfg: cfg, lookupHost: tt.lookup}
			err := service.CheckConnection(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoInternet)
				return
			}
			assert.NoError(t, err)
		})
	}
}
