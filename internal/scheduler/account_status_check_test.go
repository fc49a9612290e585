package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/account/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, unlocked bool) (*AccountStatusCheckService, *mocks.MockAccountService) {
	ctrl := gomock.NewController(t)
	checker := mocks.NewMockAccountService(ctrl)

	cfg := &config.Config{AccountCheck: config.AccountCheck{CronSchedule: "0 */6 * * *", Enabled: true}}
	service := NewAccountStatusCheckService(checker, func() bool { return unlocked }, cfg)
	return service, checker
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name        string
		unlocked    bool
		setup       func(checker *mocks.MockAccountService)
		wantErr     bool
		wantResults int
		wantError   string
	}{
		{
			name:     "configuração bloqueada não chama o serviço",
			unlocked: false,
			setup:    func(checker *mocks.MockAccountService) {},
		},
		{
			name:     "guarda os resultados",
			unlocked: true,
			setup: func(checker *mocks.MockAccountService) {
				checker.EXPECT().CheckAll(gomock.Any()).Return([]domain.AccountCheckResult{
					{Name: "Conta A", Status: domain.AccountStatusOK, Stores: 3},
					{Name: "Conta B", Status: domain.AccountStatusRateLimited},
				}, nil)
			},
			wantResults: 2,
		},
		{
			name:     "guarda o erro",
			unlocked: true,
			setup: func(checker *mocks.MockAccountService) {
				checker.EXPECT().CheckAll(gomock.Any()).Return(nil, errors.New("sem internet"))
			},
			wantErr:   true,
			wantError: "sem internet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, checker := newTestService(t, tt.unlocked)
			tt.setup(checker)

			err := service.RunCheck(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			assert.Equal(t, tt.wantError, status["last_error"])
			assert.Len(t, status["last_results"], tt.wantResults)
		})
	}
}

func TestTriggerManualSync(t *testing.T) {
	service, checker := newTestService(t, true)

	done := make(chan struct{})
	checker.EXPECT().CheckAll(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.AccountCheckResult, error) {
		defer close(done)
		return []domain.AccountCheckResult{{Name: "Conta A", Status: domain.AccountStatusOK}}, nil
	})

	require.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("verificação manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestStartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewAccountStatusCheckService(mocks.NewMockAccountService(ctrl), nil, &config.Config{})

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
}
