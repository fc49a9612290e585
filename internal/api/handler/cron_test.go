package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCronJob struct {
	triggered int
	busy      bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered++
	return !f.busy
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": f.busy}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		cronType      string
		busy          bool
		wantStatus    int
		wantTriggered int
		wantBody      string
	}{
		{name: "verificação de contas", cronType: "account-check", wantStatus: http.StatusAccepted, wantTriggered: 1, wantBody: `"started":{"account-check":true}`},
		{name: "todas", cronType: "all", wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "já em execução", cronType: "account-check", busy: true, wantStatus: http.StatusAccepted, wantTriggered: 1, wantBody: `"started":{"account-check":false}`},
		{name: "tipo inválido", cronType: "meta", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{busy: tt.busy}

			rec := serve(t, CronJobs(CronJobServices{AccountStatusCheck: job}), http.MethodPost, "/v1/cron/"+tt.cronType+"/run", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rec := serve(t, CronJobs(CronJobServices{AccountStatusCheck: &fakeCronJob{busy: true}}), http.MethodGet, "/v1/cron/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"account-check":{"running":true}}`, rec.Body.String())
}
