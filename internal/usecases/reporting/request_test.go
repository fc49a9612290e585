package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

func TestBuildRequest(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		reportType string
		body       domain.ReportRequestBody
		wantStart  string
		wantEnd    string
		wantPreset string
		wantStores []string
		wantCode   string
	}{
		{
			name:       "período pré-definido substitui as datas",
			reportType: "sales",
			body:       domain.ReportRequestBody{Preset: "Past 7 Days", StartDate: "2020-01-01", EndDate: "2020-01-01"},
			wantStart:  "2024-03-03",
			wantEnd:    "2024-03-09",
			wantPreset: "Past 7 Days",
		},
		{
			name:       "datas explícitas equivalentes a ontem",
			reportType: "labor",
			body:       domain.ReportRequestBody{StartDate: "2024-03-09", EndDate: "2024-03-09", Stores: []string{"1, 2", "3"}},
			wantStart:  "2024-03-09",
			wantEnd:    "2024-03-09",
			wantPreset: "Yesterday",
			wantStores: []string{"1", "2", "3"},
		},
		{
			name:       "datas quaisquer viram Custom",
			reportType: "sales",
			body:       domain.ReportRequestBody{StartDate: "2024-01-01", EndDate: "2024-01-05"},
			wantStart:  "2024-01-01",
			wantEnd:    "2024-01-05",
			wantPreset: "Custom",
		},
		{
			name:       "tipo desconhecido",
			reportType: "weather",
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "preset desconhecido",
			reportType: "sales",
			body:       domain.ReportRequestBody{Preset: "Past 9 Days"},
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "data inválida",
			reportType: "sales",
			body:       domain.ReportRequestBody{StartDate: "01/01/2024", EndDate: "2024-01-02"},
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest(tt.reportType, tt.body, now)

			if tt.wantCode != "" {
				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, tt.wantCode, reportErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, req.Start())
			assert.Equal(t, tt.wantEnd, req.End())
			assert.Equal(t, tt.wantPreset, req.Preset)
			if tt.wantStores != nil {
				assert.Equal(t, tt.wantStores, req.StoreIDs)
			}
		})
	}
}
