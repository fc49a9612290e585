package exporting

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/presenter"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

func report() *domain.Report {
	return &domain.Report{
		ID:          "r-1",
		Type:        domain.ReportThirdParty,
		Title:       "3rd-Party Sales",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-01",
		Stores:      []string{"25"},
		GeneratedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestExportCreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	service := NewService(config.Storage{ReportsDir: dir})

	exported, err := service.Export(report(), presenter.FormatTXT)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^3rd-Party-[A-Z0-9]{4}\.txt$`), exported.Name)
	assert.Equal(t, filepath.Join(dir, exported.Name), exported.Path)

	data, err := os.ReadFile(exported.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "3rd-Party Sales: 2024-01-01 → 2024-01-01")
	assert.Equal(t, len(data), exported.Size)
}

func TestExportRetriesOnCollision(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3rd-Party-AAAA.csv"), []byte("x"), 0o644))

	suffixes := []string{"AAAA", "BBBB"}
	service := NewService(config.Storage{ReportsDir: dir})
	service.suffix = func() (string, error) {
		s := suffixes[0]
		suffixes = suffixes[1:]
		return s, nil
	}

	exported, err := service.Export(report(), presenter.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "3rd-Party-BBBB.csv", exported.Name)

	original, err := os.ReadFile(filepath.Join(dir, "3rd-Party-AAAA.csv"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(original))
}

func TestExportGivesUpAfterCollisions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3rd-Party-AAAA.json"), []byte("x"), 0o644))

	service := NewService(config.Storage{ReportsDir: dir})
	service.maxAttempts = 3
	service.suffix = func() (string, error) { return "AAAA", nil }

	_, err := service.Export(report(), presenter.FormatJSON)
	assert.ErrorIs(t, err, ErrExportFailed)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, apiErrors.ErrExportOperation, exportErr.ErrorCode())
}

func TestExportUnknownFormat(t *testing.T) {
	service := NewService(config.Storage{ReportsDir: t.TempDir()})

	_, err := service.Export(report(), presenter.Format("doc"))
	assert.ErrorIs(t, err, presenter.ErrUnknownFormat)
}
