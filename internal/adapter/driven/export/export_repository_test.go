package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutReport(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository(dir)
	key := "reports/weekly-report-2024-01-08.json"

	require.NoError(t, repo.PutReport(context.Background(), "bucket", key, []byte("[]")))
	// a segunda escrita no mesmo dia sobrescreve a primeira
	require.NoError(t, repo.PutReport(context.Background(), "bucket", key, []byte(`[{"Estimated":true}]`)))

	got, err := os.ReadFile(filepath.Join(dir, "bucket", "reports", "weekly-report-2024-01-08.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"Estimated":true}]`, string(got))
}

func TestLocation(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository(dir)

	loc := repo.Location("bucket", "reports/r.json")
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(dir, "bucket", "reports", "r.json")), loc)
}

func TestPutReport_RejectsEscapingKey(t *testing.T) {
	repo := NewExportRepository(t.TempDir())

	err := repo.PutReport(context.Background(), "bucket", "../../etc/passwd", []byte("x"))
	assert.ErrorContains(t, err, "escapes output directory")
}

func TestPutReport_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewExportRepository(t.TempDir()).PutReport(ctx, "bucket", "k.json", []byte("[]"))
	assert.ErrorIs(t, err, context.Canceled)
}
