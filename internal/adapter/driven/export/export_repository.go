package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportRepositoryImpl grava relatórios no sistema de arquivos local,
// em <dir>/<bucket>/<key>. Usado no modo --dry-run no lugar do S3.
type ExportRepositoryImpl struct {
	dir string
}

// NewExportRepository cria uma nova implementação local do ReportRepository.
// An empty dir means the current working directory.
func NewExportRepository(dir string) *ExportRepositoryImpl {
	return &ExportRepositoryImpl{dir: dir}
}

// PutReport escreve o corpo do relatório, sobrescrevendo o arquivo se existir.
func (r *ExportRepositoryImpl) PutReport(ctx context.Context, bucket, key string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	outputFilename, err := r.resolvePath(bucket, key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputFilename), 0755); err != nil {
		return fmt.Errorf("error creating output directory '%s': %w", filepath.Dir(outputFilename), err)
	}

	if err := os.WriteFile(outputFilename, body, 0644); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}

// Location retorna o caminho absoluto do arquivo como URI file://.
func (r *ExportRepositoryImpl) Location(bucket, key string) string {
	path, err := r.resolvePath(bucket, key)
	if err != nil {
		return filepath.Join(bucket, filepath.FromSlash(key))
	}
	return "file://" + filepath.ToSlash(path)
}

// resolvePath garante que a chave não escape do diretório de saída.
func (r *ExportRepositoryImpl) resolvePath(bucket, key string) (string, error) {
	dir := r.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(absDir, bucket, filepath.FromSlash(key))
	rel, err := filepath.Rel(absDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("report key %q escapes output directory %s", key, absDir)
	}
	return path, nil
}
