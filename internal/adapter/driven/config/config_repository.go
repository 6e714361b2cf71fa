package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-cost-report-go/internal/domain/repository"
	"github.com/diillson/aws-cost-report-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile é a variável de ambiente lida no modo Lambda, onde não há flags.
const EnvConfigFile = "COST_REPORT_CONFIG"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

type decodeFunc func(data []byte, v interface{}) error

// decoders mapeia a extensão do arquivo para o formato e o decoder.
var decoders = map[string]struct {
	format string
	decode decodeFunc
}{
	".toml": {"TOML", toml.Unmarshal},
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// LoadConfigFile reads a TOML, YAML or JSON job configuration. ${VAR}
// references are expanded from the environment before decoding, so secrets
// and per-stage names can stay out of the file.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	if err := dec.decode([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s file %s: %w", dec.format, filePath, err)
	}
	return &cfg, nil
}

// Resolve monta a configuração efetiva: padrões < arquivo < overrides.
// An empty filePath skips the file layer.
func Resolve(repo repository.ConfigRepository, filePath string, overrides types.Config) (types.Config, error) {
	cfg := types.DefaultConfig()

	if filePath != "" {
		fileCfg, err := repo.LoadConfigFile(filePath)
		if err != nil {
			return types.Config{}, err
		}
		cfg = cfg.Merge(*fileCfg)
	}

	cfg = cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
