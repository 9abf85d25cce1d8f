package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// Load monta a configuração final: valores padrão, depois o arquivo (se houver),
// depois as variáveis de ambiente.
func (r *ConfigRepositoryImpl) Load(filePath string) (*types.Config, error) {
	cfg := types.DefaultConfig()

	if filePath != "" {
		fileCfg, err := r.LoadConfigFile(filePath)
		if err != nil {
			return nil, err
		}
		mergeConfig(cfg, fileCfg)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment variables: %w", err)
	}

	return cfg, nil
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// mergeConfig copia para dst os campos não vazios de src.
func mergeConfig(dst, src *types.Config) {
	setString := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}

	setString(&dst.Profile, src.Profile)
	setString(&dst.Region, src.Region)
	setString(&dst.SecretID, src.SecretID)
	setString(&dst.SecretKey, src.SecretKey)
	setString(&dst.Channel, src.Channel)
	setString(&dst.Username, src.Username)
	setString(&dst.IconEmoji, src.IconEmoji)
	setString(&dst.Color, src.Color)
	setString(&dst.GroupBy, src.GroupBy)
	setString(&dst.Timezone, src.Timezone)
	setString(&dst.ConsoleURL, src.ConsoleURL)
	setString(&dst.ReportName, src.ReportName)
	setString(&dst.Dir, src.Dir)

	if src.HTTPTimeout > 0 {
		dst.HTTPTimeout = src.HTTPTimeout
	}
	if len(src.ReportType) > 0 {
		dst.ReportType = src.ReportType
	}
	if src.DryRun {
		dst.DryRun = true
	}
	if src.Preview {
		dst.Preview = true
	}
}
