package repository

import (
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	Load(filePath string) (*types.Config, error)
}
