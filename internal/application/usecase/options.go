package usecase

import (
	"context"

	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
)

// Factory monta o caso de uso a partir da configuração final de uma execução.
type Factory func(ctx context.Context, cfg *types.Config, console types.ConsoleInterface) (*ReportUseCase, error)

// OptionsFromConfig converte a configuração carregada em ReportOptions.
func OptionsFromConfig(cfg *types.Config) (ReportOptions, error) {
	groupBy, err := entity.ParseGroupBy(cfg.GroupBy)
	if err != nil {
		return ReportOptions{}, err
	}

	return ReportOptions{
		GroupBy:    groupBy,
		DryRun:     cfg.DryRun,
		Preview:    cfg.Preview,
		ReportName: cfg.ReportName,
		ReportType: cfg.ReportType,
		Dir:        cfg.Dir,
	}, nil
}
