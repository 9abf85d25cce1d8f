package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wsscc2021/aws-cost-reporter/internal/adapter/driven/aws"
	"github.com/wsscc2021/aws-cost-reporter/internal/adapter/driven/config"
	"github.com/wsscc2021/aws-cost-reporter/internal/adapter/driven/export"
	"github.com/wsscc2021/aws-cost-reporter/internal/adapter/driven/slack"
	"github.com/wsscc2021/aws-cost-reporter/internal/adapter/driving/cli"
	"github.com/wsscc2021/aws-cost-reporter/internal/application/usecase"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
	"github.com/wsscc2021/aws-cost-reporter/pkg/console"
)

// buildUseCase monta os repositórios AWS, o notifier e o exportador para uma execução.
func buildUseCase(ctx context.Context, cfg *types.Config, consoleImpl types.ConsoleInterface) (*usecase.ReportUseCase, error) {
	opts, err := usecase.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := aws.LoadAWSConfig(ctx, cfg.Profile, cfg.Region)
	if err != nil {
		return nil, err
	}
	clients := aws.NewClients(awsCfg)

	secretRepo := aws.NewSecretRepository(clients.SecretsManager, cfg.SecretID, cfg.SecretKey)
	notifier := slack.NewNotifier(secretRepo, slack.Options{
		Channel:    cfg.Channel,
		Username:   cfg.Username,
		IconEmoji:  cfg.IconEmoji,
		Color:      cfg.Color,
		ConsoleURL: cfg.ConsoleURL,
		Timeout:    cfg.Timeout(),
	})

	return usecase.NewReportUseCase(
		aws.NewCostRepository(clients.CostExplorer),
		aws.NewAccountRepository(clients.Organizations),
		aws.NewIdentityRepository(clients.STS),
		notifier,
		export.NewExportRepository(),
		consoleImpl,
		opts,
	), nil
}

func main() {
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(configRepo, consoleImpl)
	app.SetUseCaseFactory(buildUseCase)
	app.AddCommand(cli.NewLambdaCommand(configRepo, buildUseCase))

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
