package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/wsscc2021/aws-cost-reporter/internal/application/usecase"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
	"github.com/wsscc2021/aws-cost-reporter/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	factory    usecase.Factory
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(configRepo repository.ConfigRepository, console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		console:    console,
	}

	rootCmd := &cobra.Command{
		Use:           "aws-cost-reporter",
		Short:         "Send yesterday's and month-to-date AWS costs to Slack",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Reporter version: %s\n" .Version}}`)

	// Compartilhada com o subcomando lambda
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")

	rootCmd.Flags().StringP("profile", "p", "", "AWS profile to use")
	rootCmd.Flags().StringP("region", "r", "", "AWS region for Secrets Manager and STS")

	rootCmd.Flags().StringP("group-by", "g", "", "Group costs by: account, service, or total")
	rootCmd.Flags().String("date", "", "Run as if today were this date (YYYY-MM-DD)")
	rootCmd.Flags().Bool("dry-run", false, "Build the report and print it without posting to Slack")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().Bool("no-banner", false, "Do not print the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// AddCommand registers a subcommand on the root command.
func (app *CLIApp) AddCommand(cmd *cobra.Command) {
	app.rootCmd.AddCommand(cmd)
}

// SetUseCaseFactory sets the factory used to build the report use case.
func (app *CLIApp) SetUseCaseFactory(factory usecase.Factory) {
	app.factory = factory
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	profile, _ := cmd.Flags().GetString("profile")
	region, _ := cmd.Flags().GetString("region")
	groupBy, _ := cmd.Flags().GetString("group-by")
	date, _ := cmd.Flags().GetString("date")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")
	noBanner, _ := cmd.Flags().GetBool("no-banner")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Profile:    profile,
		Region:     region,
		GroupBy:    groupBy,
		Date:       date,
		DryRun:     dryRun,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		NoBanner:   noBanner,
	}, nil
}

// applyArgs sobrescreve a configuração com as flags informadas.
func applyArgs(cfg *types.Config, args *types.CLIArgs) {
	if args.Profile != "" {
		cfg.Profile = args.Profile
	}
	if args.Region != "" {
		cfg.Region = args.Region
	}
	if args.GroupBy != "" {
		cfg.GroupBy = args.GroupBy
	}
	if args.DryRun {
		cfg.DryRun = true
	}
	if args.ReportName != "" {
		cfg.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if args.Dir != "" {
		cfg.Dir = args.Dir
	}
	cfg.Preview = true
}

// resolveToday devolve a data de referência da execução no fuso configurado.
func resolveToday(date string, loc *time.Location, now time.Time) (time.Time, error) {
	if date == "" {
		return now.In(loc), nil
	}
	today, err := time.ParseInLocation(entity.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return today, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner()
	}

	cfg, err := app.configRepo.Load(cliArgs.ConfigFile)
	if err != nil {
		return err
	}
	applyArgs(cfg, cliArgs)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	today, err := resolveToday(cliArgs.Date, loc, time.Now())
	if err != nil {
		return err
	}

	if app.factory == nil {
		return fmt.Errorf("report use case is not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reportUseCase, err := app.factory(ctx, cfg, app.console)
	if err != nil {
		return err
	}

	_, err = reportUseCase.Run(ctx, today)
	return err
}
