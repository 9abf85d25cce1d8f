package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
	"github.com/wsscc2021/aws-cost-reporter/pkg/version"
)

// ReportOptions controla o que uma execução faz além de montar os relatórios.
type ReportOptions struct {
	GroupBy    entity.GroupBy
	DryRun     bool
	Preview    bool
	ReportName string
	ReportType []string
	Dir        string
}

// ReportUseCase orchestrates one cost report run.
type ReportUseCase struct {
	costRepo     repository.CostRepository
	accountRepo  repository.AccountRepository
	identityRepo repository.IdentityRepository
	notifier     repository.Notifier
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface
	opts         ReportOptions
	newRunID     func() string
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	costRepo repository.CostRepository,
	accountRepo repository.AccountRepository,
	identityRepo repository.IdentityRepository,
	notifier repository.Notifier,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	opts ReportOptions,
) *ReportUseCase {
	return &ReportUseCase{
		costRepo:     costRepo,
		accountRepo:  accountRepo,
		identityRepo: identityRepo,
		notifier:     notifier,
		exportRepo:   exportRepo,
		console:      console,
		opts:         opts,
		newRunID:     uuid.NewString,
	}
}

// Run builds the daily and month-to-date reports for the given day and delivers them.
// The first failure aborts the run; export failures are only logged.
func (uc *ReportUseCase) Run(ctx context.Context, today time.Time) (entity.ReportSet, error) {
	reports := entity.ReportSet{
		RunID:   uc.newRunID(),
		GroupBy: uc.opts.GroupBy,
		Today:   today,
	}
	uc.console.LogInfo("Starting cost report run %s for %s (group by %s, aws-cost-reporter %s)", reports.RunID, today.Format(entity.DateLayout), reports.GroupBy.Label(), version.FormatVersion())

	status := uc.console.Status("Collecting cost data...")
	defer status.Stop()

	if uc.identityRepo != nil {
		accountID, err := uc.identityRepo.GetAccountID(ctx)
		if err != nil {
			uc.console.LogWarning("Could not resolve caller account: %s", err)
		} else {
			reports.AccountID = accountID
		}
	}

	var labels entity.AccountLabels
	if uc.opts.GroupBy == entity.GroupByAccount {
		status.Update("Listing organization accounts...")
		var err error
		labels, err = uc.accountRepo.ListAccounts(ctx)
		if err != nil {
			return reports, fmt.Errorf("failed to list accounts: %w", err)
		}
	}

	var err error
	status.Update("Querying daily costs...")
	reports.Daily, err = uc.buildReport(ctx, entity.GranularityDaily, today, labels)
	if err != nil {
		return reports, fmt.Errorf("failed to build daily report: %w", err)
	}

	status.Update("Querying month-to-date costs...")
	reports.Monthly, err = uc.buildReport(ctx, entity.GranularityMonthly, today, labels)
	if err != nil {
		return reports, fmt.Errorf("failed to build monthly report: %w", err)
	}
	status.Stop()

	if uc.opts.Preview || uc.opts.DryRun {
		uc.displayReports(reports)
	}

	if uc.opts.DryRun {
		uc.console.LogWarning("Dry run: skipping slack notification")
	} else {
		if err := uc.notifier.Send(ctx, reports); err != nil {
			return reports, fmt.Errorf("failed to send report: %w", err)
		}
		uc.console.LogSuccess("Successfully sent cost report to slack channel")
	}

	uc.exportReports(reports)

	return reports, nil
}

func (uc *ReportUseCase) buildReport(ctx context.Context, granularity entity.Granularity, today time.Time, labels entity.AccountLabels) (entity.Report, error) {
	window, err := entity.NewTimeWindow(granularity, today)
	if err != nil {
		return entity.Report{}, err
	}

	total, err := uc.costRepo.QueryCost(ctx, entity.GroupByTotal, window)
	if err != nil {
		return entity.Report{}, err
	}

	grouped := total
	if uc.opts.GroupBy != entity.GroupByTotal {
		grouped, err = uc.costRepo.QueryCost(ctx, uc.opts.GroupBy, window)
		if err != nil {
			return entity.Report{}, err
		}
	}

	fields, err := Aggregate(grouped, total, labels)
	if err != nil {
		return entity.Report{}, err
	}

	return entity.Report{
		Title:  window.Title(),
		Window: window,
		Fields: fields,
	}, nil
}

// displayReports exibe os dois relatórios como tabelas no console.
func (uc *ReportUseCase) displayReports(reports entity.ReportSet) {
	for _, report := range reports.Reports() {
		table := uc.console.CreateTable()
		table.AddColumn(report.Title)
		table.AddColumn("Cost")
		for _, field := range report.Fields {
			table.AddRow(field.Title, field.Value)
		}
		uc.console.Println(table.Render())
	}
}

// exportReports grava o relatório nos formatos pedidos.
func (uc *ReportUseCase) exportReports(reports entity.ReportSet) {
	if uc.exportRepo == nil || uc.opts.ReportName == "" {
		return
	}

	for _, reportType := range uc.opts.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(reports, uc.opts.ReportName, uc.opts.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(reports, uc.opts.ReportName, uc.opts.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(reports, uc.opts.ReportName, uc.opts.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
		}
	}
}
