package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
	"github.com/wsscc2021/aws-cost-reporter/pkg/version"
)

// --- fakes ---

type costCall struct {
	groupBy entity.GroupBy
	window  entity.TimeWindow
}

type fakeCostRepo struct {
	calls   []costCall
	grouped map[entity.Granularity]entity.CostQueryResult
	totals  map[entity.Granularity]entity.CostQueryResult
	err     error
}

func (f *fakeCostRepo) QueryCost(_ context.Context, groupBy entity.GroupBy, window entity.TimeWindow) (entity.CostQueryResult, error) {
	f.calls = append(f.calls, costCall{groupBy: groupBy, window: window})
	if f.err != nil {
		return entity.CostQueryResult{}, f.err
	}
	if groupBy == entity.GroupByTotal {
		return f.totals[window.Granularity], nil
	}
	return f.grouped[window.Granularity], nil
}

type fakeAccountRepo struct {
	labels entity.AccountLabels
	err    error
	calls  int
}

func (f *fakeAccountRepo) ListAccounts(context.Context) (entity.AccountLabels, error) {
	f.calls++
	return f.labels, f.err
}

type fakeIdentityRepo struct {
	id  string
	err error
}

func (f *fakeIdentityRepo) GetAccountID(context.Context) (string, error) {
	return f.id, f.err
}

type fakeNotifier struct {
	sent []entity.ReportSet
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, reports entity.ReportSet) error {
	f.sent = append(f.sent, reports)
	return f.err
}

type fakeExportRepo struct {
	calls []string
	err   error
}

func (f *fakeExportRepo) ExportToCSV(_ entity.ReportSet, filename, _ string) (string, error) {
	f.calls = append(f.calls, "csv")
	return filename + ".csv", f.err
}

func (f *fakeExportRepo) ExportToJSON(_ entity.ReportSet, filename, _ string) (string, error) {
	f.calls = append(f.calls, "json")
	return filename + ".json", f.err
}

func (f *fakeExportRepo) ExportToPDF(_ entity.ReportSet, filename, _ string) (string, error) {
	f.calls = append(f.calls, "pdf")
	return filename + ".pdf", f.err
}

type recordingConsole struct {
	lines  []string
	tables []*recordingTable
}

func (c *recordingConsole) record(level, format string, a ...interface{}) {
	c.lines = append(c.lines, level+": "+fmt.Sprintf(format, a...))
}

func (c *recordingConsole) Print(a ...interface{})                 { c.lines = append(c.lines, fmt.Sprint(a...)) }
func (c *recordingConsole) Printf(format string, a ...interface{}) { c.record("print", format, a...) }
func (c *recordingConsole) Println(a ...interface{})               { c.lines = append(c.lines, fmt.Sprint(a...)) }
func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	c.record("info", format, a...)
}
func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.record("warning", format, a...)
}
func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.record("error", format, a...)
}
func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	c.record("success", format, a...)
}
func (c *recordingConsole) Status(string) types.StatusHandle { return noopStatus{} }
func (c *recordingConsole) CreateTable() types.TableInterface {
	t := &recordingTable{}
	c.tables = append(c.tables, t)
	return t
}

func (c *recordingConsole) contains(s string) bool {
	for _, l := range c.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

type recordingTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *recordingTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *recordingTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *recordingTable) Render() string                          { return strings.Join(t.columns, "|") }

// --- helpers ---

var testToday = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func defaultCostRepo() *fakeCostRepo {
	return &fakeCostRepo{
		grouped: map[entity.Granularity]entity.CostQueryResult{
			entity.GranularityDaily:   groupedResult(group("111", "30"), group("222", "10")),
			entity.GranularityMonthly: groupedResult(group("111", "300.00"), group("222", "100.00"), group("333", "0.001")),
		},
		totals: map[entity.Granularity]entity.CostQueryResult{
			entity.GranularityDaily:   totalResult("40"),
			entity.GranularityMonthly: totalResult("400.00"),
		},
	}
}

func defaultAccounts() *fakeAccountRepo {
	return &fakeAccountRepo{labels: entity.AccountLabels{"111": "a@x.com", "222": "b@x.com", "333": "c@x.com"}}
}

func newTestUseCase(costRepo *fakeCostRepo, accounts *fakeAccountRepo, notifier *fakeNotifier, export *fakeExportRepo, console *recordingConsole, opts ReportOptions) *ReportUseCase {
	uc := NewReportUseCase(costRepo, accounts, &fakeIdentityRepo{id: "123456789012"}, notifier, export, console, opts)
	uc.newRunID = func() string { return "run-1" }
	return uc
}

// --- tests ---

func TestRun_ByAccount(t *testing.T) {
	costRepo := defaultCostRepo()
	accounts := defaultAccounts()
	notifier := &fakeNotifier{}
	console := &recordingConsole{}

	uc := newTestUseCase(costRepo, accounts, notifier, nil, console, ReportOptions{GroupBy: entity.GroupByAccount})
	reports, err := uc.Run(context.Background(), testToday)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if accounts.calls != 1 {
		t.Errorf("ListAccounts calls = %d, want 1", accounts.calls)
	}
	if len(costRepo.calls) != 4 {
		t.Fatalf("QueryCost calls = %d, want 4", len(costRepo.calls))
	}
	for _, call := range costRepo.calls {
		if call.groupBy != entity.GroupByTotal && call.groupBy != entity.GroupByAccount {
			t.Errorf("unexpected group by %q", call.groupBy)
		}
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifier.sent))
	}
	sent := notifier.sent[0]
	if sent.RunID != "run-1" || sent.AccountID != "123456789012" {
		t.Errorf("run metadata = %q %q", sent.RunID, sent.AccountID)
	}

	wantMonthly := []entity.DisplayField{
		{Title: "Total", Value: "$ 400.00"},
		{Title: "a@x.com", Value: "$ 300.00"},
		{Title: "b@x.com", Value: "$ 100.00"},
	}
	if fmt.Sprint(reports.Monthly.Fields) != fmt.Sprint(wantMonthly) {
		t.Errorf("monthly = %v, want %v", reports.Monthly.Fields, wantMonthly)
	}
	if reports.Daily.Title != "2024-03-14 report" {
		t.Errorf("daily title = %q", reports.Daily.Title)
	}
	if reports.Monthly.Title != "2024-03-01 ~ 2024-03-14 report" {
		t.Errorf("monthly title = %q", reports.Monthly.Title)
	}
	if !reports.Monthly.Window.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monthly start = %v", reports.Monthly.Window.Start)
	}
	if len(console.tables) != 0 {
		t.Errorf("tables rendered without preview: %d", len(console.tables))
	}
}

func TestRun_ByServiceSkipsAccounts(t *testing.T) {
	costRepo := &fakeCostRepo{
		grouped: map[entity.Granularity]entity.CostQueryResult{
			entity.GranularityDaily:   groupedResult(group("Amazon EC2", "3")),
			entity.GranularityMonthly: groupedResult(group("Amazon EC2", "30")),
		},
		totals: map[entity.Granularity]entity.CostQueryResult{
			entity.GranularityDaily:   totalResult("3"),
			entity.GranularityMonthly: totalResult("30"),
		},
	}
	accounts := &fakeAccountRepo{err: errors.New("should not be called")}

	uc := newTestUseCase(costRepo, accounts, &fakeNotifier{}, nil, &recordingConsole{}, ReportOptions{GroupBy: entity.GroupByService})
	reports, err := uc.Run(context.Background(), testToday)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if accounts.calls != 0 {
		t.Errorf("ListAccounts called %d times in service mode", accounts.calls)
	}
	if reports.Daily.Fields[1].Title != "Amazon EC2" {
		t.Errorf("daily fields = %v", reports.Daily.Fields)
	}
}

func TestRun_TotalOnlyQueriesOncePerWindow(t *testing.T) {
	costRepo := defaultCostRepo()
	uc := newTestUseCase(costRepo, defaultAccounts(), &fakeNotifier{}, nil, &recordingConsole{}, ReportOptions{GroupBy: entity.GroupByTotal})

	reports, err := uc.Run(context.Background(), testToday)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(costRepo.calls) != 2 {
		t.Errorf("QueryCost calls = %d, want 2", len(costRepo.calls))
	}
	if len(reports.Daily.Fields) != 1 || reports.Daily.Fields[0].Value != "$ 40.00" {
		t.Errorf("daily fields = %v", reports.Daily.Fields)
	}
}

func TestRun_AbortsOnFailure(t *testing.T) {
	apiErr := errors.New("throttled")

	tests := []struct {
		name     string
		costRepo *fakeCostRepo
		accounts *fakeAccountRepo
		notifier *fakeNotifier
		wantErr  error
		wantSent int
	}{
		{
			name:     "account directory",
			costRepo: defaultCostRepo(),
			accounts: &fakeAccountRepo{err: apiErr},
			notifier: &fakeNotifier{},
			wantErr:  apiErr,
		},
		{
			name:     "cost query",
			costRepo: &fakeCostRepo{err: apiErr},
			accounts: defaultAccounts(),
			notifier: &fakeNotifier{},
			wantErr:  apiErr,
		},
		{
			name:     "unknown account",
			costRepo: defaultCostRepo(),
			accounts: &fakeAccountRepo{labels: entity.AccountLabels{"111": "a@x.com"}},
			notifier: &fakeNotifier{},
			wantErr:  types.ErrUnknownAccount,
		},
		{
			name:     "notifier",
			costRepo: defaultCostRepo(),
			accounts: defaultAccounts(),
			notifier: &fakeNotifier{err: apiErr},
			wantErr:  apiErr,
			wantSent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.costRepo, tt.accounts, tt.notifier, nil, &recordingConsole{}, ReportOptions{GroupBy: entity.GroupByAccount})
			_, err := uc.Run(context.Background(), testToday)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(tt.notifier.sent) != tt.wantSent {
				t.Errorf("notifications = %d, want %d", len(tt.notifier.sent), tt.wantSent)
			}
		})
	}
}

func TestRun_IdentityFailureIsWarning(t *testing.T) {
	console := &recordingConsole{}
	notifier := &fakeNotifier{}
	uc := NewReportUseCase(defaultCostRepo(), defaultAccounts(), &fakeIdentityRepo{err: errors.New("no sts")}, notifier, nil, console, ReportOptions{GroupBy: entity.GroupByAccount})

	if _, err := uc.Run(context.Background(), testToday); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].AccountID != "" {
		t.Errorf("sent = %+v", notifier.sent)
	}
	if !console.contains("warning: Could not resolve caller account") {
		t.Errorf("missing warning in %v", console.lines)
	}
	if notifier.sent[0].RunID == "" {
		t.Error("run id should be generated")
	}
}

func TestRun_DryRunPreviewsAndExports(t *testing.T) {
	notifier := &fakeNotifier{}
	export := &fakeExportRepo{}
	console := &recordingConsole{}

	uc := newTestUseCase(defaultCostRepo(), defaultAccounts(), notifier, export, console, ReportOptions{
		GroupBy:    entity.GroupByAccount,
		DryRun:     true,
		ReportName: "cost",
		ReportType: []string{"csv", "json", "pdf", "xml"},
	})

	if _, err := uc.Run(context.Background(), testToday); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("dry run sent %d notifications", len(notifier.sent))
	}
	if len(console.tables) != 2 {
		t.Fatalf("tables = %d, want 2", len(console.tables))
	}
	if rows := len(console.tables[1].rows); rows != 3 {
		t.Errorf("monthly table rows = %d, want 3", rows)
	}
	if strings.Join(export.calls, ",") != "csv,json,pdf" {
		t.Errorf("export calls = %v", export.calls)
	}
	if !console.contains("warning: Unsupported report type: xml") {
		t.Errorf("missing unsupported type warning in %v", console.lines)
	}
}

func TestRun_ExportFailureDoesNotFailRun(t *testing.T) {
	export := &fakeExportRepo{err: errors.New("disk full")}
	console := &recordingConsole{}

	uc := newTestUseCase(defaultCostRepo(), defaultAccounts(), &fakeNotifier{}, export, console, ReportOptions{
		GroupBy:    entity.GroupByAccount,
		ReportName: "cost",
		ReportType: []string{"csv"},
	})

	if _, err := uc.Run(context.Background(), testToday); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !console.contains("error: Failed to export to CSV: disk full") {
		t.Errorf("missing export error in %v", console.lines)
	}
}

func TestRun_LogsRunIDAndBuild(t *testing.T) {
	console := &recordingConsole{}
	uc := newTestUseCase(defaultCostRepo(), defaultAccounts(), &fakeNotifier{}, nil, console, ReportOptions{GroupBy: entity.GroupByAccount})
	if _, err := uc.Run(context.Background(), testToday); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := fmt.Sprintf("info: Starting cost report run run-1 for 2024-03-15 (group by account, aws-cost-reporter %s)", version.FormatVersion())
	if !console.contains(want) {
		t.Errorf("start line %q not logged; got %v", want, console.lines)
	}
}
