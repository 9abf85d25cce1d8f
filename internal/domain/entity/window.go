package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout é o formato de data aceito pelo Cost Explorer.
const DateLayout = "2006-01-02"

var ErrInvalidGranularity = errors.New("granularity should be 'DAILY' or 'MONTHLY'")

// Granularity is the bucket size requested from Cost Explorer.
type Granularity string

const (
	GranularityDaily   Granularity = "DAILY"
	GranularityMonthly Granularity = "MONTHLY"
)

// Validate retorna ErrInvalidGranularity para qualquer valor fora de DAILY/MONTHLY.
func (g Granularity) Validate() error {
	switch g {
	case GranularityDaily, GranularityMonthly:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidGranularity, string(g))
	}
}

// GroupBy is the Cost Explorer dimension a query is grouped by.
// The zero value requests an ungrouped total.
type GroupBy string

const (
	GroupByTotal   GroupBy = ""
	GroupByAccount GroupBy = "LINKED_ACCOUNT"
	GroupByService GroupBy = "SERVICE"
)

// ParseGroupBy aceita "account", "service", "total" ou a chave da dimensão AWS.
func ParseGroupBy(s string) (GroupBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "account", "linked_account", "":
		return GroupByAccount, nil
	case "service":
		return GroupByService, nil
	case "total", "none":
		return GroupByTotal, nil
	default:
		return "", fmt.Errorf("unsupported group-by value: %s", s)
	}
}

// Label returns a human readable name for the dimension.
func (g GroupBy) Label() string {
	switch g {
	case GroupByAccount:
		return "account"
	case GroupByService:
		return "service"
	default:
		return "total"
	}
}

// TimeWindow is a half-open [Start, End) date range queried at one granularity.
type TimeWindow struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Granularity Granularity `json:"granularity"`
}

// NewTimeWindow deriva a janela de consulta a partir da data de hoje.
//
// DAILY cobre exatamente o dia anterior. MONTHLY vai do dia 1 do mês de ontem
// até hoje (exclusivo), então no dia 1 o relatório cobre o mês anterior inteiro.
func NewTimeWindow(granularity Granularity, today time.Time) (TimeWindow, error) {
	if err := granularity.Validate(); err != nil {
		return TimeWindow{}, err
	}

	today = truncateToDay(today)
	window := TimeWindow{End: today, Granularity: granularity}

	switch granularity {
	case GranularityDaily:
		window.Start = today.AddDate(0, 0, -1)
	case GranularityMonthly:
		yesterday := today.AddDate(0, 0, -1)
		window.Start = time.Date(yesterday.Year(), yesterday.Month(), 1, 0, 0, 0, 0, today.Location())
	}

	return window, nil
}

// StartDate returns Start formatted for the Cost Explorer API.
func (w TimeWindow) StartDate() string {
	return w.Start.Format(DateLayout)
}

// EndDate returns End formatted for the Cost Explorer API.
func (w TimeWindow) EndDate() string {
	return w.End.Format(DateLayout)
}

// LastDay é o último dia incluído na janela.
func (w TimeWindow) LastDay() time.Time {
	return w.End.AddDate(0, 0, -1)
}

// Title is the date range shown on the report.
func (w TimeWindow) Title() string {
	if w.Granularity == GranularityDaily {
		return fmt.Sprintf("%s report", w.StartDate())
	}
	return fmt.Sprintf("%s ~ %s report", w.StartDate(), w.LastDay().Format(DateLayout))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
