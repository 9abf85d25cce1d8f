package entity

import "time"

// TotalTitle is the title of the synthetic first field of every report.
const TotalTitle = "Total"

// AccountLabels maps AWS account ids to a display label (the account email).
type AccountLabels map[string]string

// DisplayField is one title/value row of a report, in the shape Slack attachments expect.
type DisplayField struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Report é a lista ordenada de campos de uma janela: Total primeiro, depois os grupos.
type Report struct {
	Title  string         `json:"title"`
	Window TimeWindow     `json:"window"`
	Fields []DisplayField `json:"fields"`
}

// ReportSet reúne os dois relatórios produzidos em uma execução.
type ReportSet struct {
	RunID     string    `json:"run_id"`
	AccountID string    `json:"account_id,omitempty"`
	GroupBy   GroupBy   `json:"group_by"`
	Today     time.Time `json:"today"`
	Daily     Report    `json:"daily"`
	Monthly   Report    `json:"monthly"`
}

// Reports returns daily and monthly in display order.
func (s ReportSet) Reports() []Report {
	return []Report{s.Daily, s.Monthly}
}
