package types

import "time"

// Config represents the application configuration that can be loaded from a file
// and overridden by environment variables.
type Config struct {
	Profile     string   `json:"profile" yaml:"profile" toml:"profile" env:"AWS_PROFILE"`
	Region      string   `json:"region" yaml:"region" toml:"region" env:"AWS_REGION"`
	SecretID    string   `json:"secret_id" yaml:"secret_id" toml:"secret_id" env:"COST_REPORT_SECRET_ID"`
	SecretKey   string   `json:"secret_key" yaml:"secret_key" toml:"secret_key" env:"COST_REPORT_SECRET_KEY"`
	Channel     string   `json:"channel" yaml:"channel" toml:"channel" env:"COST_REPORT_CHANNEL"`
	Username    string   `json:"username" yaml:"username" toml:"username" env:"COST_REPORT_USERNAME"`
	IconEmoji   string   `json:"icon_emoji" yaml:"icon_emoji" toml:"icon_emoji" env:"COST_REPORT_ICON_EMOJI"`
	Color       string   `json:"color" yaml:"color" toml:"color" env:"COST_REPORT_COLOR"`
	GroupBy     string   `json:"group_by" yaml:"group_by" toml:"group_by" env:"COST_REPORT_GROUP_BY"`
	Timezone    string   `json:"timezone" yaml:"timezone" toml:"timezone" env:"COST_REPORT_TIMEZONE"`
	ConsoleURL  string   `json:"console_url" yaml:"console_url" toml:"console_url" env:"COST_REPORT_CONSOLE_URL"`
	HTTPTimeout int      `json:"http_timeout_seconds" yaml:"http_timeout_seconds" toml:"http_timeout_seconds" env:"COST_REPORT_HTTP_TIMEOUT_SECONDS"`
	ReportName  string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType  []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir         string   `json:"dir" yaml:"dir" toml:"dir"`
	DryRun      bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run" env:"COST_REPORT_DRY_RUN"`
	Preview     bool     `json:"preview" yaml:"preview" toml:"preview"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() *Config {
	return &Config{
		SecretKey:   "webhooking_url",
		Channel:     "#aws-cost",
		Username:    "aws",
		IconEmoji:   ":aws:",
		Color:       "#7CD197",
		GroupBy:     "account",
		Timezone:    "UTC",
		ConsoleURL:  "https://console.aws.amazon.com/cost-management/home#",
		HTTPTimeout: 10,
	}
}

// Timeout returns HTTPTimeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}

// Location resolves Timezone, falling back to UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
