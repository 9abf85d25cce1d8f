package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
)

// Options controla a aparência da mensagem enviada ao Slack.
type Options struct {
	Channel    string
	Username   string
	IconEmoji  string
	Color      string
	ConsoleURL string
	Timeout    time.Duration
}

// WebhookError is returned when the webhook answers with a non-2xx status.
type WebhookError struct {
	StatusCode int
	Body       string
}

func (e *WebhookError) Error() string {
	return fmt.Sprintf("slack webhook returned status %d: %s", e.StatusCode, e.Body)
}

// NotifierImpl posts the cost report to a Slack incoming webhook.
type NotifierImpl struct {
	secrets repository.SecretRepository
	client  *http.Client
	opts    Options
}

// NewNotifier cria um Notifier que resolve a URL do webhook a cada envio.
func NewNotifier(secrets repository.SecretRepository, opts Options) repository.Notifier {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NotifierImpl{
		secrets: secrets,
		client:  &http.Client{Timeout: timeout},
		opts:    opts,
	}
}

// Send builds one message with an attachment per report and POSTs it once.
func (n *NotifierImpl) Send(ctx context.Context, reports entity.ReportSet) error {
	url, err := n.secrets.GetWebhookURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve slack webhook url: %w", err)
	}

	body, err := json.Marshal(n.buildMessage(reports))
	if err != nil {
		return fmt.Errorf("error encoding slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed send message to slack channel: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &WebhookError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return nil
}

func (n *NotifierImpl) buildMessage(reports entity.ReportSet) Message {
	summary := fmt.Sprintf("The summary of cost and usage per %s in yesterday and this month.", reports.GroupBy.Label())
	detail := "For more detail, see cost explorer within organizations root account."
	if reports.AccountID != "" {
		detail = fmt.Sprintf("For more detail, see cost explorer within organizations root account (%s).", reports.AccountID)
	}

	msg := Message{
		Channel:   n.opts.Channel,
		Username:  n.opts.Username,
		IconEmoji: n.opts.IconEmoji,
		Blocks: []Block{
			{
				Type: "header",
				Text: &Text{Type: "plain_text", Text: "AWS Cost Report", Emoji: true},
			},
			{
				Type: "section",
				Text: &Text{Type: "plain_text", Text: summary, Emoji: true},
			},
			{
				Type: "section",
				Text: &Text{Type: "mrkdwn", Text: detail},
				Accessory: &Button{
					Type:     "button",
					Text:     Text{Type: "plain_text", Text: "Go to cost explorer", Emoji: true},
					Value:    "cost_explorer",
					URL:      n.opts.ConsoleURL,
					ActionID: "button-action",
				},
			},
		},
	}

	for _, report := range reports.Reports() {
		msg.Attachments = append(msg.Attachments, Attachment{
			MrkdwnIn: []string{"text"},
			Color:    n.opts.Color,
			Title:    report.Title,
			Fields:   report.Fields,
		})
	}

	return msg
}
