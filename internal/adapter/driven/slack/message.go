package slack

import "github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"

// Message is the JSON body accepted by Slack incoming webhooks.
type Message struct {
	Channel     string       `json:"channel,omitempty"`
	Username    string       `json:"username,omitempty"`
	IconEmoji   string       `json:"icon_emoji,omitempty"`
	Blocks      []Block      `json:"blocks,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Block é um bloco Block Kit (header ou section).
type Block struct {
	Type      string  `json:"type"`
	Text      *Text   `json:"text,omitempty"`
	Accessory *Button `json:"accessory,omitempty"`
}

// Text is a plain_text or mrkdwn text object.
type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// Button is the section accessory linking to the billing console.
type Button struct {
	Type     string `json:"type"`
	Text     Text   `json:"text"`
	Value    string `json:"value,omitempty"`
	URL      string `json:"url,omitempty"`
	ActionID string `json:"action_id,omitempty"`
}

// Attachment carrega um relatório: título com o período e os campos formatados.
type Attachment struct {
	MrkdwnIn []string              `json:"mrkdwn_in,omitempty"`
	Color    string                `json:"color,omitempty"`
	Title    string                `json:"title"`
	Fields   []entity.DisplayField `json:"fields"`
}
