package models

// DiscordField represents a single display row inside an embed
type DiscordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// DiscordFooter represents the footer of an embed
type DiscordFooter struct {
	Text string `json:"text"`
}

// DiscordEmbed represents a rich embed block of a Discord message
type DiscordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Fields      []DiscordField `json:"fields"`
	Footer      DiscordFooter  `json:"footer"`
}

// DiscordMessage is the wire payload posted to a Discord webhook
type DiscordMessage struct {
	Content string         `json:"content"`
	Embeds  []DiscordEmbed `json:"embeds,omitempty"`
}

// WebhookConfig is a named webhook destination presented to the UI
type WebhookConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DeliveryResult reports the outcome of a single webhook delivery.
// Status carries the upstream HTTP status code when a response was
// received; it is zero for network-level failures.
type DeliveryResult struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"-"`
}

// DeliveryReport aggregates delivery results across all webhooks
type DeliveryReport struct {
	Total   int              `json:"total"`
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Details []DeliveryResult `json:"details"`
}

// SendMessageRequest represents a request to relay a message to a webhook
type SendMessageRequest struct {
	WebhookURL string          `json:"webhookUrl"`
	Message    *DiscordMessage `json:"message"`
}

// ContentTemplate is a canned notification message for the UI
type ContentTemplate struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}
