package airtable

import "net/http"

// ListWebhooksParams lists the webhooks of a base.
type ListWebhooksParams struct {
	BaseID string
}

// Request encodes GET /bases/{base}/webhooks.
func (p ListWebhooksParams) Request() Request {
	return Request{
		Method: http.MethodGet,
		Path:   []string{"bases", p.BaseID, "webhooks"},
	}
}

// CreateWebhookParams registers a webhook on a base.
type CreateWebhookParams struct {
	BaseID          string
	NotificationURL string
	Specification   map[string]any
}

// Request encodes POST /bases/{base}/webhooks.
func (p CreateWebhookParams) Request() Request {
	return Request{
		Method: http.MethodPost,
		Path:   []string{"bases", p.BaseID, "webhooks"},
		Body: struct {
			NotificationURL string         `json:"notificationUrl,omitempty"`
			Specification   map[string]any `json:"specification,omitempty"`
		}{p.NotificationURL, p.Specification},
	}
}

// DeleteWebhookParams deletes a webhook.
type DeleteWebhookParams struct {
	BaseID    string
	WebhookID string
}

// Request encodes DELETE /bases/{base}/webhooks/{webhook}.
func (p DeleteWebhookParams) Request() Request {
	return Request{
		Method: http.MethodDelete,
		Path:   []string{"bases", p.BaseID, "webhooks", p.WebhookID},
	}
}

// ListWebhookPayloadsParams reads queued change payloads of a webhook.
type ListWebhookPayloadsParams struct {
	BaseID    string
	WebhookID string
	Cursor    *int
	Limit     *int
}

// Request encodes GET /bases/{base}/webhooks/{webhook}/payloads.
func (p ListWebhookPayloadsParams) Request() Request {
	var q Query
	q.AddInt("cursor", p.Cursor)
	q.AddInt("limit", p.Limit)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"bases", p.BaseID, "webhooks", p.WebhookID, "payloads"},
		Query:  q,
	}
}

// EnableWebhookNotificationsParams turns notification pings on or off.
type EnableWebhookNotificationsParams struct {
	BaseID    string
	WebhookID string
	Enable    bool
}

// Request encodes POST /bases/{base}/webhooks/{webhook}/enableNotifications.
func (p EnableWebhookNotificationsParams) Request() Request {
	return Request{
		Method: http.MethodPost,
		Path:   []string{"bases", p.BaseID, "webhooks", p.WebhookID, "enableNotifications"},
		Body: struct {
			Enable bool `json:"enable"`
		}{p.Enable},
	}
}

// RefreshWebhookParams extends the expiration of a webhook.
type RefreshWebhookParams struct {
	BaseID    string
	WebhookID string
}

// Request encodes POST /bases/{base}/webhooks/{webhook}/refresh.
func (p RefreshWebhookParams) Request() Request {
	return Request{
		Method: http.MethodPost,
		Path:   []string{"bases", p.BaseID, "webhooks", p.WebhookID, "refresh"},
	}
}
