package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// Webhook posts the quote request JSON to a configured endpoint, with
// bounded retries on transient failures.
type Webhook struct {
	url      string
	client   *resty.Client
	observer Observer
}

// NewWebhook builds a webhook submitter for the configured endpoint.
func NewWebhook(cfg Config, observer Observer) *Webhook {
	if observer == nil {
		observer = NoopObserver{}
	}
	client := resty.New().
		SetTimeout(time.Duration(cfg.WebhookTimeoutMs) * time.Millisecond).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
	return &Webhook{
		url:      cfg.WebhookURL,
		client:   client,
		observer: observer,
	}
}

func (w *Webhook) Submit(ctx context.Context, req *domain.QuoteRequest) error {
	start := time.Now()
	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(w.url)

	event := DeliveryEvent{
		RequestID: req.ID,
		Target:    w.url,
		LatencyMs: time.Since(start).Milliseconds(),
	}

	if err != nil {
		event.ErrorCode = "transport"
		w.observer.OnDelivery(event)
		return fmt.Errorf("delivering quote request %s: %w", req.ID, err)
	}
	if resp.IsError() {
		event.ErrorCode = fmt.Sprintf("http_%d", resp.StatusCode())
		w.observer.OnDelivery(event)
		return fmt.Errorf("delivering quote request %s: endpoint returned %s", req.ID, resp.Status())
	}

	event.Success = true
	w.observer.OnDelivery(event)
	return nil
}
