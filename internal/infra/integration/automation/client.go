package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

// Client posts accepted intake forms to the automation collaborator's
// webhook (an n8n flow in the current deployment). The collaborator's
// whole contract is: accepts a JSON payload, answers 2xx on success.
type Client struct {
	webhookURL string
	rest       *resty.Client
}

func NewClient(webhookURL string) *Client {
	rest := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Client{
		webhookURL: webhookURL,
		rest:       rest,
	}
}

func (c *Client) SendIntake(ctx context.Context, form *entity.IntakeForm) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("post intake webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("intake webhook rejected (status %d)", resp.StatusCode())
	}

	return nil
}
