// Package analytics wraps the posthog client so callers do not need to care whether it was configured.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Client sends usage events to PostHog. A zero or nil Client drops every event.
type Client struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// NewClient returns a disabled client when apiKey is empty.
func NewClient(apiKey string, endpoint string, logger *slog.Logger) *Client {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &Client{}
	}

	cfg := posthog.Config{Endpoint: endpoint}
	client, err := posthog.NewWithConfig(apiKey, cfg)
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &Client{}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &Client{posthogClient: client, logger: logger}
}

func (c *Client) IsInitialized() bool {
	return c != nil && c.posthogClient != nil
}

// Enqueue queues one event for distinctID.
func (c *Client) Enqueue(distinctID string, event string, properties map[string]any) {
	if !c.IsInitialized() {
		return
	}
	c.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	if err := c.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		c.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (c *Client) Close() {
	if !c.IsInitialized() {
		return
	}
	if err := c.posthogClient.Close(); err != nil {
		c.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
