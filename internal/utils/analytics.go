package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

const defaultPosthogEndpoint = "https://eu.i.posthog.com"

// Analytics wraps a posthog client. The zero value and a nil *Analytics are
// both no-ops, so callers never check whether analytics is configured.
type Analytics struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalytics returns a disabled client when apiKey is empty.
func NewAnalytics(apiKey, endpoint string, logger *slog.Logger) *Analytics {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, analytics disabled")
		return &Analytics{logger: logger}
	}
	if endpoint == "" {
		endpoint = defaultPosthogEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &Analytics{logger: logger}
	}
	logger.Info("Posthog analytics enabled", slog.String("endpoint", endpoint))
	return &Analytics{client: client, logger: logger}
}

func (a *Analytics) Enabled() bool {
	return a != nil && a.client != nil
}

// Capture enqueues an event for distinctID.
func (a *Analytics) Capture(distinctID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	a.logger.Debug("Enqueueing analytics event", slog.String("distinct_id", distinctID), slog.String("event", event))
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	if err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (a *Analytics) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn("Failed to flush analytics", slog.String("error", err.Error()))
	}
}
