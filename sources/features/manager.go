package features

import (
	"context"
	"time"

	"scribe/sources/configuration"
	"scribe/sources/tracing"

	"github.com/Unleash/unleash-client-go/v4"
)

const (
	FeatureSummarize       = "scribe/operations/summarize"
	FeatureTranscribe      = "scribe/operations/transcribe"
	FeatureImplicitScan    = "scribe/detection/implicit-scan"
	FeatureTypingIndicator = "scribe/telegram/typing-indicator"
)

// FeatureManager gates operations behind Unleash toggles. When no
// Unleash URL is configured the manager runs detached and every
// toggle resolves to its fallback default.
type FeatureManager struct {
	client *unleash.Client
	log    *tracing.Logger
}

func NewFeatureManager(config *configuration.Config, log *tracing.Logger) (*FeatureManager, error) {
	if config.Features.UnleashAPIURL == "" {
		log.I("Feature toggles disabled, no Unleash URL configured")
		return &FeatureManager{log: log}, nil
	}

	client, err := unleash.NewClient(
		unleash.WithUrl(config.Features.UnleashAPIURL),
		unleash.WithAppName(config.Features.UnleashAppName),
		unleash.WithInstanceId(config.Features.UnleashInstanceID),
		unleash.WithRefreshInterval(time.Duration(config.Features.RefreshInterval)*time.Second),
		unleash.WithListener(&unleashListener{log: log}),
	)

	if err != nil {
		log.E("Failed to initialize Unleash client", tracing.InnerError, err)
		return nil, err
	}

	log.I("Unleash client initialized successfully",
		"api_url", config.Features.UnleashAPIURL,
		"app_name", config.Features.UnleashAppName,
		"instance_id", config.Features.UnleashInstanceID,
		"refresh_interval", config.Features.RefreshInterval,
	)

	return &FeatureManager{client: client, log: log}, nil
}

func (f *FeatureManager) IsEnabled(featureName string) bool {
	return f.IsEnabledDefault(featureName, true)
}

func (f *FeatureManager) IsEnabledDefault(featureName string, defaultValue bool) bool {
	if f.client == nil {
		return defaultValue
	}
	return f.client.IsEnabled(featureName, unleash.WithFallback(defaultValue))
}

func (f *FeatureManager) Close() error {
	if f.client == nil {
		return nil
	}
	f.log.I("Closing Unleash client")
	f.client.Close()
	return nil
}

func (f *FeatureManager) OnStop(ctx context.Context) error {
	return f.Close()
}

type unleashListener struct {
	log *tracing.Logger
}

func (l *unleashListener) OnReady() {
	l.log.I("Unleash client ready")
}

func (l *unleashListener) OnError(err error) {
	l.log.E("Unleash client error", tracing.InnerError, err)
}

func (l *unleashListener) OnWarning(warning error) {
	l.log.W("Unleash client warning", tracing.InnerError, warning)
}

func (l *unleashListener) OnCount(name string, enabled bool) {
}

func (l *unleashListener) OnSent(payload unleash.MetricsData) {
}

func (l *unleashListener) OnRegistered(payload unleash.ClientData) {
	l.log.I("Unleash client registered", "instance_id", payload.InstanceID)
}
