package main

import (
	"context"
	"time"

	"scribe/sources/artificial"
	"scribe/sources/configuration"
	"scribe/sources/external"
	"scribe/sources/features"
	"scribe/sources/localization"
	"scribe/sources/metrics"
	"scribe/sources/network"
	"scribe/sources/platform"
	"scribe/sources/telegram"
	"scribe/sources/tracing"
	"scribe/sources/youtube"

	"go.uber.org/fx"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

func main() {
	platform.SetAppManifest(version, buildTime, time.Now())

	fx.New(
		tracing.Module,
		configuration.Module,
		metrics.Module,
		external.Module,
		network.Module,
		features.Module,
		localization.Module,
		youtube.Module,
		artificial.Module,
		telegram.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("Scribe started successfully", "version", version, "build_time", buildTime)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("Scribe stopped", "version", version, "build_time", buildTime)
					return nil
				},
			})
		}),
	).Run()
}
