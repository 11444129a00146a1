package youtube

import (
	"context"

	"scribe/sources/configuration"
	"scribe/sources/tracing"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// VideoInfo is the presentation metadata of a video, fetched once per
// request and reused across every prompt derived from its transcript.
type VideoInfo struct {
	Title       string
	ChannelName string
}

// MetadataFetcher reads video title and channel name from the YouTube
// Data API.
type MetadataFetcher struct {
	svc *yt.Service
}

func NewMetadataFetcher(config *configuration.Config, log *tracing.Logger) (*MetadataFetcher, error) {
	svc, err := yt.NewService(context.Background(), option.WithAPIKey(config.YouTube.APIKey))
	if err != nil {
		log.E("Failed to initialize YouTube Data API client", tracing.InnerError, err)
		return nil, err
	}

	return &MetadataFetcher{svc: svc}, nil
}

func (x *MetadataFetcher) Fetch(ctx context.Context, log *tracing.Logger, videoID string) (*VideoInfo, error) {
	return tracing.ReportExecutionForRE(log,
		func() (*VideoInfo, error) {
			res, err := x.svc.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
			if err != nil {
				log.E("Video metadata request failed", tracing.VideoId, videoID, tracing.InnerError, err)
				return nil, &RemoteError{Service: "metadata", Err: err}
			}

			if len(res.Items) == 0 {
				return nil, &NotFoundError{VideoID: videoID}
			}

			snippet := res.Items[0].Snippet
			return &VideoInfo{Title: snippet.Title, ChannelName: snippet.ChannelTitle}, nil
		},
		func(l *tracing.Logger) { l.D("Video metadata fetched", tracing.VideoId, videoID) },
	)
}
