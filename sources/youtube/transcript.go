package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"scribe/sources/configuration"
	"scribe/sources/platform"
	"scribe/sources/tracing"
)

type transcriptItem struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type transcriptResponse struct {
	Transcript []transcriptItem `json:"transcript"`
	Message    string           `json:"message"`
}

// TranscriptFetcher retrieves the concatenated caption text of a video
// from the transcript service.
type TranscriptFetcher struct {
	client *http.Client
	config *configuration.Config
}

func NewTranscriptFetcher(client *http.Client, config *configuration.Config) *TranscriptFetcher {
	return &TranscriptFetcher{client: client, config: config}
}

func (x *TranscriptFetcher) Fetch(ctx context.Context, log *tracing.Logger, videoID string) (string, error) {
	defer tracing.ProfilePoint(log, "Transcript fetched", "youtube.transcript.fetch", tracing.VideoId, videoID)()

	ctx, cancel := platform.ContextTimeoutVal(ctx, x.config.YouTube.FetchTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s", strings.TrimRight(x.config.YouTube.TranscriptEndpoint, "/"), videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &RemoteError{Service: "transcript", Err: err}
	}

	res, err := x.client.Do(req)
	if err != nil {
		log.E("Transcript request failed", tracing.VideoId, videoID, tracing.InnerError, err)
		return "", &RemoteError{Service: "transcript", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.E("Transcript service returned non-success status", tracing.VideoId, videoID, "status", res.StatusCode)
		return "", &RemoteError{Service: "transcript", Err: fmt.Errorf("unexpected status %d", res.StatusCode)}
	}

	var data transcriptResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return "", &RemoteError{Service: "transcript", Err: err}
	}

	if len(data.Transcript) == 0 {
		log.W("No transcript for video", tracing.VideoId, videoID, "message", data.Message)
		return "", &NotFoundError{VideoID: videoID, Message: data.Message}
	}

	parts := make([]string, 0, len(data.Transcript))
	for _, item := range data.Transcript {
		parts = append(parts, item.Text)
	}

	return strings.Join(parts, " "), nil
}
