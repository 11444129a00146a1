package artificial

import (
	"context"
	"strings"

	"scribe/sources/configuration"
	"scribe/sources/metrics"
	"scribe/sources/platform"
	"scribe/sources/texting"
	"scribe/sources/tracing"
	"scribe/sources/youtube"
)

type TranscriptSource interface {
	Fetch(ctx context.Context, log *tracing.Logger, videoID string) (string, error)
}

type MetadataSource interface {
	Fetch(ctx context.Context, log *tracing.Logger, videoID string) (*youtube.VideoInfo, error)
}

type ChatCompleter interface {
	Invoke(ctx context.Context, log *tracing.Logger, tier *ModelTier, set platform.MessageSet) (string, error)
}

// Digest is the displayable result of one operation: the assembled text
// re-split into presentation-size chunks, plus the video metadata used
// to decorate each of them.
type Digest struct {
	Chunks []string
	Info   youtube.VideoInfo
}

// Pipeline runs the end-to-end flow for one video: fetch transcript and
// metadata, build prompts under the token budget, pick a tier, invoke
// the chat service sequentially over the plan, stitch the responses and
// re-chunk for display. Everything it touches is request-scoped.
type Pipeline struct {
	transcripts TranscriptSource
	meta        MetadataSource
	prompts     *PromptBuilder
	selector    *Selector
	invoker     ChatCompleter
	metrics     *metrics.MetricsService
	chunkSize   int
}

func NewPipeline(transcripts TranscriptSource, meta MetadataSource, prompts *PromptBuilder, selector *Selector, invoker ChatCompleter, metrics *metrics.MetricsService, config *configuration.Config) *Pipeline {
	return &Pipeline{
		transcripts: transcripts,
		meta:        meta,
		prompts:     prompts,
		selector:    selector,
		invoker:     invoker,
		metrics:     metrics,
		chunkSize:   config.Telegram.DiplomatChunkSize,
	}
}

func (x *Pipeline) Summarize(ctx context.Context, log *tracing.Logger, videoID string) (*Digest, error) {
	log = log.With(tracing.VideoId, videoID, tracing.Operation, platform.OperationSummarize)
	x.metrics.RecordOperationRequested(platform.OperationSummarize)

	info, transcript, err := x.fetch(ctx, log, videoID)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationSummarize, "fetch")
		return nil, err
	}

	plan, err := x.prompts.BuildSummarize(log, transcript, info.Title, info.ChannelName)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationSummarize, "validation")
		return nil, err
	}

	tier, err := x.selector.ForSummary(log, plan.Tokens)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationSummarize, "validation")
		return nil, err
	}

	summary, err := x.execute(ctx, log, tier, plan)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationSummarize, "remote")
		return nil, err
	}

	return x.digest(log, summary, info), nil
}

func (x *Pipeline) CleanTranscript(ctx context.Context, log *tracing.Logger, videoID string) (*Digest, error) {
	log = log.With(tracing.VideoId, videoID, tracing.Operation, platform.OperationTranscribe)
	x.metrics.RecordOperationRequested(platform.OperationTranscribe)

	info, transcript, err := x.fetch(ctx, log, videoID)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationTranscribe, "fetch")
		return nil, err
	}

	plan, err := x.prompts.BuildCleanup(log, transcript, info.Title, info.ChannelName)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationTranscribe, "validation")
		return nil, err
	}

	tier, err := x.selector.ForCleanup(log, plan.Tokens)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationTranscribe, "validation")
		return nil, err
	}

	cleaned, err := x.execute(ctx, log, tier, plan)
	if err != nil {
		x.metrics.RecordOperationFailed(platform.OperationTranscribe, "remote")
		return nil, err
	}

	return x.digest(log, texting.Reparagraph(cleaned), info), nil
}

// fetch resolves both collaborator lookups. Failures propagate without
// retry; retries belong to the invoker only.
func (x *Pipeline) fetch(ctx context.Context, log *tracing.Logger, videoID string) (*youtube.VideoInfo, string, error) {
	info, err := x.meta.Fetch(ctx, log, videoID)
	if err != nil {
		log.E("Metadata fetch failed", tracing.InnerError, err)
		return nil, "", err
	}

	log = log.With(tracing.VideoTitle, info.Title, tracing.ChannelName, info.ChannelName)

	transcript, err := x.transcripts.Fetch(ctx, log, videoID)
	if err != nil {
		log.E("Transcript fetch failed", tracing.InnerError, err)
		return nil, "", err
	}

	return info, transcript, nil
}

// execute runs the plan's message sets strictly in order. Sequential on
// purpose: cleanup fragments must concatenate back in transcript order,
// and the upstream endpoint prefers serialized traffic.
func (x *Pipeline) execute(ctx context.Context, log *tracing.Logger, tier *ModelTier, plan *PromptPlan) (string, error) {
	responses := make([]string, 0, len(plan.Sets))
	for i, set := range plan.Sets {
		response, err := x.invoker.Invoke(ctx, log.With("message_set", i+1, "message_sets", len(plan.Sets)), tier, set)
		if err != nil {
			return "", err
		}
		responses = append(responses, response)
	}

	return strings.Join(responses, " "), nil
}

func (x *Pipeline) digest(log *tracing.Logger, text string, info *youtube.VideoInfo) *Digest {
	chunks := texting.BreakIntoChunks(text, x.chunkSize)

	log.I("Digest assembled", tracing.ChunkCount, len(chunks))
	x.metrics.RecordDisplayChunks(len(chunks))

	return &Digest{Chunks: chunks, Info: *info}
}
