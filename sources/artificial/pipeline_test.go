package artificial

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scribe/sources/configuration"
	"scribe/sources/metrics"
	"scribe/sources/platform"
	"scribe/sources/tracing"
	"scribe/sources/youtube"
)

type fakeTranscripts struct {
	text string
	err  error
}

func (f *fakeTranscripts) Fetch(ctx context.Context, log *tracing.Logger, videoID string) (string, error) {
	return f.text, f.err
}

type fakeMetadata struct {
	info *youtube.VideoInfo
	err  error
}

func (f *fakeMetadata) Fetch(ctx context.Context, log *tracing.Logger, videoID string) (*youtube.VideoInfo, error) {
	return f.info, f.err
}

type fakeInvoker struct {
	responses []string
	calls     []platform.MessageSet
	err       error
}

func (f *fakeInvoker) Invoke(ctx context.Context, log *tracing.Logger, tier *ModelTier, set platform.MessageSet) (string, error) {
	f.calls = append(f.calls, set)
	if f.err != nil {
		return "", f.err
	}
	return f.responses[len(f.calls)-1], nil
}

func testPipeline(transcripts TranscriptSource, meta MetadataSource, invoker ChatCompleter, counter TokenCounterFunc) *Pipeline {
	log := tracing.NewConsoleLogger()
	config := testAIConfig()
	builder := NewPromptBuilder(config)
	if counter != nil {
		builder.tokens = counter
	}
	return NewPipeline(
		transcripts,
		meta,
		builder,
		NewSelector(config),
		invoker,
		metrics.NewMetricsService(log),
		&configuration.Config{Telegram: configuration.TelegramConfig{DiplomatChunkSize: 4096}},
	)
}

func flatTokens(n int) TokenCounterFunc {
	return func(log *tracing.Logger, set platform.MessageSet, model string) int { return n }
}

func TestSummarizeHappyPath(t *testing.T) {
	log := tracing.NewConsoleLogger()
	invoker := &fakeInvoker{responses: []string{"A tidy **summary** of the video."}}
	pipeline := testPipeline(
		&fakeTranscripts{text: repeatWords("word", 1000)},
		&fakeMetadata{info: &youtube.VideoInfo{Title: "A Video", ChannelName: "A Channel"}},
		invoker,
		flatTokens(500),
	)

	digest, err := pipeline.Summarize(context.Background(), log, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invoker.calls) != 1 {
		t.Fatalf("expected one chat call, got %d", len(invoker.calls))
	}
	if len(digest.Chunks) != 1 || digest.Chunks[0] != "A tidy **summary** of the video." {
		t.Fatalf("unexpected digest chunks: %#v", digest.Chunks)
	}
	if digest.Info.Title != "A Video" || digest.Info.ChannelName != "A Channel" {
		t.Fatalf("metadata not carried into digest: %#v", digest.Info)
	}
}

func TestSummarizePropagatesFetchFailure(t *testing.T) {
	log := tracing.NewConsoleLogger()
	fetchErr := &youtube.NotFoundError{VideoID: "missing"}
	invoker := &fakeInvoker{}
	pipeline := testPipeline(
		&fakeTranscripts{err: fetchErr},
		&fakeMetadata{info: &youtube.VideoInfo{Title: "A Video"}},
		invoker,
		flatTokens(500),
	)

	_, err := pipeline.Summarize(context.Background(), log, "missing")
	if !youtube.IsNotFound(err) {
		t.Fatalf("expected the fetch error unmodified, got %v", err)
	}
	if len(invoker.calls) != 0 {
		t.Fatal("expected no chat call after a fetch failure")
	}
}

func TestSummarizePropagatesMetadataFailure(t *testing.T) {
	log := tracing.NewConsoleLogger()
	metaErr := &youtube.RemoteError{Service: "youtube-data", Err: errors.New("quota exceeded")}
	pipeline := testPipeline(
		&fakeTranscripts{text: repeatWords("word", 1000)},
		&fakeMetadata{err: metaErr},
		&fakeInvoker{},
		flatTokens(500),
	)

	_, err := pipeline.Summarize(context.Background(), log, "dQw4w9WgXcQ")
	if !youtube.IsRemote(err) {
		t.Fatalf("expected the metadata error unmodified, got %v", err)
	}
}

func TestCleanTranscriptJoinsSetsInOrder(t *testing.T) {
	log := tracing.NewConsoleLogger()
	invoker := &fakeInvoker{responses: []string{"first part.", "second part.", "third part."}}
	pipeline := testPipeline(
		&fakeTranscripts{text: repeatWords("word", 9000)},
		&fakeMetadata{info: &youtube.VideoInfo{Title: "Long Talk", ChannelName: "Lectures"}},
		invoker,
		flatTokens(120000),
	)

	digest, err := pipeline.CleanTranscript(context.Background(), log, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invoker.calls) != 3 {
		t.Fatalf("expected three sequential chat calls, got %d", len(invoker.calls))
	}

	joined := strings.Join(digest.Chunks, "\n\n")
	if !strings.Contains(joined, "first part.") || !strings.Contains(joined, "third part.") {
		t.Fatalf("responses missing from digest: %q", joined)
	}
	if strings.Index(joined, "first part.") > strings.Index(joined, "second part.") {
		t.Fatal("responses joined out of order")
	}
}

func TestCleanTranscriptReparagraphs(t *testing.T) {
	log := tracing.NewConsoleLogger()
	invoker := &fakeInvoker{responses: []string{"One sentence. Two sentence. Three."}}
	pipeline := testPipeline(
		&fakeTranscripts{text: repeatWords("word", 500)},
		&fakeMetadata{info: &youtube.VideoInfo{Title: "Short"}},
		invoker,
		flatTokens(1000),
	)

	digest, err := pipeline.CleanTranscript(context.Background(), log, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(digest.Chunks, "\n\n"); got != "One sentence.\n\nTwo sentence.\n\nThree." {
		t.Fatalf("expected sentence breaks as paragraphs, got %q", got)
	}
}

func TestCleanTranscriptChunksLongOutput(t *testing.T) {
	log := tracing.NewConsoleLogger()
	paragraph := strings.Repeat("sentence words here and more words too ", 25)
	long := strings.TrimSpace(strings.Repeat(strings.TrimSpace(paragraph)+"\n\n", 8))
	invoker := &fakeInvoker{responses: []string{long}}
	pipeline := testPipeline(
		&fakeTranscripts{text: repeatWords("word", 500)},
		&fakeMetadata{info: &youtube.VideoInfo{Title: "Short"}},
		invoker,
		flatTokens(1000),
	)

	digest, err := pipeline.CleanTranscript(context.Background(), log, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(digest.Chunks) < 2 {
		t.Fatalf("expected the long output re-split for display, got %d chunks", len(digest.Chunks))
	}
	for i, chunk := range digest.Chunks {
		if len([]rune(chunk)) > 4096 {
			t.Fatalf("chunk %d exceeds the display budget: %d runes", i, len([]rune(chunk)))
		}
	}
}

func TestSummarizeRejectsOversizedTranscript(t *testing.T) {
	log := tracing.NewConsoleLogger()
	invoker := &fakeInvoker{}
	pipeline := testPipeline(
		&fakeTranscripts{text: repeatWords("word", 1000)},
		&fakeMetadata{info: &youtube.VideoInfo{Title: "Huge"}},
		invoker,
		flatTokens(13001),
	)

	_, err := pipeline.Summarize(context.Background(), log, "dQw4w9WgXcQ")
	if !IsValidation(err) {
		t.Fatalf("expected validation rejection, got %v", err)
	}
	if len(invoker.calls) != 0 {
		t.Fatal("expected no chat call for an over-ceiling transcript")
	}
}
