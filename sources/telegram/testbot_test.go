package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"
	"time"

	"scribe/sources/artificial"
	"scribe/sources/configuration"
	"scribe/sources/features"
	"scribe/sources/localization"
	"scribe/sources/metrics"
	"scribe/sources/platform"
	"scribe/sources/tracing"
	"scribe/sources/youtube"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeTelegram serves just enough of the Bot API for the poller and
// diplomat: getMe, one batch of getUpdates, and sendMessage recording.
type fakeTelegram struct {
	srv               *httptest.Server
	mu                sync.Mutex
	sent              []url.Values
	updates           []tgbotapi.Update
	failFirstMarkdown bool
}

func newFakeTelegram(t *testing.T) *fakeTelegram {
	t.Helper()

	f := &fakeTelegram{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeTelegram) bot(t *testing.T) *tgbotapi.BotAPI {
	t.Helper()

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint("123456:test-token", f.srv.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf("building bot: %v", err)
	}
	return bot
}

func (f *fakeTelegram) sentMessages() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]url.Values, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *fakeTelegram) handle(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	w.Header().Set("Content-Type", "application/json")

	switch path.Base(r.URL.Path) {
	case "getMe":
		writeResult(w, tgbotapi.User{ID: 42, IsBot: true, UserName: "scribe_bot"})
	case "getUpdates":
		f.mu.Lock()
		updates := f.updates
		f.updates = nil
		f.mu.Unlock()

		if len(updates) == 0 {
			time.Sleep(25 * time.Millisecond)
		}
		writeResult(w, updates)
	case "sendMessage":
		f.mu.Lock()
		values := url.Values{}
		for key, value := range r.PostForm {
			values[key] = value
		}
		f.sent = append(f.sent, values)
		fail := f.failFirstMarkdown && len(f.sent) == 1 && values.Get("parse_mode") != ""
		f.mu.Unlock()

		if fail {
			_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: can't parse entities"}`))
			return
		}
		writeResult(w, tgbotapi.Message{MessageID: 1})
	default:
		writeResult(w, true)
	}
}

func writeResult(w http.ResponseWriter, result interface{}) {
	raw, _ := json.Marshal(result)
	resp, _ := json.Marshal(struct {
		OK     bool            `json:"ok"`
		Result json.RawMessage `json:"result"`
	}{OK: true, Result: raw})
	_, _ = w.Write(resp)
}

type recordingTranscripts struct {
	mu    sync.Mutex
	calls int
}

func (x *recordingTranscripts) Fetch(ctx context.Context, log *tracing.Logger, videoID string) (string, error) {
	x.mu.Lock()
	x.calls++
	x.mu.Unlock()
	return "", errors.New("transcripts unavailable")
}

func (x *recordingTranscripts) count() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.calls
}

type recordingMeta struct {
	mu    sync.Mutex
	calls int
}

func (x *recordingMeta) Fetch(ctx context.Context, log *tracing.Logger, videoID string) (*youtube.VideoInfo, error) {
	x.mu.Lock()
	x.calls++
	x.mu.Unlock()
	return nil, errors.New("metadata unavailable")
}

func (x *recordingMeta) count() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.calls
}

type stubCompleter struct{}

func (stubCompleter) Invoke(ctx context.Context, log *tracing.Logger, tier *artificial.ModelTier, set platform.MessageSet) (string, error) {
	return "", errors.New("completions unavailable")
}

func testBotConfig() *configuration.Config {
	return &configuration.Config{
		Telegram:     configuration.TelegramConfig{DiplomatChunkSize: 4096},
		Localization: configuration.LocalizationConfig{DefaultLanguage: "en", SupportedLanguages: []string{"en", "ru"}},
	}
}

func testLocalization(t *testing.T) *localization.LocalizationManager {
	t.Helper()

	loc, err := localization.NewLocalizationManager(testBotConfig(), tracing.NewConsoleLogger())
	if err != nil {
		t.Fatalf("building localization: %v", err)
	}
	return loc
}

func newTestHandler(t *testing.T, f *fakeTelegram, transcripts artificial.TranscriptSource, meta artificial.MetadataSource, completer artificial.ChatCompleter) *TelegramHandler {
	t.Helper()

	log := tracing.NewConsoleLogger()
	config := testBotConfig()
	loc := testLocalization(t)
	ms := metrics.NewMetricsService(log)
	bot := f.bot(t)

	aiConfig := &artificial.AIConfig{
		TokenizerModel:          "gpt-4",
		SummarizeHighTier:       artificial.ModelTier{Name: "gpt-4", Ceiling: 3000},
		SummarizeMidTier:        artificial.ModelTier{Name: "gpt-3.5-turbo-16k", Ceiling: 13000},
		SummarizeHighTierBelow:  3000,
		SummarizeMinWords:       200,
		TranscribeTier:          artificial.ModelTier{Name: "gpt-4o", Ceiling: 75000},
		TranscribeMinWords:      20,
		TranscribeTokensPerCall: 50000,
	}

	pipeline := artificial.NewPipeline(transcripts, meta, artificial.NewPromptBuilder(aiConfig), artificial.NewSelector(aiConfig), completer, ms, config)
	return NewTelegramHandler(bot, NewDiplomat(bot, loc, ms), NewTypingManager(bot, log), pipeline, &features.FeatureManager{}, loc, ms)
}
