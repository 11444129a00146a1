package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"scribe/sources/metrics"
	"scribe/sources/tracing"
	"scribe/sources/youtube"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// blockingMeta parks every fetch until released, simulating a slow
// upstream while letting the test observe which requests have started.
type blockingMeta struct {
	starts  chan string
	release chan struct{}
	once    sync.Once
}

func (m *blockingMeta) Fetch(ctx context.Context, log *tracing.Logger, videoID string) (*youtube.VideoInfo, error) {
	m.starts <- videoID
	<-m.release
	return nil, errors.New("released")
}

func summaryUpdate(updateID int, chatID int64, link string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: updateID,
		Message: &tgbotapi.Message{
			MessageID: updateID,
			Date:      1700000000,
			From:      &tgbotapi.User{ID: chatID, FirstName: "user", LanguageCode: "en"},
			Chat:      &tgbotapi.Chat{ID: chatID, Type: "private"},
			Text:      "/summary " + link,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 8}},
		},
	}
}

func TestPollerServesChatsWhileOneOperationIsInFlight(t *testing.T) {
	log := tracing.NewConsoleLogger()
	f := newFakeTelegram(t)
	f.updates = []tgbotapi.Update{
		summaryUpdate(1, 100, "https://youtu.be/dQw4w9WgXcQ"),
		summaryUpdate(2, 200, "https://youtu.be/jNQXAC9IVRw"),
	}

	meta := &blockingMeta{starts: make(chan string, 2), release: make(chan struct{})}
	defer meta.once.Do(func() { close(meta.release) })

	handler := newTestHandler(t, f, &recordingTranscripts{}, meta, stubCompleter{})
	poller := NewPoller(handler.bot, log, testBotConfig(), handler, metrics.NewMetricsService(log))

	go poller.Start()
	defer poller.Stop()

	// Both operations must start even though neither has finished.
	for i := 0; i < 2; i++ {
		select {
		case videoID := <-meta.starts:
			log.I("Operation started", tracing.VideoId, videoID)
		case <-time.After(5 * time.Second):
			t.Fatal("second chat starved while the first operation was in flight")
		}
	}

	meta.once.Do(func() { close(meta.release) })
}
