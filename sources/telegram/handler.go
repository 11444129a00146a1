package telegram

import (
	"context"
	"errors"
	"strings"

	"scribe/sources/artificial"
	"scribe/sources/features"
	"scribe/sources/localization"
	"scribe/sources/metrics"
	"scribe/sources/platform"
	"scribe/sources/texting"
	"scribe/sources/tracing"
	"scribe/sources/youtube"

	"github.com/alecthomas/kong"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramHandler struct {
	bot          *tgbotapi.BotAPI
	diplomat     *Diplomat
	typing       *TypingManager
	pipeline     *artificial.Pipeline
	features     *features.FeatureManager
	localization *localization.LocalizationManager
	metrics      *metrics.MetricsService
}

func NewTelegramHandler(bot *tgbotapi.BotAPI, diplomat *Diplomat, typing *TypingManager, pipeline *artificial.Pipeline, fm *features.FeatureManager, localization *localization.LocalizationManager, metrics *metrics.MetricsService) *TelegramHandler {
	return &TelegramHandler{
		bot:          bot,
		diplomat:     diplomat,
		typing:       typing,
		pipeline:     pipeline,
		features:     fm,
		localization: localization,
		metrics:      metrics,
	}
}

func (x *TelegramHandler) HandleMessage(ctx context.Context, log *tracing.Logger, msg *tgbotapi.Message) error {
	defer tracing.ProfilePoint(log, "Telegram handler message completed", "telegram.handler.message")()
	log.I("Got message")

	// Other bots' messages never trigger processing, so two scribes in
	// one chat cannot feed each other.
	if msg.From != nil && msg.From.IsBot {
		log.D("Ignoring bot message")
		return nil
	}

	if msg.IsCommand() {
		log = log.With(tracing.CommandIssued, msg.Command())
		x.metrics.RecordCommandUsed(msg.Command())

		switch msg.Command() {
		case "start", "help":
			x.diplomat.Reply(log, msg, x.localization.LocalizeBy(msg, "hint.summary")+"\n"+x.localization.LocalizeBy(msg, "hint.transcript"))
			return nil
		case "summary":
			return x.handleOperation(ctx, log, msg, platform.OperationSummarize, features.FeatureSummarize, &SummaryCmd{})
		case "transcript":
			return x.handleOperation(ctx, log, msg, platform.OperationTranscribe, features.FeatureTranscribe, &TranscriptCmd{})
		default:
			log.D("Ignoring unknown command")
			return nil
		}
	}

	return x.handleImplicitScan(log, msg)
}

// handleImplicitScan notices links dropped into the chat without any
// command and offers the commands in reply. Processing costs real LLM
// calls, so it never starts until a user asks for it.
func (x *TelegramHandler) handleImplicitScan(log *tracing.Logger, msg *tgbotapi.Message) error {
	if !x.features.IsEnabledDefault(features.FeatureImplicitScan, true) {
		return nil
	}

	videoIDs := youtube.VideoIDs(msg.Text)
	if len(videoIDs) == 0 {
		return nil
	}

	log.I("Video links detected", "videos", len(videoIDs))
	x.metrics.RecordVideosDetected(len(videoIDs))
	x.diplomat.Reply(log, msg, x.localization.LocalizeBy(msg, "hint.detected"))

	return nil
}

func (x *TelegramHandler) handleOperation(ctx context.Context, log *tracing.Logger, msg *tgbotapi.Message, operation platform.VideoOperation, feature string, cmd interface{}) error {
	if !x.features.IsEnabledDefault(feature, true) {
		log.W("Operation disabled by feature toggle", tracing.Operation, operation)
		x.diplomat.Reply(log, msg, x.localization.LocalizeBy(msg, "operation.disabled"))
		return nil
	}

	videoIDs, err := x.commandVideoIDs(log, msg, cmd)
	if err != nil || len(videoIDs) == 0 {
		x.diplomat.Reply(log, msg, x.localization.LocalizeBy(msg, "hint."+msg.Command()))
		return nil
	}

	x.metrics.RecordVideosDetected(len(videoIDs))
	return x.process(ctx, log, msg, operation, videoIDs)
}

// commandVideoIDs resolves the command's target videos: the explicit
// argument first, then any links in the replied-to message.
func (x *TelegramHandler) commandVideoIDs(log *tracing.Logger, msg *tgbotapi.Message, cmd interface{}) ([]string, error) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args != "" {
		parser, err := kong.New(cmd)
		if err != nil {
			return nil, err
		}
		if _, err := parser.Parse(texting.ParseCmdArgs(args)); err != nil {
			log.W("Error parsing command", tracing.InnerError, err)
			return nil, err
		}
		if videoIDs := youtube.VideoIDs(args); len(videoIDs) > 0 {
			return videoIDs, nil
		}
		return nil, errors.New("no video link in command arguments")
	}

	if reply := msg.ReplyToMessage; reply != nil {
		text := reply.Text
		if text == "" {
			text = reply.Caption
		}
		if videoIDs := youtube.VideoIDs(text); len(videoIDs) > 0 {
			return videoIDs, nil
		}
	}

	return nil, nil
}

// process runs one operation per detected video, sequentially. A
// failure on one video is reported in-chat and does not stop the rest.
func (x *TelegramHandler) process(ctx context.Context, log *tracing.Logger, msg *tgbotapi.Message, operation platform.VideoOperation, videoIDs []string) error {
	if x.features.IsEnabledDefault(features.FeatureTypingIndicator, true) {
		x.typing.Start(msg.Chat.ID)
		defer x.typing.Stop(msg.Chat.ID)
	}

	var lastErr error
	for _, videoID := range videoIDs {
		digest, err := x.runOperation(ctx, log, operation, videoID)
		if err != nil {
			x.reportFailure(log.With(tracing.VideoId, videoID), msg, operation, err)
			continue
		}

		if err := x.diplomat.SendDigest(log.With(tracing.VideoId, videoID), msg, digest); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

func (x *TelegramHandler) runOperation(ctx context.Context, log *tracing.Logger, operation platform.VideoOperation, videoID string) (*artificial.Digest, error) {
	if operation == platform.OperationTranscribe {
		return x.pipeline.CleanTranscript(ctx, log, videoID)
	}
	return x.pipeline.Summarize(ctx, log, videoID)
}

func (x *TelegramHandler) reportFailure(log *tracing.Logger, msg *tgbotapi.Message, operation platform.VideoOperation, err error) {
	log.E("Operation failed", tracing.Operation, operation, tracing.InnerError, err)

	var tooShort *artificial.TranscriptTooShortError
	var tooLong *artificial.TranscriptTooLongError

	switch {
	case youtube.IsNotFound(err):
		x.diplomat.Reply(log, msg, x.localization.LocalizeBy(msg, "video.not.found"))
	case errors.As(err, &tooShort):
		x.diplomat.Reply(log, msg, x.localization.LocalizeByTd(msg, "transcript.too.short."+operation, map[string]interface{}{"Words": tooShort.Words}))
	case errors.As(err, &tooLong):
		x.diplomat.Reply(log, msg, x.localization.LocalizeByTd(msg, "transcript.too.long."+operation, map[string]interface{}{"Tokens": tooLong.Tokens}))
	default:
		x.diplomat.Reply(log, msg, x.localization.LocalizeBy(msg, "service.trouble"))
	}
}
