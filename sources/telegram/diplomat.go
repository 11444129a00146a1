package telegram

import (
	"scribe/sources/artificial"
	"scribe/sources/localization"
	"scribe/sources/metrics"
	"scribe/sources/texting"
	"scribe/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Diplomat owns all outbound Telegram traffic. Digest chunks go out in
// order with a part header, so a multi-message digest reads top to
// bottom in the chat.
type Diplomat struct {
	bot          *tgbotapi.BotAPI
	localization *localization.LocalizationManager
	metrics      *metrics.MetricsService
}

func NewDiplomat(bot *tgbotapi.BotAPI, localization *localization.LocalizationManager, metrics *metrics.MetricsService) *Diplomat {
	return &Diplomat{bot: bot, localization: localization, metrics: metrics}
}

func (x *Diplomat) Reply(log *tracing.Logger, msg *tgbotapi.Message, text string) {
	if err := x.send(log, msg.Chat.ID, msg.MessageID, texting.EscapeMarkdown(text), text); err != nil {
		log.E("Reply sending error", tracing.InnerError, err)
	}
}

// SendDigest posts every chunk of a digest as a reply to the request
// message. Chunks after the first lose their header budget to the part
// label, which is fine: display chunking leaves headroom and Telegram's
// limit sits above the chunk budget.
func (x *Diplomat) SendDigest(log *tracing.Logger, msg *tgbotapi.Message, digest *artificial.Digest) error {
	total := len(digest.Chunks)

	for i, chunk := range digest.Chunks {
		markdown, plain := x.decorate(msg, digest, chunk, i, total)

		if err := x.send(log, msg.Chat.ID, msg.MessageID, markdown, plain); err != nil {
			log.E("Digest chunk sending error", tracing.InnerError, err, "chunk", i+1, "chunks", total)
			return err
		}
	}

	log.I("Digest sent", tracing.ChunkCount, total)
	return nil
}

// send posts the MarkdownV2 rendition first. Model output can carry
// unbalanced emphasis that Telegram rejects at parse time, so a
// rejected payload is resent once as plain text instead of losing the
// chunk.
func (x *Diplomat) send(log *tracing.Logger, chatID int64, replyTo int, markdown, plain string) error {
	chattable := tgbotapi.NewMessage(chatID, markdown)
	chattable.ReplyToMessageID = replyTo
	chattable.ParseMode = tgbotapi.ModeMarkdownV2

	_, err := x.bot.Send(chattable)
	if err == nil {
		x.metrics.RecordMessageSent("success")
		return nil
	}
	log.W("Markdown message rejected, retrying as plain text", tracing.InnerError, err)

	fallback := tgbotapi.NewMessage(chatID, plain)
	fallback.ReplyToMessageID = replyTo

	if _, err := x.bot.Send(fallback); err != nil {
		x.metrics.RecordMessageSent("error")
		return err
	}

	x.metrics.RecordMessageSent("success")
	return nil
}

func (x *Diplomat) decorate(msg *tgbotapi.Message, digest *artificial.Digest, chunk string, index, total int) (string, string) {
	var header string
	if total > 1 {
		header = x.localization.LocalizeByTd(msg, "digest.part", map[string]interface{}{
			"Title": digest.Info.Title,
			"Index": index + 1,
			"Total": total,
		})
	} else {
		header = digest.Info.Title
	}

	markdown := "*" + texting.EscapeMarkdown(header) + "*\n\n" + texting.EscapeMarkdown(chunk)
	plain := header + "\n\n" + chunk

	if index == total-1 && digest.Info.ChannelName != "" {
		footer := x.localization.LocalizeByTd(msg, "digest.channel", map[string]interface{}{
			"Channel": digest.Info.ChannelName,
		})
		markdown += "\n\n_" + texting.EscapeMarkdown(footer) + "_"
		plain += "\n\n" + footer
	}

	return markdown, plain
}
