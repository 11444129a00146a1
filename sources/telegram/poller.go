package telegram

import (
	"context"

	"scribe/sources/configuration"
	"scribe/sources/metrics"
	"scribe/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type Poller struct {
	bot     *tgbotapi.BotAPI
	log     *tracing.Logger
	config  *configuration.Config
	handler *TelegramHandler
	metrics *metrics.MetricsService
}

func NewPoller(bot *tgbotapi.BotAPI, log *tracing.Logger, config *configuration.Config, handler *TelegramHandler, metrics *metrics.MetricsService) *Poller {
	return &Poller{bot: bot, log: log, config: config, handler: handler, metrics: metrics}
}

func (x *Poller) Start() {
	update := tgbotapi.NewUpdate(0)
	update.Timeout = x.config.Telegram.PollerTimeout
	update.AllowedUpdates = x.config.Telegram.AllowedUpdates

	for update := range x.bot.GetUpdatesChan(update) {
		msg := update.Message
		if msg == nil {
			continue
		}

		log := x.log.With(tracing.RequestId, uuid.NewString())

		if user := update.SentFrom(); user != nil {
			log = log.With(
				tracing.UserId, user.ID,
				tracing.UserName, user.UserName,
			)
		}

		log = log.With(
			tracing.ChatType, msg.Chat.Type,
			tracing.ChatId, msg.Chat.ID,
			tracing.MessageId, msg.MessageID,
			tracing.MessageDate, msg.Date,
		)

		// One slow video must not stall other chats: operations block on
		// LLM calls and retry backoffs, and all state is request-scoped.
		go x.dispatch(log, msg)
	}
}

func (x *Poller) dispatch(log *tracing.Logger, msg *tgbotapi.Message) {
	if err := x.handler.HandleMessage(context.Background(), log, msg); err != nil {
		x.metrics.RecordMessageHandled("error")
		log.E("Message handling failed", tracing.InnerError, err)
		return
	}

	x.metrics.RecordMessageHandled("success")
	log.I("Message handled")
}

func (x *Poller) Stop() {
	x.bot.StopReceivingUpdates()
}
