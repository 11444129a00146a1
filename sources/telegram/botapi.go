package telegram

import (
	"scribe/sources/configuration"
	"scribe/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func NewBotAPI(log *tracing.Logger, config *configuration.Config) *tgbotapi.BotAPI {
	bot, err := tgbotapi.NewBotAPI(config.Telegram.BotToken)
	if err != nil {
		log.F("Failed to initialize telegram bot", tracing.InnerError, err)
	}

	if config.Telegram.APIEndpoint != "" {
		bot.SetAPIEndpoint(config.Telegram.APIEndpoint)
		log.I("Telegram bot initialized with custom API endpoint", "api_endpoint", config.Telegram.APIEndpoint)
	} else {
		log.I("Telegram bot initialized with default API endpoint")
	}

	return bot
}
