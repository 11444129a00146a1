package localization

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"scribe/sources/configuration"
	"scribe/sources/tracing"

	"github.com/BurntSushi/toml"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// LocalizationManager resolves user-facing replies by the sender's
// Telegram language code. Resolved locales are cached per user so a
// sender with an empty language code keeps their last known locale.
type LocalizationManager struct {
	bundle  *i18n.Bundle
	config  *configuration.Config
	log     *tracing.Logger
	locbuff sync.Map
}

func NewLocalizationManager(config *configuration.Config, log *tracing.Logger) (*LocalizationManager, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range config.Localization.SupportedLanguages {
		filename := fmt.Sprintf("locales/active.%s.toml", lang)

		data, err := localesFS.ReadFile(filename)
		if err != nil {
			log.E("Failed to read locale file", "filename", filename, tracing.InnerError, err)
			return nil, fmt.Errorf("failed to read locale file %s: %w", filename, err)
		}

		if _, err := bundle.ParseMessageFileBytes(data, filename); err != nil {
			log.E("Failed to parse locale file", "filename", filename, tracing.InnerError, err)
			return nil, fmt.Errorf("failed to parse locale file %s: %w", filename, err)
		}

		log.I("Loaded locale file", "filename", filename)
	}

	log.I("LocalizationManager initialized successfully")
	return &LocalizationManager{bundle: bundle, config: config, log: log}, nil
}

func (x *LocalizationManager) LocalizeBy(msg *tgbotapi.Message, messageID string) string {
	return x.LocalizeByTd(msg, messageID, nil)
}

func (x *LocalizationManager) LocalizeByTd(msg *tgbotapi.Message, messageID string, templateData map[string]interface{}) string {
	locale := x.localeFor(msg)
	localizer := i18n.NewLocalizer(x.bundle, locale, x.config.Localization.DefaultLanguage)

	text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: templateData})
	if err != nil {
		x.log.E("Failed to localize message", "message_id", messageID, tracing.InnerError, err)
		return messageID
	}

	return text
}

func (x *LocalizationManager) localeFor(msg *tgbotapi.Message) string {
	if msg == nil || msg.From == nil {
		return x.config.Localization.DefaultLanguage
	}

	userId := msg.From.ID

	if msg.From.LanguageCode != "" {
		locale := x.mapTelegramLanguageCode(msg.From.LanguageCode)
		x.locbuff.Store(userId, locale)
		x.log.D("Locale resolved from Telegram language code", tracing.UserId, userId, "telegram_code", msg.From.LanguageCode, "locale", locale)
		return locale
	}

	if cached, ok := x.locbuff.Load(userId); ok {
		locale := cached.(string)
		x.log.D("Locale loaded from cache", tracing.UserId, userId, "locale", locale)
		return locale
	}

	x.log.D("No locale information available, using default", tracing.UserId, userId)
	return x.config.Localization.DefaultLanguage
}

func (x *LocalizationManager) mapTelegramLanguageCode(telegramCode string) string {
	lowerCode := strings.ToLower(telegramCode)

	switch {
	case strings.HasPrefix(lowerCode, "ru"), strings.HasPrefix(lowerCode, "uk"), strings.HasPrefix(lowerCode, "be"):
		return "ru"
	case strings.HasPrefix(lowerCode, "en"):
		return "en"
	default:
		return x.config.Localization.DefaultLanguage
	}
}
