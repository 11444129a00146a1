package configuration

import (
	"fmt"
	"os"
	"regexp"
	"scribe/sources/platform"
	"scribe/sources/tracing"

	"gopkg.in/yaml.v3"
)

// NewYaml reads the configuration from the specified file path (default: config.yaml)
// and returns a Config struct. It supports environment variable expansion.
func NewYaml(log *tracing.Logger) (*Config, error) {
	defer tracing.ProfilePoint(log, "Configuration loaded", "configuration.load")()

	filePath := platform.Get("CONFIG_PATH", "config.yaml")

	log.I("reading configuration", "path", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.E("failed to read configuration file", tracing.InnerError, err, "path", filePath)
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	expandedContent := expandEnv(string(content))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedContent), &config); err != nil {
		log.E("failed to parse configuration file", tracing.InnerError, err, "path", filePath)
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := validate(&config); err != nil {
		log.E("configuration is incomplete", tracing.InnerError, err, "path", filePath)
		return nil, err
	}

	return &config, nil
}

func validate(config *Config) error {
	if err := platform.ValidateTelegramBotToken(config.Telegram.BotToken); err != nil {
		return err
	}
	if err := platform.ValidateNotEmpty(config.AI.OpenAIToken, "ai.openai_token"); err != nil {
		return err
	}
	if err := platform.ValidateNotEmpty(config.YouTube.APIKey, "youtube.api_key"); err != nil {
		return err
	}
	if err := platform.ValidateNotEmpty(config.YouTube.TranscriptEndpoint, "youtube.transcript_endpoint"); err != nil {
		return err
	}
	return nil
}

// expandEnv replaces ${VAR} or ${VAR:default} with environment values.
func expandEnv(content string) string {
	re := regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::([^}]*))?\}`)

	return re.ReplaceAllStringFunc(content, func(match string) string {
		matches := re.FindStringSubmatch(match)
		key := matches[1]
		defaultValue := ""
		if len(matches) > 2 {
			defaultValue = matches[2]
		}

		value, exists := os.LookupEnv(key)
		if !exists {
			return defaultValue
		}
		return value
	})
}
