package configuration

import (
	"time"
)

type Config struct {
	Service      ServiceConfig      `yaml:"service"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	AI           AIConfig           `yaml:"ai"`
	YouTube      YouTubeConfig      `yaml:"youtube"`
	Network      NetworkConfig      `yaml:"network"`
	Features     FeaturesConfig     `yaml:"features"`
	Localization LocalizationConfig `yaml:"localization"`
}

type ServiceConfig struct {
	StartupPort            int `yaml:"startup_port"`
	SystemMetricsPort      int `yaml:"system_metrics_port"`
	ApplicationMetricsPort int `yaml:"application_metrics_port"`
}

type TelegramConfig struct {
	BotToken          string   `yaml:"bot_token"`
	APIEndpoint       string   `yaml:"api_endpoint"`
	PollerTimeout     int      `yaml:"poller_timeout"`
	AllowedUpdates    []string `yaml:"allowed_updates"`
	DiplomatChunkSize int      `yaml:"diplomat_chunk_size"`
}

type AIConfig struct {
	OpenAIToken string `yaml:"openai_token"`
	BaseURL     string `yaml:"base_url"`

	TokenizerModel string `yaml:"tokenizer_model"`

	Summarize  SummarizeConfig  `yaml:"summarize"`
	Transcribe TranscribeConfig `yaml:"transcribe"`

	RetryBackoff time.Duration `yaml:"retry_backoff"`
	CallTimeout  time.Duration `yaml:"call_timeout"`

	Pricing map[string]string `yaml:"pricing"`
}

// SummarizeConfig encodes the summarize tier policy: requests above
// MaxTokens are rejected, below HighTierBelow go to the high-quality
// model, everything in between to the mid tier with the larger window.
type SummarizeConfig struct {
	HighTierModel string `yaml:"high_tier_model"`
	MidTierModel  string `yaml:"mid_tier_model"`
	HighTierBelow int    `yaml:"high_tier_below"`
	MaxTokens     int    `yaml:"max_tokens"`
	MinWords      int    `yaml:"min_words"`
}

type TranscribeConfig struct {
	Model           string `yaml:"model"`
	MaxTokens       int    `yaml:"max_tokens"`
	MinWords        int    `yaml:"min_words"`
	TokensPerCall   int    `yaml:"tokens_per_call"`
}

type YouTubeConfig struct {
	APIKey             string        `yaml:"api_key"`
	TranscriptEndpoint string        `yaml:"transcript_endpoint"`
	FetchTimeout       time.Duration `yaml:"fetch_timeout"`
}

type NetworkConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ProxyAddress   string `yaml:"proxy_address"`
	ProxyUser      string `yaml:"proxy_user"`
	ProxyPassword  string `yaml:"proxy_password"`
}

type FeaturesConfig struct {
	UnleashAPIURL     string `yaml:"unleash_api_url"`
	UnleashAppName    string `yaml:"unleash_app_name"`
	UnleashInstanceID string `yaml:"unleash_instance_id"`
	RefreshInterval   int    `yaml:"refresh_interval"`
}

type LocalizationConfig struct {
	DefaultLanguage    string   `yaml:"default_language"`
	SupportedLanguages []string `yaml:"supported_languages"`
}
