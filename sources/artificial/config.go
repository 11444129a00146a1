package artificial

import (
	"time"

	"scribe/sources/configuration"

	"github.com/shopspring/decimal"
)

// ModelTier is a named model configuration with a token ceiling. A
// message set estimated above the ceiling of its selected tier is
// rejected before any network call.
type ModelTier struct {
	Name    string
	Ceiling int
}

// AIConfig carries the tier table and token-budget policy. The values
// encode cost/quality tradeoffs against the upstream model family's
// pricing and context windows, so they live in configuration rather
// than code.
type AIConfig struct {
	OpenAIToken string
	BaseURL     string

	TokenizerModel string

	SummarizeHighTier      ModelTier
	SummarizeMidTier       ModelTier
	SummarizeHighTierBelow int
	SummarizeMinWords      int

	TranscribeTier          ModelTier
	TranscribeMinWords      int
	TranscribeTokensPerCall int

	RetryBackoff time.Duration
	CallTimeout  time.Duration

	// Pricing is dollars per 1000 prompt tokens by model name, used for
	// the estimated-cost metric only.
	Pricing map[string]decimal.Decimal
}

func NewAIConfig(config *configuration.Config) *AIConfig {
	pricing := make(map[string]decimal.Decimal, len(config.AI.Pricing))
	for model, price := range config.AI.Pricing {
		if value, err := decimal.NewFromString(price); err == nil {
			pricing[model] = value
		}
	}

	return &AIConfig{
		OpenAIToken: config.AI.OpenAIToken,
		BaseURL:     config.AI.BaseURL,

		TokenizerModel: config.AI.TokenizerModel,

		SummarizeHighTier:      ModelTier{Name: config.AI.Summarize.HighTierModel, Ceiling: config.AI.Summarize.HighTierBelow},
		SummarizeMidTier:       ModelTier{Name: config.AI.Summarize.MidTierModel, Ceiling: config.AI.Summarize.MaxTokens},
		SummarizeHighTierBelow: config.AI.Summarize.HighTierBelow,
		SummarizeMinWords:      config.AI.Summarize.MinWords,

		TranscribeTier:          ModelTier{Name: config.AI.Transcribe.Model, Ceiling: config.AI.Transcribe.MaxTokens},
		TranscribeMinWords:      config.AI.Transcribe.MinWords,
		TranscribeTokensPerCall: config.AI.Transcribe.TokensPerCall,

		RetryBackoff: config.AI.RetryBackoff,
		CallTimeout:  config.AI.CallTimeout,

		Pricing: pricing,
	}
}
