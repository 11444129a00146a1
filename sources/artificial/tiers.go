package artificial

import (
	"scribe/sources/tracing"
)

// Selector maps an estimated token count to a model tier, or rejects
// the request before any network call when the count exceeds every
// usable ceiling.
type Selector struct {
	config *AIConfig
}

func NewSelector(config *AIConfig) *Selector {
	return &Selector{config: config}
}

// ForSummary picks the high-quality tier for small requests and the
// larger-window mid tier otherwise.
func (x *Selector) ForSummary(log *tracing.Logger, tokens int) (*ModelTier, error) {
	if tokens > x.config.SummarizeMidTier.Ceiling {
		log.W("Summarize request over ceiling", tracing.AiTokens, tokens, "ceiling", x.config.SummarizeMidTier.Ceiling)
		return nil, &TranscriptTooLongError{Verb: "summarize", Tokens: tokens}
	}

	tier := x.config.SummarizeMidTier
	if tokens < x.config.SummarizeHighTierBelow {
		tier = x.config.SummarizeHighTier
	}

	log.I("Summarize tier selected", tracing.AiModel, tier.Name, tracing.AiTokens, tokens)
	return &tier, nil
}

// ForCleanup uses the single higher-capability tier for every cleanup
// call. The total estimate across all message sets must fit its
// ceiling.
func (x *Selector) ForCleanup(log *tracing.Logger, tokens int) (*ModelTier, error) {
	if tokens > x.config.TranscribeTier.Ceiling {
		log.W("Cleanup request over ceiling", tracing.AiTokens, tokens, "ceiling", x.config.TranscribeTier.Ceiling)
		return nil, &TranscriptTooLongError{Verb: "clean up", Tokens: tokens}
	}

	tier := x.config.TranscribeTier
	log.I("Cleanup tier selected", tracing.AiModel, tier.Name, tracing.AiTokens, tokens)
	return &tier, nil
}
