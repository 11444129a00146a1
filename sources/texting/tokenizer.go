package texting

import (
	"sync"

	"scribe/sources/platform"
	"scribe/sources/tracing"

	"github.com/pkoukk/tiktoken-go"
)

// Per-message framing overhead of the gpt-3.5/gpt-4 chat format. Raw
// content tokens alone undercount, and undercounting risks upstream
// rejection mid-pipeline.
const (
	tokensPerMessage = 3
	tokensPerReply   = 3
)

var (
	encodings sync.Map
	fallback  = func() *tiktoken.Tiktoken {
		enc, _ := tiktoken.GetEncoding("cl100k_base")
		return enc
	}()
)

func encodingFor(model string) *tiktoken.Tiktoken {
	if cached, ok := encodings.Load(model); ok {
		return cached.(*tiktoken.Tiktoken)
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc = fallback
	}

	encodings.Store(model, enc)
	return enc
}

func Tokens(log *tracing.Logger, text string, model string) int {
	return tracing.ReportExecutionForRIn(log,
		func() int { return len(encodingFor(model).Encode(text, nil, nil)) },
		func(l *tracing.Logger, tokens int) { l.D("Tokens counted", tracing.AiTokens, tokens) },
	)
}

// EstimateTokens estimates how many tokens a message set consumes for the
// given model family, including role and reply framing.
func EstimateTokens(log *tracing.Logger, set platform.MessageSet, model string) int {
	return tracing.ReportExecutionForRIn(log,
		func() int {
			enc := encodingFor(model)

			total := tokensPerReply
			for _, message := range set {
				total += tokensPerMessage
				total += len(enc.Encode(message.Role, nil, nil))
				total += len(enc.Encode(message.Content, nil, nil))
			}
			return total
		},
		func(l *tracing.Logger, tokens int) {
			l.D("Message set tokens estimated", tracing.AiTokens, tokens, tracing.AiModel, model)
		},
	)
}
