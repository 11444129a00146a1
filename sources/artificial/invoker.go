package artificial

import (
	"context"
	"errors"
	"net/http"
	"time"

	"scribe/sources/metrics"
	"scribe/sources/platform"
	"scribe/sources/tracing"

	"github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"
)

var ErrNoChoices = errors.New("no choices in response")

type completions interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func NewChatClient(client *http.Client, config *AIConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(config.OpenAIToken)
	clientConfig.HTTPClient = client
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// Invoker issues chat-completion requests with an at-most-two-attempts
// policy: one fixed backoff, one retry of the identical request, then
// the second failure propagates unmodified.
type Invoker struct {
	ai      completions
	config  *AIConfig
	metrics *metrics.MetricsService
	sleep   func(time.Duration)
}

func NewInvoker(ai *openai.Client, config *AIConfig, metrics *metrics.MetricsService) *Invoker {
	return &Invoker{ai: ai, config: config, metrics: metrics, sleep: time.Sleep}
}

func (x *Invoker) Invoke(ctx context.Context, log *tracing.Logger, tier *ModelTier, set platform.MessageSet) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(set))
	for _, message := range set {
		messages = append(messages, openai.ChatCompletionMessage{Role: message.Role, Content: message.Content})
	}

	request := openai.ChatCompletionRequest{
		Model:    tier.Name,
		Messages: messages,
	}

	log = log.With(tracing.AiKind, "openai", tracing.AiModel, tier.Name)

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		text, err := x.invokeOnce(ctx, log, request)
		if err == nil {
			return text, nil
		}

		log.E("Chat completion attempt failed", tracing.AiAttempt, attempt, tracing.InnerError, err)
		x.metrics.RecordChatCall(tier.Name, "error")
		lastErr = err

		if attempt == 1 {
			log.W("Retrying chat completion", tracing.AiAttempt, attempt, tracing.AiBackoff, x.config.RetryBackoff)
			x.metrics.RecordChatRetry()
			x.sleep(x.config.RetryBackoff)
		}
	}

	return "", lastErr
}

func (x *Invoker) invokeOnce(ctx context.Context, log *tracing.Logger, request openai.ChatCompletionRequest) (string, error) {
	ctx, cancel := platform.ContextTimeoutVal(ctx, x.config.CallTimeout)
	defer cancel()

	start := time.Now()
	response, err := x.ai.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", ErrNoChoices
	}

	tokens := response.Usage.TotalTokens
	cost := x.estimateCost(request.Model, tokens)

	log.I("Chat completion succeeded", tracing.AiTokens, tokens, tracing.AiCost, cost.String())
	x.metrics.RecordChatCall(request.Model, "success")
	x.metrics.RecordTokenUsage(request.Model, tokens)
	x.metrics.RecordCostUsage(request.Model, cost)
	x.metrics.RecordAiRequestDuration(request.Model, time.Since(start).Seconds())

	return response.Choices[0].Message.Content, nil
}

func (x *Invoker) estimateCost(model string, tokens int) decimal.Decimal {
	price, ok := x.config.Pricing[model]
	if !ok {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(tokens))).Div(decimal.NewFromInt(1000))
}
