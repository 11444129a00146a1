package metrics

import (
	"scribe/sources/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	messagesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_messages_handled_total",
			Help: "Total number of messages handled by the poller",
		},
		[]string{"status"},
	)

	videosDetected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scribe_videos_detected_total",
			Help: "Total number of video links detected in messages",
		},
	)

	commandsUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_commands_used_total",
			Help: "Total number of commands used",
		},
		[]string{"command"},
	)

	operationsRequested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_operations_requested_total",
			Help: "Total number of summarize/transcribe operations requested",
		},
		[]string{"operation"},
	)

	operationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_operations_failed_total",
			Help: "Total number of failed operations by failure class",
		},
		[]string{"operation", "class"},
	)

	messagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_messages_sent_total",
			Help: "Total number of messages sent by the diplomat",
		},
		[]string{"status"},
	)

	chatCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_chat_calls_total",
			Help: "Total number of chat-completion calls",
		},
		[]string{"model", "status"},
	)

	chatRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scribe_chat_retries_total",
			Help: "Total number of chat-completion retries after a failed attempt",
		},
	)

	tokenUsage = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_token_usage_total",
			Help: "Total number of tokens used",
		},
		[]string{"model"},
	)

	costUsage = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_cost_usage_total",
			Help: "Estimated total cost incurred, in dollars",
		},
		[]string{"model"},
	)

	aiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scribe_ai_request_duration_seconds",
			Help:    "Duration of chat-completion requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	displayChunks = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scribe_display_chunks",
			Help:    "Number of display chunks produced per operation",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		},
	)
)

func init() {
	prometheus.MustRegister(
		messagesHandled,
		videosDetected,
		commandsUsed,
		operationsRequested,
		operationsFailed,
		messagesSent,
		chatCalls,
		chatRetries,
		tokenUsage,
		costUsage,
		aiRequestDuration,
		displayChunks,
	)
}

func NewMetricsService(log *tracing.Logger) *MetricsService {
	return &MetricsService{log: log}
}

func (x *MetricsService) RecordMessageHandled(status string) {
	messagesHandled.WithLabelValues(status).Inc()
}

func (x *MetricsService) RecordVideosDetected(count int) {
	videosDetected.Add(float64(count))
}

func (x *MetricsService) RecordCommandUsed(command string) {
	commandsUsed.WithLabelValues(command).Inc()
}

func (x *MetricsService) RecordOperationRequested(operation string) {
	operationsRequested.WithLabelValues(operation).Inc()
}

func (x *MetricsService) RecordOperationFailed(operation, class string) {
	operationsFailed.WithLabelValues(operation, class).Inc()
}

func (x *MetricsService) RecordMessageSent(status string) {
	messagesSent.WithLabelValues(status).Inc()
}

func (x *MetricsService) RecordChatCall(model, status string) {
	chatCalls.WithLabelValues(model, status).Inc()
}

func (x *MetricsService) RecordChatRetry() {
	chatRetries.Inc()
}

func (x *MetricsService) RecordTokenUsage(model string, tokens int) {
	tokenUsage.WithLabelValues(model).Add(float64(tokens))
}

func (x *MetricsService) RecordCostUsage(model string, cost decimal.Decimal) {
	value, _ := cost.Float64()
	costUsage.WithLabelValues(model).Add(value)
}

func (x *MetricsService) RecordAiRequestDuration(model string, seconds float64) {
	aiRequestDuration.WithLabelValues(model).Observe(seconds)
}

func (x *MetricsService) RecordDisplayChunks(count int) {
	displayChunks.Observe(float64(count))
}
