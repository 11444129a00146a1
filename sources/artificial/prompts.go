package artificial

import (
	"fmt"
	"strings"

	"scribe/sources/platform"
	"scribe/sources/texting"
	"scribe/sources/tracing"
)

const (
	summarizeSystemTemplate = "You are a summarization assistant. When the user gives you a message, you respond with a summary of the information inside. Just summarize the information without saying \"the speaker says\" or similar. The message will be an autogenerated transcript of a youtube video, and may have transcription errors and improperly separated speakers. Your summary should be about %d words."

	summarizeUserTemplate = "%s%s\n\nTranscript: %s\n\n\nBe as concise as possible in your summary. Repeat the information without extra fluff like '%s says'. Use full markdown syntax, and break the summary into paragraphs. Emphasize the most important information in **bold**. Remember that your summary should be about %d words. Just return the summary without repeating the Title or Channel, and don't write `Summary:`"

	cleanupSystemPrompt = "You are a transcription assistant. The user will send an autogenerated transcript of a youtube video, which may have transcription errors, punctuation errors, and improperly separated speakers. You respond with a cleaned-up version of the transcript. The channel name and video title will be included in the message for additional context, but you should not include them in your response"

	cleanupUserTemplate = "%s%s\n\nTranscript: %s\n\n\nClean up the transcript above, fixing punctuation, transcription errors, and improperly separated speakers. Use full markdown syntax, and break it into paragraphs. Emphasize the most important information in **bold**. Just return the transcript without repeating the Title or Channel, and don't write `Transcript:`."

	summarizeGoalCap     = 2000
	summarizeGoalDivisor = 5
)

// TokenCounterFunc estimates the token cost of one message set for a
// model family.
type TokenCounterFunc func(log *tracing.Logger, set platform.MessageSet, model string) int

// PromptPlan is the ordered collection of message sets needed to fully
// process one transcript under the per-call token budget. Concatenating
// the transcript fragments of its sets, in order, reconstructs the
// transcript with no words dropped or duplicated.
type PromptPlan struct {
	Sets   []platform.MessageSet
	Tokens int
}

type PromptBuilder struct {
	config *AIConfig
	tokens TokenCounterFunc
}

func NewPromptBuilder(config *AIConfig) *PromptBuilder {
	return &PromptBuilder{config: config, tokens: texting.EstimateTokens}
}

// BuildSummarize produces the single message set of a summary request.
// An oversized transcript is not split across calls here: a partial
// summary would be misleading, so the tier selector rejects it instead.
func (x *PromptBuilder) BuildSummarize(log *tracing.Logger, transcript, title, channelName string) (*PromptPlan, error) {
	words := len(texting.Words(transcript))
	if words <= x.config.SummarizeMinWords {
		log.W("Transcript below summarize minimum", tracing.WordCount, words)
		return nil, &TranscriptTooShortError{Verb: "summarize", Words: words}
	}

	goalLength := words / summarizeGoalDivisor
	if goalLength > summarizeGoalCap {
		goalLength = summarizeGoalCap
	}

	speaker := channelName
	if speaker == "" {
		speaker = "the speaker"
	}

	set := platform.MessageSet{
		{
			Role:    platform.MessageRoleSystem,
			Content: fmt.Sprintf(summarizeSystemTemplate, goalLength),
		},
		{
			Role:    platform.MessageRoleUser,
			Content: fmt.Sprintf(summarizeUserTemplate, titleBlock(title), channelBlock(channelName), transcript, speaker, goalLength),
		},
	}

	tokens := x.tokens(log, set, x.config.TokenizerModel)
	log.I("Summarize prompt built", tracing.WordCount, words, tracing.AiTokens, tokens, "goal_length", goalLength)

	return &PromptPlan{Sets: []platform.MessageSet{set}, Tokens: tokens}, nil
}

// BuildCleanup produces one message set per transcript partition. The
// whole transcript is costed first; when the estimate exceeds the
// per-call budget, the words are split into equal contiguous groups so
// that no single call can exceed it.
func (x *PromptBuilder) BuildCleanup(log *tracing.Logger, transcript, title, channelName string) (*PromptPlan, error) {
	words := texting.Words(transcript)
	if len(words) <= x.config.TranscribeMinWords {
		log.W("Transcript below cleanup minimum", tracing.WordCount, len(words))
		return nil, &TranscriptTooShortError{Verb: "clean up", Words: len(words)}
	}

	candidate := x.cleanupSet(transcript, title, channelName)
	tokens := x.tokens(log, candidate, x.config.TokenizerModel)

	groups := tokens/x.config.TranscribeTokensPerCall + 1
	groupSize := len(words)/groups + 1

	var sets []platform.MessageSet
	for start := 0; start < len(words); start += groupSize {
		end := start + groupSize
		if end > len(words) {
			end = len(words)
		}
		fragment := strings.Join(words[start:end], " ")
		sets = append(sets, x.cleanupSet(fragment, title, channelName))
	}

	total := 0
	for _, set := range sets {
		total += x.tokens(log, set, x.config.TokenizerModel)
	}

	log.I("Cleanup prompt plan built", tracing.WordCount, len(words), tracing.AiTokens, total, "message_sets", len(sets))

	return &PromptPlan{Sets: sets, Tokens: total}, nil
}

func (x *PromptBuilder) cleanupSet(transcript, title, channelName string) platform.MessageSet {
	return platform.MessageSet{
		{
			Role:    platform.MessageRoleSystem,
			Content: cleanupSystemPrompt,
		},
		{
			Role:    platform.MessageRoleUser,
			Content: fmt.Sprintf(cleanupUserTemplate, titleBlock(title), channelBlock(channelName), transcript),
		},
	}
}

func titleBlock(title string) string {
	if title == "" {
		return ""
	}
	return "Title: " + title
}

func channelBlock(channelName string) string {
	if channelName == "" {
		return ""
	}
	return "\nChannel: " + channelName
}
