package platform

type MessageRole = string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

// ChatMessage is one role-tagged message of a chat-completion request.
// Ordering inside a MessageSet is significant: system first, then user.
type ChatMessage struct {
	Role    MessageRole
	Content string
}

// MessageSet is one complete, independently submittable request body.
type MessageSet []ChatMessage

type VideoOperation = string

const (
	OperationSummarize  VideoOperation = "summarize"
	OperationTranscribe VideoOperation = "transcribe"
)
