package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// ChatHistoryWindow is the number of prior turns sent with each query.
	ChatHistoryWindow = 10

	ChatFallbackReply = "Sorry, there was an error processing your request."
)
