package constant

const (
	TopicUploadSucceeded = "client.upload.succeeded"
	TopicStateChanged    = "client.state.changed"

	EventUploadSucceeded     = "UPLOAD_SUCCEEDED"
	EventUploadStateChanged  = "UPLOAD_STATE_CHANGED"
	EventCorpusUpdated       = "CORPUS_UPDATED"
	EventConversationUpdated = "CONVERSATION_UPDATED"
)
