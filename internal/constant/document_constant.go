package constant

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

	UploadSourcePicker = "picker"
	UploadSourceDrop   = "drop"

	UploadStatusSuccess         = "success"
	UploadStatusValidationError = "validation_error"
	UploadStatusFailed          = "failed"

	UploadInvalidTypeMessage = "Please upload a valid PDF, DOCX, or PPTX file"
	UploadFailedMessage      = "Upload failed"
	UploadErrorPrefix        = "Error"

	CorpusErrorPrefix          = "Failed"
	CorpusLoadFailedMessage    = "Failed to load documents. Please try again."
	CorpusReindexFailedMessage = "Failed to reindex documents. Please try again."
)

// AcceptedMediaTypes lists the declared upload types the backend can parse.
var AcceptedMediaTypes = []string{MediaTypePDF, MediaTypeDOCX, MediaTypePPTX}
