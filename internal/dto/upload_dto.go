package dto

// UploadFileRequest is validated locally before any network call.
type UploadFileRequest struct {
	Filename  string `validate:"required"`
	MediaType string `validate:"oneof=application/pdf application/vnd.openxmlformats-officedocument.wordprocessingml.document application/vnd.openxmlformats-officedocument.presentationml.presentation"`
}

type UploadStateResponse struct {
	Busy    bool   `json:"busy"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	IsError bool   `json:"is_error"`
}

type UploadSubmitResponse struct {
	Submitted bool                `json:"submitted"`
	Filename  string              `json:"filename,omitempty"`
	Chunks    int                 `json:"chunks,omitempty"`
	State     UploadStateResponse `json:"state"`
}
