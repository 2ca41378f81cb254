package dto

type RefreshCorpusRequest struct {
	Token string `json:"token" validate:"required"`
}

type DocumentResponse struct {
	Filename  string `json:"filename"`
	Indexed   bool   `json:"indexed"`
	SizeLabel string `json:"size_label"`
}

type CorpusResponse struct {
	IsLoading  bool               `json:"is_loading"`
	Reindexing bool               `json:"reindexing"`
	Message    string             `json:"message,omitempty"`
	IsError    bool               `json:"is_error"`
	Documents  []DocumentResponse `json:"documents"`
	Empty      bool               `json:"empty"`
}

type HealthResponse struct {
	Backend        string `json:"backend"`
	BackendMessage string `json:"backend_message,omitempty"`
}
