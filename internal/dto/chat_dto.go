package dto

type SendQueryRequest struct {
	Query string `json:"query"`
}

type EvidenceResponse struct {
	Source           string  `json:"source"`
	ChunkId          string  `json:"chunk_id"`
	RelevancePercent float64 `json:"relevance_percent"`
	RelevanceLabel   string  `json:"relevance_label"`
}

type TurnResponse struct {
	Id           string             `json:"id"`
	Role         string             `json:"role"`
	Content      string             `json:"content"`
	ShowSources  bool               `json:"show_sources"`
	SourcesLabel string             `json:"sources_label,omitempty"`
	Sources      []EvidenceResponse `json:"sources,omitempty"`
}

type ConversationResponse struct {
	Turns           []TurnResponse `json:"turns"`
	EvidenceVisible bool           `json:"evidence_visible"`
	Pending         bool           `json:"pending"`
	ToggleLabel     string         `json:"toggle_label"`
}

type SendQueryResponse struct {
	Submitted    bool                 `json:"submitted"`
	Conversation ConversationResponse `json:"conversation"`
}
