package ragapi

// --- Wire types of the document QA backend ---

type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Format   string `json:"format"`
	Chunks   int    `json:"chunks"`
	Error    string `json:"error,omitempty"`
}

type FolderDocument struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Indexed  bool   `json:"indexed"`
	Size     int64  `json:"size"`
}

type ListDocumentsResponse struct {
	IndexedDocuments []string         `json:"indexed_documents"`
	FolderDocuments  []FolderDocument `json:"folder_documents"`
}

type ReindexAllResponse struct {
	Message        string `json:"message"`
	FilesProcessed int    `json:"files_processed"`
}

type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries History as a JSON-encoded string, not a nested array.
type ChatRequest struct {
	Query   string `json:"query"`
	History string `json:"history"`
}

// Context is one retrieved passage. Similarity is the raw index distance.
type Context struct {
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	ChunkId    string  `json:"chunk_id"`
	Similarity float64 `json:"similarity"`
}

type ChatResponse struct {
	Response       string    `json:"response"`
	AugmentedQuery string    `json:"augmentedQuery,omitempty"`
	Contexts       []Context `json:"contexts,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}
