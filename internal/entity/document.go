package entity

type DocumentRecord struct {
	Filename  string
	Path      string
	SizeBytes int64
	Indexed   bool
}

type CorpusSnapshot struct {
	Documents        []DocumentRecord
	IndexedDocuments []string
	IsLoading        bool
	Reindexing       bool
	Message          string
}

// UploadFile is a candidate file with the media type its origin declared.
type UploadFile struct {
	Name      string
	MediaType string
	Content   []byte
}

type UploadOutcome struct {
	Filename string
	Status   string
	Message  string
	Chunks   int
}

type UploadState struct {
	Busy    bool
	Status  string
	Message string
}
