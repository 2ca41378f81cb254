package mapper

import (
	"ai-docqa-client/internal/entity"
	"ai-docqa-client/pkg/ragapi"
)

// MergeDocuments reconciles the folder listing against the indexed set.
// Membership in indexed decides the flag; a repeated filename keeps its first record.
func MergeDocuments(res *ragapi.ListDocumentsResponse) []entity.DocumentRecord {
	if res == nil {
		return []entity.DocumentRecord{}
	}

	indexed := make(map[string]struct{}, len(res.IndexedDocuments))
	for _, name := range res.IndexedDocuments {
		indexed[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(res.FolderDocuments))
	records := make([]entity.DocumentRecord, 0, len(res.FolderDocuments))
	for _, doc := range res.FolderDocuments {
		if _, dup := seen[doc.Filename]; dup {
			continue
		}
		seen[doc.Filename] = struct{}{}

		_, isIndexed := indexed[doc.Filename]
		records = append(records, entity.DocumentRecord{
			Filename:  doc.Filename,
			Path:      doc.Path,
			SizeBytes: doc.Size,
			Indexed:   isIndexed,
		})
	}
	return records
}

func IndexedNames(res *ragapi.ListDocumentsResponse) []string {
	if res == nil || res.IndexedDocuments == nil {
		return []string{}
	}
	out := make([]string, len(res.IndexedDocuments))
	copy(out, res.IndexedDocuments)
	return out
}
