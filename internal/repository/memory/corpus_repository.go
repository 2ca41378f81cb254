package memory

import (
	"ai-docqa-client/internal/entity"

	"github.com/patrickmn/go-cache"
)

const corpusKey = "corpus:last-good"

// CorpusListing is the last listing the backend returned successfully.
type CorpusListing struct {
	Documents        []entity.DocumentRecord
	IndexedDocuments []string
}

type CorpusRepository struct {
	cache *cache.Cache
}

// NewCorpusRepository keeps listings for the lifetime of the process; nothing
// expires or is written to disk.
func NewCorpusRepository() *CorpusRepository {
	return &CorpusRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *CorpusRepository) Save(listing CorpusListing) {
	r.cache.Set(corpusKey, cloneListing(listing), cache.NoExpiration)
}

func (r *CorpusRepository) Get() (CorpusListing, bool) {
	if x, found := r.cache.Get(corpusKey); found {
		return cloneListing(x.(CorpusListing)), true
	}
	return CorpusListing{Documents: []entity.DocumentRecord{}, IndexedDocuments: []string{}}, false
}

func (r *CorpusRepository) Clear() {
	r.cache.Delete(corpusKey)
}

func cloneListing(l CorpusListing) CorpusListing {
	docs := make([]entity.DocumentRecord, len(l.Documents))
	copy(docs, l.Documents)
	names := make([]string, len(l.IndexedDocuments))
	copy(names, l.IndexedDocuments)
	return CorpusListing{Documents: docs, IndexedDocuments: names}
}
