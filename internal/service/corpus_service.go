package service

import (
	"context"
	"fmt"
	"sync"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/entity"
	"ai-docqa-client/internal/mapper"
	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/internal/repository/memory"
	"ai-docqa-client/pkg/events"
	"ai-docqa-client/pkg/ragapi"
)

type CorpusBackend interface {
	ListDocuments(ctx context.Context) (*ragapi.ListDocumentsResponse, error)
	ReindexAll(ctx context.Context) (*ragapi.ReindexAllResponse, error)
}

type ICorpusService interface {
	// Mount performs the initial load of the listing.
	Mount(ctx context.Context)
	Refresh(ctx context.Context)
	// SetRefreshTrigger refreshes whenever token differs from the last one seen.
	SetRefreshTrigger(ctx context.Context, token string)
	ReindexAll(ctx context.Context)
	Snapshot() entity.CorpusSnapshot
}

type corpusService struct {
	backend   CorpusBackend
	repo      *memory.CorpusRepository
	publisher IPublisherService
	logger    logger.ILogger

	mu          sync.Mutex
	loading     int
	reindexing  bool
	message     string
	lastTrigger string
	triggered   bool
}

func NewCorpusService(backend CorpusBackend, repo *memory.CorpusRepository, publisher IPublisherService, log logger.ILogger) ICorpusService {
	return &corpusService{
		backend:   backend,
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

func (s *corpusService) Mount(ctx context.Context) {
	s.Refresh(ctx)
}

func (s *corpusService) SetRefreshTrigger(ctx context.Context, token string) {
	s.mu.Lock()
	if s.triggered && s.lastTrigger == token {
		s.mu.Unlock()
		return
	}
	s.triggered = true
	s.lastTrigger = token
	s.mu.Unlock()

	s.Refresh(ctx)
}

func (s *corpusService) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
	s.notifyState(ctx)

	res, err := s.backend.ListDocuments(ctx)

	s.mu.Lock()
	if err != nil {
		// The previous listing stays in the repository untouched.
		s.message = constant.CorpusLoadFailedMessage
	} else {
		s.repo.Save(memory.CorpusListing{
			Documents:        mapper.MergeDocuments(res),
			IndexedDocuments: mapper.IndexedNames(res),
		})
	}
	s.loading--
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("CORPUS", "Error loading documents", map[string]interface{}{"error": err.Error()})
	} else {
		s.logger.Debug("CORPUS", "Documents loaded", map[string]interface{}{
			"folder_documents":  len(res.FolderDocuments),
			"indexed_documents": len(res.IndexedDocuments),
		})
	}
	s.notifyState(ctx)
}

func (s *corpusService) ReindexAll(ctx context.Context) {
	s.mu.Lock()
	s.reindexing = true
	s.message = ""
	s.mu.Unlock()
	s.notifyState(ctx)

	res, err := s.backend.ReindexAll(ctx)

	s.mu.Lock()
	s.reindexing = false
	if err != nil {
		s.message = constant.CorpusReindexFailedMessage
	} else {
		s.message = fmt.Sprintf("Successfully reindexed %d documents", res.FilesProcessed)
	}
	s.mu.Unlock()

	if err != nil {
		// No refresh on failure: the listing is left as it was.
		s.logger.Error("CORPUS", "Error reindexing", map[string]interface{}{"error": err.Error()})
		s.notifyState(ctx)
		return
	}

	s.logger.Info("CORPUS", "Reindex finished", map[string]interface{}{"files_processed": res.FilesProcessed})
	s.Refresh(ctx)
}

func (s *corpusService) Snapshot() entity.CorpusSnapshot {
	listing, _ := s.repo.Get()

	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.CorpusSnapshot{
		Documents:        listing.Documents,
		IndexedDocuments: listing.IndexedDocuments,
		IsLoading:        s.loading > 0,
		Reindexing:       s.reindexing,
		Message:          s.message,
	}
}

func (s *corpusService) notifyState(ctx context.Context) {
	snap := s.Snapshot()
	evt := events.New(constant.EventCorpusUpdated, map[string]interface{}{
		"is_loading": snap.IsLoading,
		"reindexing": snap.Reindexing,
		"message":    snap.Message,
		"documents":  len(snap.Documents),
	})
	if err := s.publisher.Publish(ctx, constant.TopicStateChanged, evt); err != nil {
		s.logger.Warn("CORPUS", "Failed to publish state change", map[string]interface{}{"error": err.Error()})
	}
}
