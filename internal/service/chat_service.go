package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/entity"
	"ai-docqa-client/internal/mapper"
	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/pkg/events"
	"ai-docqa-client/pkg/ragapi"
)

type ChatBackend interface {
	Chat(ctx context.Context, query string, history []ragapi.HistoryMessage) (*ragapi.ChatResponse, error)
}

type IChatService interface {
	// SubmitQuery returns false when the query was dropped (blank or another query pending).
	SubmitQuery(ctx context.Context, text string) bool
	ToggleEvidence(ctx context.Context) bool
	Snapshot() entity.ConversationSnapshot
	Reset(ctx context.Context)
}

type chatService struct {
	backend   ChatBackend
	publisher IPublisherService
	logger    logger.ILogger
	now       func() time.Time

	mu              sync.Mutex
	turns           []entity.Turn
	evidenceVisible bool
	pending         bool
	// generation changes on Reset so replies for a discarded log are dropped.
	generation uint64
}

func NewChatService(backend ChatBackend, publisher IPublisherService, log logger.ILogger) IChatService {
	return &chatService{
		backend:   backend,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
		turns:     []entity.Turn{},
	}
}

func (s *chatService) SubmitQuery(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		s.logger.Debug("CHAT", "Query dropped while another is pending", nil)
		return false
	}
	history := mapper.ToHistory(s.turns, constant.ChatHistoryWindow)
	s.turns = append(s.turns, mapper.NewUserTurn(text, s.now()))
	s.pending = true
	s.evidenceVisible = false
	gen := s.generation
	s.mu.Unlock()
	s.notifyState(ctx)

	defer s.release(ctx, gen)

	res, err := s.backend.Chat(ctx, text, history)
	if err != nil {
		s.logger.Error("CHAT", "Error sending query", map[string]interface{}{"error": err.Error(), "history": len(history)})
		s.appendAssistant(gen, mapper.NewAssistantTurn(constant.ChatFallbackReply, nil, s.now()))
		return true
	}

	evidence := mapper.ToEvidenceItems(res.Contexts)
	s.logger.Info("CHAT", "Answer received", map[string]interface{}{"evidence": len(evidence), "history": len(history)})
	if res.AugmentedQuery != "" {
		s.logger.Debug("CHAT", "Backend augmented query", map[string]interface{}{"augmented_query": res.AugmentedQuery})
	}
	s.appendAssistant(gen, mapper.NewAssistantTurn(res.Response, evidence, s.now()))
	return true
}

func (s *chatService) appendAssistant(gen uint64, turn entity.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.turns = append(s.turns, turn)
	if len(turn.Evidence) > 0 {
		s.evidenceVisible = true
	}
}

func (s *chatService) release(ctx context.Context, gen uint64) {
	s.mu.Lock()
	if gen == s.generation {
		s.pending = false
	}
	s.mu.Unlock()
	s.notifyState(ctx)
}

func (s *chatService) ToggleEvidence(ctx context.Context) bool {
	s.mu.Lock()
	s.evidenceVisible = !s.evidenceVisible
	visible := s.evidenceVisible
	s.mu.Unlock()
	s.notifyState(ctx)
	return visible
}

func (s *chatService) Snapshot() entity.ConversationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]entity.Turn, len(s.turns))
	copy(turns, s.turns)
	return entity.ConversationSnapshot{
		Turns:           turns,
		EvidenceVisible: s.evidenceVisible,
		Pending:         s.pending,
	}
}

func (s *chatService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.turns = []entity.Turn{}
	s.evidenceVisible = false
	s.pending = false
	s.generation++
	s.mu.Unlock()
	s.logger.Info("CHAT", "Conversation reset", nil)
	s.notifyState(ctx)
}

func (s *chatService) notifyState(ctx context.Context) {
	snap := s.Snapshot()
	evt := events.New(constant.EventConversationUpdated, map[string]interface{}{
		"turns":            len(snap.Turns),
		"evidence_visible": snap.EvidenceVisible,
		"pending":          snap.Pending,
	})
	if err := s.publisher.Publish(ctx, constant.TopicStateChanged, evt); err != nil {
		s.logger.Warn("CHAT", "Failed to publish state change", map[string]interface{}{"error": err.Error()})
	}
}
