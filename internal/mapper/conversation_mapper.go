package mapper

import (
	"time"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/entity"
	"ai-docqa-client/pkg/ragapi"

	"github.com/google/uuid"
)

func NewUserTurn(content string, now time.Time) entity.Turn {
	return entity.Turn{
		Id:        uuid.New(),
		Role:      constant.ChatRoleUser,
		Content:   content,
		CreatedAt: now,
	}
}

// NewAssistantTurn always carries a non-nil evidence slice.
func NewAssistantTurn(content string, evidence []entity.EvidenceItem, now time.Time) entity.Turn {
	if evidence == nil {
		evidence = []entity.EvidenceItem{}
	}
	return entity.Turn{
		Id:        uuid.New(),
		Role:      constant.ChatRoleAssistant,
		Content:   content,
		Evidence:  evidence,
		CreatedAt: now,
	}
}

func ToEvidenceItems(contexts []ragapi.Context) []entity.EvidenceItem {
	items := make([]entity.EvidenceItem, 0, len(contexts))
	for _, c := range contexts {
		items = append(items, entity.EvidenceItem{
			SourceLabel:   c.Source,
			ChunkId:       c.ChunkId,
			DistanceScore: c.Similarity,
			Content:       c.Content,
		})
	}
	return items
}

// ToHistory returns the trailing window of turns as role/content pairs, in order.
func ToHistory(turns []entity.Turn, window int) []ragapi.HistoryMessage {
	start := 0
	if len(turns) > window {
		start = len(turns) - window
	}

	history := make([]ragapi.HistoryMessage, 0, len(turns)-start)
	for _, t := range turns[start:] {
		history = append(history, ragapi.HistoryMessage{Role: t.Role, Content: t.Content})
	}
	return history
}
