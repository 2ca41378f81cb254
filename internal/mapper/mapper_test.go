package mapper

import (
	"fmt"
	"testing"
	"time"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/entity"
	"ai-docqa-client/pkg/ragapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDocuments(t *testing.T) {
	res := &ragapi.ListDocumentsResponse{
		IndexedDocuments: []string{"b.docx"},
		FolderDocuments: []ragapi.FolderDocument{
			{Filename: "a.pdf", Size: 1024},
			{Filename: "b.docx", Size: 2048},
			{Filename: "c.pptx", Size: 4096, Indexed: true},
		},
	}

	records := MergeDocuments(res)

	require.Len(t, records, 3)
	indexedCount := 0
	for _, r := range records {
		if r.Indexed {
			indexedCount++
			assert.Equal(t, "b.docx", r.Filename)
		}
	}
	assert.Equal(t, 1, indexedCount)
	assert.Equal(t, []string{"a.pdf", "b.docx", "c.pptx"}, []string{records[0].Filename, records[1].Filename, records[2].Filename})
}

func TestMergeDocumentsDeduplicates(t *testing.T) {
	res := &ragapi.ListDocumentsResponse{
		IndexedDocuments: []string{"a.pdf", "a.pdf"},
		FolderDocuments: []ragapi.FolderDocument{
			{Filename: "a.pdf", Size: 1},
			{Filename: "a.pdf", Size: 2},
		},
	}

	records := MergeDocuments(res)
	require.Len(t, records, 1)
	assert.True(t, records[0].Indexed)
	assert.Equal(t, int64(1), records[0].SizeBytes)
}

func TestMergeDocumentsNil(t *testing.T) {
	assert.Empty(t, MergeDocuments(nil))
	assert.Empty(t, MergeDocuments(&ragapi.ListDocumentsResponse{}))
	assert.NotNil(t, IndexedNames(&ragapi.ListDocumentsResponse{}))
}

func TestToHistory(t *testing.T) {
	makeTurns := func(n int) []entity.Turn {
		turns := make([]entity.Turn, 0, n)
		for i := 0; i < n; i++ {
			role := constant.ChatRoleUser
			if i%2 == 1 {
				role = constant.ChatRoleAssistant
			}
			turns = append(turns, entity.Turn{Role: role, Content: fmt.Sprintf("m%d", i),
				Evidence: []entity.EvidenceItem{{SourceLabel: "x"}}})
		}
		return turns
	}

	tests := []struct {
		name      string
		turns     int
		wantLen   int
		wantFirst string
	}{
		{name: "empty", turns: 0, wantLen: 0},
		{name: "shorter than window", turns: 4, wantLen: 4, wantFirst: "m0"},
		{name: "exactly window", turns: 10, wantLen: 10, wantFirst: "m0"},
		{name: "longer than window", turns: 13, wantLen: 10, wantFirst: "m3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := ToHistory(makeTurns(tt.turns), constant.ChatHistoryWindow)
			require.Len(t, history, tt.wantLen)
			assert.NotNil(t, history)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, history[0].Content)
				assert.Equal(t, fmt.Sprintf("m%d", tt.turns-1), history[len(history)-1].Content)
			}
		})
	}
}

func TestNewAssistantTurnDefaultsEvidence(t *testing.T) {
	turn := NewAssistantTurn("hi", nil, time.Now())
	assert.Equal(t, constant.ChatRoleAssistant, turn.Role)
	assert.NotNil(t, turn.Evidence)
	assert.Empty(t, turn.Evidence)
}

func TestToEvidenceItems(t *testing.T) {
	items := ToEvidenceItems([]ragapi.Context{{Source: "doc1", ChunkId: "c1", Similarity: 0.2, Content: "text"}})
	require.Len(t, items, 1)
	assert.Equal(t, entity.EvidenceItem{SourceLabel: "doc1", ChunkId: "c1", DistanceScore: 0.2, Content: "text"}, items[0])
}
