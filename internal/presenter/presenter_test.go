package presenter

import (
	"testing"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldRenderEvidence(t *testing.T) {
	withEvidence := []entity.EvidenceItem{{SourceLabel: "doc1", ChunkId: "c1", DistanceScore: 0.2}}

	tests := []struct {
		name    string
		turn    entity.Turn
		visible bool
		want    bool
	}{
		{"assistant with evidence visible", entity.Turn{Role: constant.ChatRoleAssistant, Evidence: withEvidence}, true, true},
		{"assistant with evidence hidden", entity.Turn{Role: constant.ChatRoleAssistant, Evidence: withEvidence}, false, false},
		{"assistant without evidence", entity.Turn{Role: constant.ChatRoleAssistant, Evidence: []entity.EvidenceItem{}}, true, false},
		{"user turn", entity.Turn{Role: constant.ChatRoleUser, Evidence: withEvidence}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRenderEvidence(tt.turn, tt.visible))
		})
	}
}

func TestRelevancePercent(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
		label    string
	}{
		{0.2, 80.0, "Relevance: 80.0%"},
		{0, 100.0, "Relevance: 100.0%"},
		{1, 0, "Relevance: 0.0%"},
		{0.12345, 87.7, "Relevance: 87.7%"},
		// Distances above 1 wrap around rather than clamp.
		{1.5, 50.0, "Relevance: 50.0%"},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RelevancePercent(tt.distance), 1e-9)
		assert.Equal(t, tt.label, FormatRelevance(tt.distance))
	}
}

func TestRenderConversation(t *testing.T) {
	snap := entity.ConversationSnapshot{
		Turns: []entity.Turn{
			{Id: uuid.New(), Role: constant.ChatRoleUser, Content: "What is the policy?"},
			{Id: uuid.New(), Role: constant.ChatRoleAssistant, Content: "It is X.",
				Evidence: []entity.EvidenceItem{{SourceLabel: "doc1", ChunkId: "c1", DistanceScore: 0.2}}},
		},
		EvidenceVisible: true,
	}

	view := RenderConversation(snap)
	require.Len(t, view.Turns, 2)
	assert.False(t, view.Turns[0].ShowSources)
	assert.True(t, view.Turns[1].ShowSources)
	assert.Equal(t, "Sources (1)", view.Turns[1].SourcesLabel)
	require.Len(t, view.Turns[1].Sources, 1)
	assert.Equal(t, "doc1", view.Turns[1].Sources[0].Source)
	assert.Equal(t, "Hide Sources", view.ToggleLabel)

	snap.EvidenceVisible = false
	hidden := RenderConversation(snap)
	assert.False(t, hidden.Turns[1].ShowSources)
	assert.Empty(t, hidden.Turns[1].Sources)
	assert.Equal(t, "Show Sources", hidden.ToggleLabel)
	// Rendering never touches the snapshot data.
	assert.Len(t, snap.Turns[1].Evidence, 1)
}

func TestRenderCorpus(t *testing.T) {
	snap := entity.CorpusSnapshot{
		Documents: []entity.DocumentRecord{
			{Filename: "a.pdf", SizeBytes: 1536, Indexed: true},
			{Filename: "b.docx", SizeBytes: 1000},
		},
		Message: constant.CorpusLoadFailedMessage,
	}

	view := RenderCorpus(snap)
	require.Len(t, view.Documents, 2)
	assert.Equal(t, "2 KB", view.Documents[0].SizeLabel)
	assert.Equal(t, "1 KB", view.Documents[1].SizeLabel)
	assert.True(t, view.Documents[0].Indexed)
	assert.True(t, view.IsError)
	assert.False(t, view.Empty)

	snap.IsLoading = true
	loading := RenderCorpus(snap)
	assert.Empty(t, loading.Documents)
	assert.False(t, loading.Empty)

	ok := RenderCorpus(entity.CorpusSnapshot{Message: "Successfully reindexed 4 documents"})
	assert.False(t, ok.IsError)
	assert.True(t, ok.Empty)
}

func TestRenderUpload(t *testing.T) {
	assert.True(t, RenderUpload(entity.UploadState{Status: constant.UploadStatusValidationError}).IsError)
	assert.True(t, RenderUpload(entity.UploadState{Status: constant.UploadStatusFailed}).IsError)
	assert.False(t, RenderUpload(entity.UploadState{Status: constant.UploadStatusSuccess}).IsError)
	assert.True(t, RenderUpload(entity.UploadState{Busy: true}).Busy)
}
