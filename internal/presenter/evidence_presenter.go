// Package presenter turns core state into display views. Nothing here mutates
// state or performs I/O.
package presenter

import (
	"fmt"
	"math"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/dto"
	"ai-docqa-client/internal/entity"
)

// ShouldRenderEvidence is true only for assistant turns with evidence while
// the global toggle is on.
func ShouldRenderEvidence(turn entity.Turn, evidenceVisible bool) bool {
	return turn.Role == constant.ChatRoleAssistant && len(turn.Evidence) > 0 && evidenceVisible
}

// RelevancePercent maps the backend distance to |1 - d| * 100, one decimal.
// Distances above 1 are not bounded by this formula.
func RelevancePercent(distance float64) float64 {
	return math.Round(math.Abs(1-distance)*100*10) / 10
}

func FormatRelevance(distance float64) string {
	return fmt.Sprintf("Relevance: %.1f%%", RelevancePercent(distance))
}

func SourcesLabel(n int) string {
	return fmt.Sprintf("Sources (%d)", n)
}

func ToggleLabel(evidenceVisible bool) string {
	if evidenceVisible {
		return "Hide Sources"
	}
	return "Show Sources"
}

func RenderTurn(turn entity.Turn, evidenceVisible bool) dto.TurnResponse {
	res := dto.TurnResponse{
		Id:      turn.Id.String(),
		Role:    turn.Role,
		Content: turn.Content,
	}
	if !ShouldRenderEvidence(turn, evidenceVisible) {
		return res
	}

	res.ShowSources = true
	res.SourcesLabel = SourcesLabel(len(turn.Evidence))
	res.Sources = make([]dto.EvidenceResponse, 0, len(turn.Evidence))
	for _, ev := range turn.Evidence {
		res.Sources = append(res.Sources, dto.EvidenceResponse{
			Source:           ev.SourceLabel,
			ChunkId:          ev.ChunkId,
			RelevancePercent: RelevancePercent(ev.DistanceScore),
			RelevanceLabel:   FormatRelevance(ev.DistanceScore),
		})
	}
	return res
}

func RenderConversation(snap entity.ConversationSnapshot) dto.ConversationResponse {
	turns := make([]dto.TurnResponse, 0, len(snap.Turns))
	for _, t := range snap.Turns {
		turns = append(turns, RenderTurn(t, snap.EvidenceVisible))
	}
	return dto.ConversationResponse{
		Turns:           turns,
		EvidenceVisible: snap.EvidenceVisible,
		Pending:         snap.Pending,
		ToggleLabel:     ToggleLabel(snap.EvidenceVisible),
	}
}
