package entity

import (
	"time"

	"github.com/google/uuid"
)

// Turn is one appended conversation message. Turns are never mutated after
// they enter the log.
type Turn struct {
	Id        uuid.UUID
	Role      string
	Content   string
	Evidence  []EvidenceItem // assistant turns only, may be empty
	CreatedAt time.Time
}

type EvidenceItem struct {
	SourceLabel   string
	ChunkId       string
	DistanceScore float64
	Content       string
}

type ConversationSnapshot struct {
	Turns           []Turn
	EvidenceVisible bool
	Pending         bool
}
