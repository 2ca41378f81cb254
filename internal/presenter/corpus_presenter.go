package presenter

import (
	"fmt"
	"math"
	"strings"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/dto"
	"ai-docqa-client/internal/entity"
)

// SizeLabel renders whole kibibytes, rounded.
func SizeLabel(sizeBytes int64) string {
	return fmt.Sprintf("%d KB", int64(math.Round(float64(sizeBytes)/1024)))
}

func IsCorpusError(message string) bool {
	return strings.HasPrefix(message, constant.CorpusErrorPrefix)
}

// RenderCorpus suppresses the document list while a load is in flight.
func RenderCorpus(snap entity.CorpusSnapshot) dto.CorpusResponse {
	res := dto.CorpusResponse{
		IsLoading:  snap.IsLoading,
		Reindexing: snap.Reindexing,
		Message:    snap.Message,
		IsError:    IsCorpusError(snap.Message),
		Documents:  []dto.DocumentResponse{},
	}
	if snap.IsLoading {
		return res
	}

	for _, d := range snap.Documents {
		res.Documents = append(res.Documents, dto.DocumentResponse{
			Filename:  d.Filename,
			Indexed:   d.Indexed,
			SizeLabel: SizeLabel(d.SizeBytes),
		})
	}
	res.Empty = len(res.Documents) == 0
	return res
}

func RenderUpload(state entity.UploadState) dto.UploadStateResponse {
	return dto.UploadStateResponse{
		Busy:    state.Busy,
		Status:  state.Status,
		Message: state.Message,
		IsError: state.Status == constant.UploadStatusFailed || state.Status == constant.UploadStatusValidationError,
	}
}
