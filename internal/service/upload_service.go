package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/dto"
	"ai-docqa-client/internal/entity"
	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/internal/pkg/validation"
	"ai-docqa-client/pkg/events"
	"ai-docqa-client/pkg/ragapi"
)

type UploadBackend interface {
	Upload(ctx context.Context, filename, mediaType string, content io.Reader) (*ragapi.UploadResponse, error)
}

type IUploadService interface {
	// Submit validates and uploads one file. Failures are reported in the outcome.
	Submit(ctx context.Context, file entity.UploadFile) entity.UploadOutcome
	SubmitFromPicker(ctx context.Context, files []entity.UploadFile) (entity.UploadOutcome, bool)
	SubmitFromDrop(ctx context.Context, files []entity.UploadFile) (entity.UploadOutcome, bool)
	State() entity.UploadState
}

type uploadService struct {
	backend   UploadBackend
	publisher IPublisherService
	logger    logger.ILogger

	mu       sync.Mutex
	inFlight int
	status   string
	message  string
}

func NewUploadService(backend UploadBackend, publisher IPublisherService, log logger.ILogger) IUploadService {
	return &uploadService{
		backend:   backend,
		publisher: publisher,
		logger:    log,
	}
}

func (s *uploadService) SubmitFromPicker(ctx context.Context, files []entity.UploadFile) (entity.UploadOutcome, bool) {
	return s.submitFirst(ctx, constant.UploadSourcePicker, files)
}

func (s *uploadService) SubmitFromDrop(ctx context.Context, files []entity.UploadFile) (entity.UploadOutcome, bool) {
	return s.submitFirst(ctx, constant.UploadSourceDrop, files)
}

func (s *uploadService) submitFirst(ctx context.Context, source string, files []entity.UploadFile) (entity.UploadOutcome, bool) {
	if len(files) == 0 {
		return entity.UploadOutcome{}, false
	}
	s.logger.Debug("UPLOAD", "File selected", map[string]interface{}{"source": source, "filename": files[0].Name, "candidates": len(files)})
	return s.Submit(ctx, files[0]), true
}

func (s *uploadService) Submit(ctx context.Context, file entity.UploadFile) entity.UploadOutcome {
	if err := validation.Struct(dto.UploadFileRequest{Filename: file.Name, MediaType: file.MediaType}); err != nil {
		s.logger.Warn("UPLOAD", "Rejected file type", map[string]interface{}{"filename": file.Name, "media_type": file.MediaType, "error": err.Error()})
		s.setResult(constant.UploadStatusValidationError, constant.UploadInvalidTypeMessage)
		s.notifyState(ctx)
		return entity.UploadOutcome{
			Filename: file.Name,
			Status:   constant.UploadStatusValidationError,
			Message:  constant.UploadInvalidTypeMessage,
		}
	}

	s.mu.Lock()
	s.inFlight++
	s.status = ""
	s.message = ""
	s.mu.Unlock()
	s.notifyState(ctx)

	outcome := s.upload(ctx, file)

	s.mu.Lock()
	s.inFlight--
	s.status = outcome.Status
	s.message = outcome.Message
	s.mu.Unlock()
	s.notifyState(ctx)

	if outcome.Status == constant.UploadStatusSuccess {
		evt := events.New(constant.EventUploadSucceeded, map[string]interface{}{
			"filename": outcome.Filename,
			"chunks":   outcome.Chunks,
		})
		if err := s.publisher.Publish(ctx, constant.TopicUploadSucceeded, evt); err != nil {
			s.logger.Error("UPLOAD", "Failed to publish UPLOAD_SUCCEEDED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return outcome
}

func (s *uploadService) upload(ctx context.Context, file entity.UploadFile) entity.UploadOutcome {
	res, err := s.backend.Upload(ctx, file.Name, file.MediaType, bytes.NewReader(file.Content))
	if err != nil {
		reason := ragapi.BackendMessage(err)
		if reason == "" {
			reason = constant.UploadFailedMessage
		}
		s.logger.Error("UPLOAD", "Error uploading file", map[string]interface{}{"filename": file.Name, "error": err.Error()})
		return entity.UploadOutcome{
			Filename: file.Name,
			Status:   constant.UploadStatusFailed,
			Message:  fmt.Sprintf("%s: %s", constant.UploadErrorPrefix, reason),
		}
	}

	s.logger.Info("UPLOAD", "File processed", map[string]interface{}{"filename": file.Name, "chunks": res.Chunks, "format": res.Format})
	return entity.UploadOutcome{
		Filename: file.Name,
		Status:   constant.UploadStatusSuccess,
		Message:  fmt.Sprintf("%s processed with %d chunks stored", file.Name, res.Chunks),
		Chunks:   res.Chunks,
	}
}

func (s *uploadService) State() entity.UploadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.UploadState{
		Busy:    s.inFlight > 0,
		Status:  s.status,
		Message: s.message,
	}
}

func (s *uploadService) setResult(status, message string) {
	s.mu.Lock()
	s.status = status
	s.message = message
	s.mu.Unlock()
}

func (s *uploadService) notifyState(ctx context.Context) {
	state := s.State()
	evt := events.New(constant.EventUploadStateChanged, map[string]interface{}{
		"busy":    state.Busy,
		"status":  state.Status,
		"message": state.Message,
	})
	if err := s.publisher.Publish(ctx, constant.TopicStateChanged, evt); err != nil {
		s.logger.Warn("UPLOAD", "Failed to publish state change", map[string]interface{}{"error": err.Error()})
	}
}
