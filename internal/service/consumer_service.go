package service

import (
	"context"
	"encoding/json"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// StateBroadcaster fans state-change envelopes out to connected shells.
type StateBroadcaster interface {
	Broadcast(payload []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber  message.Subscriber
	corpus      ICorpusService
	broadcaster StateBroadcaster
	logger      logger.ILogger
}

// NewConsumerService wires upload notifications to the corpus view. broadcaster may be nil.
func NewConsumerService(subscriber message.Subscriber, corpus ICorpusService, broadcaster StateBroadcaster, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		corpus:      corpus,
		broadcaster: broadcaster,
		logger:      log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	uploads, err := cs.subscriber.Subscribe(ctx, constant.TopicUploadSucceeded)
	if err != nil {
		return err
	}
	states, err := cs.subscriber.Subscribe(ctx, constant.TopicStateChanged)
	if err != nil {
		return err
	}

	go func() {
		for msg := range uploads {
			cs.processUpload(ctx, msg)
		}
	}()
	go func() {
		for msg := range states {
			cs.processState(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processUpload(ctx context.Context, msg *message.Message) {
	// Invalid messages are acked too, there is nothing to retry.
	defer msg.Ack()

	var env events.Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal upload event", map[string]interface{}{"error": err.Error()})
		return
	}

	cs.logger.Info("CONSUMER", "Upload succeeded, refreshing corpus", map[string]interface{}{"message_id": msg.UUID, "data": env.Data})
	// Each message id is a fresh token, so every successful upload refreshes once.
	cs.corpus.SetRefreshTrigger(ctx, msg.UUID)

	if cs.broadcaster != nil {
		cs.broadcaster.Broadcast(msg.Payload)
	}
}

func (cs *consumerService) processState(msg *message.Message) {
	defer msg.Ack()
	if cs.broadcaster == nil {
		return
	}
	cs.broadcaster.Broadcast(msg.Payload)
}
