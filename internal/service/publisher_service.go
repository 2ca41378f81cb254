package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-docqa-client/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, topic string, evt events.Event) error
}

type publisherService struct {
	publisher message.Publisher
}

func NewPublisherService(publisher message.Publisher) IPublisherService {
	return &publisherService{publisher: publisher}
}

func (p *publisherService) Publish(ctx context.Context, topic string, evt events.Event) error {
	payload, err := json.Marshal(events.ToEnvelope(evt))
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}
