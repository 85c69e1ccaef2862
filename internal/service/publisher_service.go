package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"genfy-be/internal/dto"
)

const (
	TopicPromptGenerated = "prompt.generated"
	TopicSessionDeleted  = "session.deleted"
)

type IPublisherService interface {
	PublishPromptGenerated(ctx context.Context, event dto.PromptGeneratedEvent) error
	PublishSessionDeleted(ctx context.Context, event dto.SessionDeletedEvent) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
	}
}

func (p *publisherService) publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	return p.pubSub.Publish(topic, msg)
}

func (p *publisherService) PublishPromptGenerated(ctx context.Context, event dto.PromptGeneratedEvent) error {
	return p.publish(TopicPromptGenerated, event)
}

func (p *publisherService) PublishSessionDeleted(ctx context.Context, event dto.SessionDeletedEvent) error {
	return p.publish(TopicSessionDeleted, event)
}
