package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/logger"
	"genfy-be/pkg/storage"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the event bus: it writes an audit trail for every
// generated prompt and removes stored uploads when a session is deleted.
type consumerService struct {
	pubSub   *gochannel.GoChannel
	storage  *storage.LocalStorage
	auditLog logger.ILogger
	logger   logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	files *storage.LocalStorage,
	auditLog logger.ILogger,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:   pubSub,
		storage:  files,
		auditLog: auditLog,
		logger:   log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	generated, err := cs.pubSub.Subscribe(ctx, TopicPromptGenerated)
	if err != nil {
		return err
	}
	deleted, err := cs.pubSub.Subscribe(ctx, TopicSessionDeleted)
	if err != nil {
		return err
	}

	go func() {
		for msg := range generated {
			cs.processPromptGenerated(msg)
		}
	}()
	go func() {
		for msg := range deleted {
			cs.processSessionDeleted(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processPromptGenerated(msg *message.Message) {
	var event dto.PromptGeneratedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal prompt generated event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads would never succeed on retry
		return
	}

	cs.auditLog.Info("audit", "prompt generated", map[string]interface{}{
		"session_id": event.SessionId,
		"user_id":    event.UserId,
		"category":   event.Category,
		"model_used": event.ModelUsed,
		"word_count": event.WordCount,
		"quick_mode": event.QuickMode,
	})
	msg.Ack()
}

func (cs *consumerService) processSessionDeleted(msg *message.Message) {
	var event dto.SessionDeletedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal session deleted event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := cs.storage.DeleteSession(event.SessionId); err != nil {
		cs.logger.Error("consumer", "failed to clean up session uploads", map[string]interface{}{"session_id": event.SessionId, "error": err.Error()})
		msg.Nack()
		return
	}

	cs.auditLog.Info("audit", "session deleted", map[string]interface{}{
		"session_id": event.SessionId,
		"user_id":    event.UserId,
	})
	msg.Ack()
}
