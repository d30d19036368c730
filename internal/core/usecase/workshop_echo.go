package usecase

import (
	"context"
	"strings"
	"time"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"

	"github.com/google/uuid"
)

// Текст ответа-заглушки. Настоящего ассистента за чатом нет.
const echoReplyText = "Received"

type WorkshopEchoUseCase struct {
	replyDelay time.Duration
	now        func() time.Time
	idGen      func() string
}

func NewWorkshopEchoUseCase(replyDelay time.Duration) *WorkshopEchoUseCase {
	return &WorkshopEchoUseCase{
		replyDelay: replyDelay,
		now:        time.Now,
		idGen:      func() string { return uuid.NewString() },
	}
}

// Execute принимает сообщение пользователя и после искусственной задержки
// возвращает эхо-ответ. Задержка уважает отмену контекста.
func (uc *WorkshopEchoUseCase) Execute(ctx context.Context, text string) (*domain.ChatExchange, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "WorkshopEcho",
	})

	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}

	ucLogger.Info("Use case started", nil)

	userMessage := domain.ChatMessage{
		ID:        uc.idGen(),
		Text:      text,
		IsUser:    true,
		Timestamp: uc.now(),
	}

	if uc.replyDelay > 0 {
		timer := time.NewTimer(uc.replyDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	reply := domain.ChatMessage{
		ID:        uc.idGen(),
		Text:      echoReplyText,
		IsUser:    false,
		Timestamp: uc.now(),
	}

	ucLogger.Info("Use case finished successfully", nil)

	return &domain.ChatExchange{
		UserMessage: userMessage,
		Reply:       reply,
	}, nil
}
