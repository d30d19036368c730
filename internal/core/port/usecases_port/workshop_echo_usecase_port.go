package usecases_port

import (
	"context"
	"deals-service/internal/core/domain"
)

type WorkshopEchoUseCase interface {
	Execute(ctx context.Context, text string) (*domain.ChatExchange, error)
}
