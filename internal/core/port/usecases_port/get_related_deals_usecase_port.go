package usecases_port

import (
	"context"
	"deals-service/internal/core/domain"
)

type GetRelatedDealsUseCase interface {
	Execute(ctx context.Context, dealID string, limit int) ([]domain.Deal, error)
}
