package usecases_port

import (
	"context"
	"deals-service/internal/core/domain"
)

type GetDealDetailsUseCase interface {
	Execute(ctx context.Context, dealID string) (*domain.DealDetailsView, error)
}
