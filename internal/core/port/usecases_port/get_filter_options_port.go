package usecases_port

import (
	"context"
	"deals-service/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.FilterOptionsResult, error)
}
