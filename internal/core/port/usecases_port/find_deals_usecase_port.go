package usecases_port

import (
	"context"
	"deals-service/internal/core/domain"
)

type FindDealsUseCase interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria, sortKey domain.SortKey, limit, offset int) (*domain.PaginatedResult, error)
}
