package port

import (
	"context"
	"deals-service/internal/core/domain"
)

// FilterOptionsRepositoryPort — порт для сборки опций фильтров:
// уникальные значения категорий и наблюдаемые границы числовых полей.
type FilterOptionsRepositoryPort interface {
	GetDistinctPropertyTypes(ctx context.Context) ([]string, error)
	GetDistinctLocations(ctx context.Context) ([]string, error)
	GetDistinctStatuses(ctx context.Context) ([]string, error)

	GetPriceRange(ctx context.Context) (domain.RangeResult, error)
	GetCapRateRange(ctx context.Context) (domain.RangeResult, error)

	// GetTotalCount возвращает количество сделок, проходящих текущие критерии.
	GetTotalCount(ctx context.Context, criteria domain.FilterCriteria) (int, error)
}
