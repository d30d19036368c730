package memstore

import (
	"context"

	"deals-service/internal/core/domain"
)

// Реализация FilterOptionsRepositoryPort поверх того же набора данных.
// Уникальные значения возвращаются в порядке первого появления в репозитории.

func (r *DealRepository) GetDistinctPropertyTypes(ctx context.Context) ([]string, error) {
	return r.distinct(func(d domain.Deal) string { return d.PropertyType }), nil
}

func (r *DealRepository) GetDistinctLocations(ctx context.Context) ([]string, error) {
	return r.distinct(func(d domain.Deal) string { return d.Address.State }), nil
}

func (r *DealRepository) GetDistinctStatuses(ctx context.Context) ([]string, error) {
	return r.distinct(func(d domain.Deal) string { return string(d.Status) }), nil
}

func (r *DealRepository) GetPriceRange(ctx context.Context) (domain.RangeResult, error) {
	return r.observedRange(func(d domain.Deal) float64 { return d.Financials.AskingPrice }), nil
}

func (r *DealRepository) GetCapRateRange(ctx context.Context) (domain.RangeResult, error) {
	return r.observedRange(func(d domain.Deal) float64 { return d.Financials.CapRate }), nil
}

func (r *DealRepository) GetTotalCount(ctx context.Context, criteria domain.FilterCriteria) (int, error) {
	if err := criteria.Validate(); err != nil {
		return 0, err
	}
	count := 0
	for _, d := range r.deals {
		if matchesCriteria(d, criteria) {
			count++
		}
	}
	return count, nil
}

func (r *DealRepository) distinct(key func(domain.Deal) string) []string {
	seen := make(map[string]bool, len(r.deals))
	values := make([]string, 0, len(r.deals))
	for _, d := range r.deals {
		v := key(d)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

func (r *DealRepository) observedRange(value func(domain.Deal) float64) domain.RangeResult {
	if len(r.deals) == 0 {
		return domain.RangeResult{}
	}
	result := domain.RangeResult{Min: value(r.deals[0]), Max: value(r.deals[0])}
	for _, d := range r.deals[1:] {
		v := value(d)
		if v < result.Min {
			result.Min = v
		}
		if v > result.Max {
			result.Max = v
		}
	}
	return result
}
