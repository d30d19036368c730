package usecase

import (
	"context"
	"time"

	"deals-service/internal/core/domain"
)

// fakeDealStorage отдаёт заранее подготовленный набор без фильтрации.
// Фильтры и сортировка тестируются на уровне адаптера хранилища,
// здесь проверяется только поведение use cases.
type fakeDealStorage struct {
	deals   []domain.Deal
	related []domain.Deal
	err     error
}

func (f *fakeDealStorage) FindWithFilters(ctx context.Context, criteria domain.FilterCriteria, sortKey domain.SortKey) ([]domain.Deal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.deals, nil
}

func (f *fakeDealStorage) GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.deals {
		if d.ID == dealID {
			deal := d
			return &deal, nil
		}
	}
	return nil, domain.ErrDealNotFound
}

func (f *fakeDealStorage) FindRelated(ctx context.Context, dealID string, limit int) ([]domain.Deal, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.related) > limit {
		return f.related[:limit], nil
	}
	return f.related, nil
}

type fakeFilterRepository struct {
	propertyTypes []string
	locations     []string
	statuses      []string
	priceRange    domain.RangeResult
	capRateRange  domain.RangeResult
	totalCount    int
	countErr      error
}

func (f *fakeFilterRepository) GetDistinctPropertyTypes(ctx context.Context) ([]string, error) {
	return f.propertyTypes, nil
}

func (f *fakeFilterRepository) GetDistinctLocations(ctx context.Context) ([]string, error) {
	return f.locations, nil
}

func (f *fakeFilterRepository) GetDistinctStatuses(ctx context.Context) ([]string, error) {
	return f.statuses, nil
}

func (f *fakeFilterRepository) GetPriceRange(ctx context.Context) (domain.RangeResult, error) {
	return f.priceRange, nil
}

func (f *fakeFilterRepository) GetCapRateRange(ctx context.Context) (domain.RangeResult, error) {
	return f.capRateRange, nil
}

func (f *fakeFilterRepository) GetTotalCount(ctx context.Context, criteria domain.FilterCriteria) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.totalCount, nil
}

func makeDeals(n int) []domain.Deal {
	deals := make([]domain.Deal, n)
	for i := range deals {
		deals[i] = domain.Deal{
			ID:           "deal-" + string(rune('a'+i)),
			PropertyName: "Property " + string(rune('A'+i)),
			PropertyType: "office",
			Status:       domain.StatusActive,
			ListedDate:   time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			Financials:   domain.Financials{AskingPrice: float64(1_000_000 * (i + 1)), CapRate: 6},
		}
	}
	return deals
}
