package memstore

import (
	"context"
	"fmt"

	"deals-service/internal/core/domain"
)

// Порядок выдачи похожих сделок по умолчанию ограничивается тремя записями.
const defaultRelatedLimit = 3

// DealRepository — read-only репозиторий сделок в памяти.
// Набор данных фиксируется в конструкторе и дальше не меняется,
// поэтому все операции чтения детерминированы и идемпотентны.
type DealRepository struct {
	deals []domain.Deal
	byID  map[string]int
}

// NewDealRepository создает репозиторий поверх готового набора сделок.
// Порядок слайса становится "порядком репозитория" и сохраняется
// во всех выборках без явной сортировки.
func NewDealRepository(deals []domain.Deal) (*DealRepository, error) {
	byID := make(map[string]int, len(deals))
	for i, d := range deals {
		if d.ID == "" {
			return nil, fmt.Errorf("memstore: deal at index %d has empty id", i)
		}
		if _, exists := byID[d.ID]; exists {
			return nil, fmt.Errorf("memstore: %w: %s", domain.ErrDuplicateDealID, d.ID)
		}
		byID[d.ID] = i
	}

	// Собственная копия, чтобы вызывающая сторона не могла мутировать набор.
	own := make([]domain.Deal, len(deals))
	copy(own, deals)

	return &DealRepository{deals: own, byID: byID}, nil
}

// Len возвращает размер набора данных.
func (r *DealRepository) Len() int {
	return len(r.deals)
}

// FindWithFilters применяет все предикаты критериев как логическое И,
// затем сортирует выживший набор по sortKey. Исходный набор не мутируется:
// результат — всегда новый слайс.
func (r *DealRepository) FindWithFilters(ctx context.Context, criteria domain.FilterCriteria, sortKey domain.SortKey) ([]domain.Deal, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	result := make([]domain.Deal, 0, len(r.deals))
	for _, d := range r.deals {
		if matchesCriteria(d, criteria) {
			result = append(result, d)
		}
	}

	sortDeals(result, sortKey)
	return result, nil
}

// GetDealByID возвращает копию сделки или domain.ErrDealNotFound.
func (r *DealRepository) GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	idx, ok := r.byID[dealID]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	deal := r.deals[idx]
	return &deal, nil
}

// FindRelated подбирает сделки с тем же типом объекта ИЛИ тем же штатом,
// исключая саму сделку-образец. Кандидаты идут в порядке репозитория
// и обрезаются до limit — без ранжирования, это осознанное упрощение.
func (r *DealRepository) FindRelated(ctx context.Context, dealID string, limit int) ([]domain.Deal, error) {
	refIdx, ok := r.byID[dealID]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	ref := r.deals[refIdx]

	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	related := make([]domain.Deal, 0, limit)
	for _, d := range r.deals {
		if d.ID == ref.ID {
			continue
		}
		if d.PropertyType == ref.PropertyType || d.Address.State == ref.Address.State {
			related = append(related, d)
			if len(related) == limit {
				break
			}
		}
	}

	return related, nil
}
