package port

import (
	"context"
	"deals-service/internal/core/domain"
)

// DealStoragePort — порт доступа к набору сделок.
// Реализация обязана быть read-only: результаты выборок — всегда новые
// слайсы, исходный набор никогда не мутируется.
type DealStoragePort interface {
	// FindWithFilters применяет все предикаты критериев (логическое И)
	// и сортирует выживший набор по sortKey. Неизвестный ключ сортировки
	// сохраняет порядок репозитория. Пустой результат — валидный ответ.
	FindWithFilters(ctx context.Context, criteria domain.FilterCriteria, sortKey domain.SortKey) ([]domain.Deal, error)

	// GetDealByID возвращает domain.ErrDealNotFound, если сделки нет.
	GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error)

	// FindRelated подбирает до limit сделок с тем же типом объекта
	// или тем же штатом, исключая саму сделку-образец.
	// Кандидаты возвращаются в порядке репозитория, без ранжирования.
	FindRelated(ctx context.Context, dealID string, limit int) ([]domain.Deal, error)
}
