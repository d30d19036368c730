package domain

import "errors"

var (
	// ErrDealNotFound — запрошенной сделки нет в репозитории.
	// Это ожидаемый исход, а не сбой: presentation-слой показывает "not found".
	ErrDealNotFound = errors.New("deals: deal not found")

	// ErrDuplicateDealID — в наборе данных встретились два одинаковых id.
	ErrDuplicateDealID = errors.New("deals: duplicate deal id")

	ErrInvalidPriceRange   = errors.New("deals: price range min exceeds max")
	ErrInvalidCapRateRange = errors.New("deals: cap rate range min exceeds max")

	// Нарушения предусловий производных метрик. Вызывающая сторона, которая
	// отображает одну метрику, ловит их локально и рисует заглушку,
	// не роняя всю страницу.
	ErrMarketRentUnknown   = errors.New("deals: market rent per sq ft is zero")
	ErrInvalidPropertySize = errors.New("deals: property size must be positive")
	ErrInvalidAskingPrice  = errors.New("deals: asking price must be positive")

	// ErrEmptyMessage — в воркшоп отправили пустое сообщение.
	ErrEmptyMessage = errors.New("workshop: message text is empty")
)
