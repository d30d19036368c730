package memstore

import (
	"sort"

	"deals-service/internal/core/domain"
)

// Реестр именованных компараторов. Сортировка стабильная: при равных
// ключах сохраняется порядок репозитория.
var comparators = map[domain.SortKey]func(a, b domain.Deal) bool{
	domain.SortPriceAsc: func(a, b domain.Deal) bool {
		return a.Financials.AskingPrice < b.Financials.AskingPrice
	},
	domain.SortPriceDesc: func(a, b domain.Deal) bool {
		return a.Financials.AskingPrice > b.Financials.AskingPrice
	},
	domain.SortCapRateAsc: func(a, b domain.Deal) bool {
		return a.Financials.CapRate < b.Financials.CapRate
	},
	domain.SortCapRateDesc: func(a, b domain.Deal) bool {
		return a.Financials.CapRate > b.Financials.CapRate
	},
	domain.SortDateAsc: func(a, b domain.Deal) bool {
		return a.ListedDate.Before(b.ListedDate)
	},
	domain.SortDateDesc: func(a, b domain.Deal) bool {
		return b.ListedDate.Before(a.ListedDate)
	},
}

// sortDeals сортирует слайс на месте. Неизвестный или пустой ключ —
// не ошибка: порядок входа сохраняется как есть.
func sortDeals(deals []domain.Deal, key domain.SortKey) {
	less, ok := comparators[key]
	if !ok {
		return
	}
	sort.SliceStable(deals, func(i, j int) bool {
		return less(deals[i], deals[j])
	})
}
