package memstore

import (
	"strings"

	"deals-service/internal/core/domain"
)

// matchesCriteria — главный предикат: сделка проходит, только если
// проходит каждое измерение критериев. Порядок проверок на результат
// не влияет, только на скорость.
func matchesCriteria(d domain.Deal, c domain.FilterCriteria) bool {
	return matchesSearch(d, c.SearchQuery) &&
		matchesPropertyTypes(d, c.PropertyTypes) &&
		matchesLocations(d, c.Locations) &&
		matchesPriceRange(d, c.PriceRange) &&
		matchesCapRateRange(d, c.CapRateRange) &&
		matchesStatuses(d, c.Statuses)
}

// matchesSearch — регистронезависимый поиск подстроки по имени объекта,
// городу и штату. Пустой запрос пропускает всё.
func matchesSearch(d domain.Deal, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(d.PropertyName), q) ||
		strings.Contains(strings.ToLower(d.Address.City), q) ||
		strings.Contains(strings.ToLower(d.Address.State), q)
}

// Пустой набор категорий — это "без ограничения", а не "отклонить всё".

func matchesPropertyTypes(d domain.Deal, types []string) bool {
	if len(types) == 0 {
		return true
	}
	return containsString(types, d.PropertyType)
}

func matchesLocations(d domain.Deal, states []string) bool {
	if len(states) == 0 {
		return true
	}
	return containsString(states, d.Address.State)
}

func matchesStatuses(d domain.Deal, statuses []string) bool {
	if len(statuses) == 0 {
		return true
	}
	return containsString(statuses, string(d.Status))
}

// Диапазоны включают обе границы.

func matchesPriceRange(d domain.Deal, r [2]float64) bool {
	price := d.Financials.AskingPrice
	return price >= r[0] && price <= r[1]
}

func matchesCapRateRange(d domain.Deal, r [2]float64) bool {
	capRate := d.Financials.CapRate
	return capRate >= r[0] && capRate <= r[1]
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
