package domain

// SortKey — ключ сортировки результата выборки.
type SortKey string

const (
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortCapRateAsc  SortKey = "cap-rate-asc"
	SortCapRateDesc SortKey = "cap-rate-desc"
	SortDateAsc     SortKey = "date-asc"
	SortDateDesc    SortKey = "date-desc"
)

// DefaultSortKey применяется, пока пользователь не выбрал другую сортировку.
const DefaultSortKey = SortPriceDesc

// Границы диапазонов по умолчанию ("полный" диапазон = фильтр выключен).
const (
	DefaultPriceMin   = 0
	DefaultPriceMax   = 50_000_000
	DefaultCapRateMin = 0
	DefaultCapRateMax = 10
)

// FilterCriteria — полный набор активных ограничений выборки.
// Пустой список категорий означает "без ограничения", а не "ничего не найдено".
// Диапазоны включают обе границы.
type FilterCriteria struct {
	PropertyTypes []string
	Locations     []string
	Statuses      []string

	PriceRange   [2]float64
	CapRateRange [2]float64

	// SearchQuery — свободный текстовый поиск по имени объекта, городу и штату.
	// Пустая строка пропускает все записи.
	SearchQuery string
}

// DefaultFilterCriteria возвращает критерии "показать всё".
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		PriceRange:   [2]float64{DefaultPriceMin, DefaultPriceMax},
		CapRateRange: [2]float64{DefaultCapRateMin, DefaultCapRateMax},
	}
}

// Validate проверяет инвариант диапазонов: min не может превышать max.
func (c FilterCriteria) Validate() error {
	if c.PriceRange[0] > c.PriceRange[1] {
		return ErrInvalidPriceRange
	}
	if c.CapRateRange[0] > c.CapRateRange[1] {
		return ErrInvalidCapRateRange
	}
	return nil
}

// PaginatedResult — стандартная структура для ответа со списком и пагинацией.
type PaginatedResult struct {
	Deals        []Deal
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
}

// RangeResult — наблюдаемые границы числового поля по всему набору данных.
type RangeResult struct {
	Min float64
	Max float64
}

// FilterOption — описание одного фильтра для ответа со списком опций.
type FilterOption struct {
	Options []string
	Min     *float64
	Max     *float64
}

// FilterOptionsResult — все доступные опции фильтров плюс общее количество сделок.
type FilterOptionsResult struct {
	Options map[string]FilterOption
	Count   int
}

// DictionaryItem — универсальная структура для элемента справочника.
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}
