package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"deals-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func parseString(query url.Values, key string) string {
	return strings.TrimSpace(query.Get(key))
}

// parseStringSlice разбирает значение вида "office,retail" в слайс.
func parseStringSlice(query url.Values, key string) []string {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func parseFloat(query url.Values, key string) *float64 {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseInt(query url.Values, key string) *int {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// criteriaFromQuery собирает FilterCriteria из query-параметров.
// Незаданные параметры остаются в значениях по умолчанию ("показать всё").
func criteriaFromQuery(query url.Values) domain.FilterCriteria {
	criteria := domain.DefaultFilterCriteria()

	criteria.SearchQuery = parseString(query, "search")
	criteria.PropertyTypes = parseStringSlice(query, "propertyTypes")
	criteria.Locations = parseStringSlice(query, "locations")
	criteria.Statuses = parseStringSlice(query, "status")

	if min := parseFloat(query, "priceMin"); min != nil {
		criteria.PriceRange[0] = *min
	}
	if max := parseFloat(query, "priceMax"); max != nil {
		criteria.PriceRange[1] = *max
	}
	if min := parseFloat(query, "capRateMin"); min != nil {
		criteria.CapRateRange[0] = *min
	}
	if max := parseFloat(query, "capRateMax"); max != nil {
		criteria.CapRateRange[1] = *max
	}

	return criteria
}
