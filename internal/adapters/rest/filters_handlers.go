package rest

import (
	"net/http"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"
	"deals-service/internal/core/port/usecases_port"
)

type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	getDictionariesUC  usecases_port.GetDictionariesUseCase
}

func NewFilterHandler(getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	getDictionariesUC usecases_port.GetDictionariesUseCase) *FilterHandler {
	return &FilterHandler{
		getFilterOptionsUC: getFilterOptionsUC,
		getDictionariesUC:  getDictionariesUC,
	}
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	criteria := criteriaFromQuery(r.URL.Query())

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetFilterOptions",
	})
	handlerLogger.Debug("Processing request to get filter options", nil)

	if err := criteria.Validate(); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid filter criteria: "+err.Error())
		return
	}

	result, err := h.getFilterOptionsUC.Execute(r.Context(), criteria)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve filter options")
		return
	}

	response := FilterResponse{
		Filters: make(map[string]FilterOptionResponse, len(result.Options)),
		Count:   result.Count,
	}
	for name, option := range result.Options {
		response.Filters[name] = FilterOptionResponse{
			Options: option.Options,
			Min:     option.Min,
			Max:     option.Max,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetFilterDefaults обрабатывает GET /api/v1/filters/defaults.
// Это операция "сбросить фильтры": клиент получает критерии по умолчанию.
func (h *FilterHandler) GetFilterDefaults(w http.ResponseWriter, r *http.Request) {
	defaults := domain.DefaultFilterCriteria()

	response := FilterDefaultsResponse{
		PropertyTypes: []string{},
		Locations:     []string{},
		Statuses:      []string{},
		PriceRange:    defaults.PriceRange,
		CapRateRange:  defaults.CapRateRange,
		Search:        defaults.SearchQuery,
		Sort:          string(domain.DefaultSortKey),
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetDictionaries обрабатывает GET /api/v1/dictionaries
func (h *FilterHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	names := parseStringSlice(r.URL.Query(), "names")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetDictionaries",
		"names":   names,
	})
	handlerLogger.Debug("Processing request to get dictionaries", nil)

	dictionaries, err := h.getDictionariesUC.Execute(r.Context(), names)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve dictionaries")
		return
	}

	response := make(DictionaryItemsResponse, len(dictionaries))
	for name, items := range dictionaries {
		dto := make([]DictionaryItemResponse, len(items))
		for i, item := range items {
			dto[i] = DictionaryItemResponse{
				SystemName:  item.SystemName,
				DisplayName: item.DisplayName,
			}
		}
		response[name] = dto
	}

	RespondWithJSON(w, http.StatusOK, response)
}
