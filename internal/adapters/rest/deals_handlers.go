package rest

import (
	"errors"
	"net/http"
	"strconv"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"
	"deals-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type DealsHandler struct {
	findDealsUC      usecases_port.FindDealsUseCase
	getDealDetailsUC usecases_port.GetDealDetailsUseCase
	getRelatedUC     usecases_port.GetRelatedDealsUseCase
}

func NewDealsHandler(findDealsUC usecases_port.FindDealsUseCase,
	getDealDetailsUC usecases_port.GetDealDetailsUseCase,
	getRelatedUC usecases_port.GetRelatedDealsUseCase) *DealsHandler {
	return &DealsHandler{
		findDealsUC:      findDealsUC,
		getDealDetailsUC: getDealDetailsUC,
		getRelatedUC:     getRelatedUC,
	}
}

// FindDeals обрабатывает GET /api/v1/deals
func (h *DealsHandler) FindDeals(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()

	// --- Шаг 1: Парсим пагинацию ---
	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(query.Get("perPage"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	limit := perPage
	offset := (page - 1) * perPage

	// --- Шаг 2: Собираем критерии и сортировку ---
	criteria := criteriaFromQuery(query)

	sortKey := domain.DefaultSortKey
	if raw := parseString(query, "sort"); raw != "" {
		// Неизвестный ключ — не ошибка: просто сохраняется порядок репозитория.
		sortKey = domain.SortKey(raw)
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "FindDeals",
		"page":     page,
		"per_page": perPage,
		"sort":     string(sortKey),
	})
	handlerLogger.Debug("Processing request to find deals", nil)

	if err := criteria.Validate(); err != nil {
		handlerLogger.Warn("Invalid filter criteria", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid filter criteria: "+err.Error())
		return
	}

	// --- Шаг 3: Вызываем use-case ---
	paginatedResult, err := h.findDealsUC.Execute(r.Context(), criteria, sortKey, limit, offset)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve deals")
		return
	}

	handlerLogger.Info("Successfully found deals", port.Fields{
		"total_found":   paginatedResult.TotalCount,
		"items_on_page": len(paginatedResult.Deals),
	})

	// --- Шаг 4: Маппим результат в DTO и отправляем ---
	response := PaginatedDealsResponse{
		Data:    toDealCardResponses(paginatedResult.Deals),
		Total:   paginatedResult.TotalCount,
		Page:    paginatedResult.CurrentPage,
		PerPage: paginatedResult.ItemsPerPage,
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetDealDetails обрабатывает GET /api/v1/deals/{dealID}
func (h *DealsHandler) GetDealDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	dealID := chi.URLParam(r, "dealID")
	if dealID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Deal ID is required")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetDealDetails",
		"deal_id": dealID,
	})
	handlerLogger.Debug("Processing request to get deal details", nil)

	detailsView, err := h.getDealDetailsUC.Execute(r.Context(), dealID)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			// Отсутствие сделки — ожидаемый исход, а не сбой.
			WriteJSONError(w, http.StatusNotFound, "Deal not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve deal details")
		return
	}

	response := DealDetailsResponse{
		General: toDealGeneralInfoResponse(detailsView.Deal),
		Metrics: MetricsResponse{
			YearsRemainingOnLease: detailsView.Metrics.YearsRemainingOnLease,
			RentVsMarketPercent:   detailsView.Metrics.RentVsMarketPercent,
			IsBelowMarket:         detailsView.Metrics.IsBelowMarket,
			PricePerSqFt:          detailsView.Metrics.PricePerSqFt,
		},
		RelatedDeals: toDealCardResponses(detailsView.RelatedDeals),
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetRelatedDeals обрабатывает GET /api/v1/deals/{dealID}/related
func (h *DealsHandler) GetRelatedDeals(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	dealID := chi.URLParam(r, "dealID")
	if dealID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Deal ID is required")
		return
	}

	limit := 0
	if parsed := parseInt(r.URL.Query(), "limit"); parsed != nil {
		limit = *parsed
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetRelatedDeals",
		"deal_id": dealID,
		"limit":   limit,
	})
	handlerLogger.Debug("Processing request to get related deals", nil)

	related, err := h.getRelatedUC.Execute(r.Context(), dealID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Deal not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve related deals")
		return
	}

	RespondWithJSON(w, http.StatusOK, RelatedDealsResponse{Data: toDealCardResponses(related)})
}
