package usecase

import (
	"context"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	storage port.FilterOptionsRepositoryPort
}

func NewGetFilterOptionsUseCase(storage port.FilterOptionsRepositoryPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{storage: storage}
}

// Execute собирает доступные опции фильтров: уникальные категории,
// наблюдаемые диапазоны цены и cap rate и количество сделок,
// проходящих текущие критерии.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.FilterOptionsResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})

	ucLogger.Info("Use case started", nil)

	resultOptions := make(map[string]domain.FilterOption)

	if priceRange, err := uc.storage.GetPriceRange(ctx); err == nil {
		resultOptions["price"] = domain.FilterOption{Min: &priceRange.Min, Max: &priceRange.Max}
	} else {
		ucLogger.Error("Failed to get price range", err, nil)
	}

	if capRateRange, err := uc.storage.GetCapRateRange(ctx); err == nil {
		resultOptions["cap_rate"] = domain.FilterOption{Min: &capRateRange.Min, Max: &capRateRange.Max}
	} else {
		ucLogger.Error("Failed to get cap rate range", err, nil)
	}

	if types, err := uc.storage.GetDistinctPropertyTypes(ctx); err == nil && len(types) > 0 {
		resultOptions["property_types"] = domain.FilterOption{Options: types}
	}

	if locations, err := uc.storage.GetDistinctLocations(ctx); err == nil && len(locations) > 0 {
		resultOptions["locations"] = domain.FilterOption{Options: locations}
	}

	if statuses, err := uc.storage.GetDistinctStatuses(ctx); err == nil && len(statuses) > 0 {
		resultOptions["statuses"] = domain.FilterOption{Options: statuses}
	}

	count, err := uc.storage.GetTotalCount(ctx, criteria)
	if err != nil {
		ucLogger.Error("Failed to get total count", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"options_count": len(resultOptions),
		"total_count":   count,
	})

	return &domain.FilterOptionsResult{
		Options: resultOptions,
		Count:   count,
	}, nil
}
