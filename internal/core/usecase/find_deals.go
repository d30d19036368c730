package usecase

import (
	"context"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"
)

type FindDealsUseCase struct {
	storage port.DealStoragePort
}

func NewFindDealsUseCase(storage port.DealStoragePort) *FindDealsUseCase {
	return &FindDealsUseCase{storage: storage}
}

// Execute выполняет полную выборку по критериям и отдаёт одну страницу.
// Выборка каждый раз пересчитывается с нуля — набор данных маленький,
// корректность важнее инкрементальности.
func (uc *FindDealsUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria, sortKey domain.SortKey, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindDeals",
		"sort_key": string(sortKey),
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	deals, err := uc.storage.FindWithFilters(ctx, criteria, sortKey)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	total := len(deals)
	page := deals
	if offset >= total {
		page = []domain.Deal{}
	} else if limit > 0 && offset+limit < total {
		page = deals[offset : offset+limit]
	} else {
		page = deals[offset:]
	}

	currentPage := 1
	if limit > 0 {
		currentPage = offset/limit + 1
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   total,
		"items_on_page": len(page),
	})

	return &domain.PaginatedResult{
		Deals:        page,
		TotalCount:   total,
		CurrentPage:  currentPage,
		ItemsPerPage: limit,
	}, nil
}
