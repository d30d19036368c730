package usecase

import (
	"context"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"
)

type GetRelatedDealsUseCase struct {
	storage port.DealStoragePort
}

func NewGetRelatedDealsUseCase(storage port.DealStoragePort) *GetRelatedDealsUseCase {
	return &GetRelatedDealsUseCase{storage: storage}
}

func (uc *GetRelatedDealsUseCase) Execute(ctx context.Context, dealID string, limit int) ([]domain.Deal, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetRelatedDeals",
		"deal_id":  dealID,
		"limit":    limit,
	})

	ucLogger.Info("Use case started", nil)

	related, err := uc.storage.FindRelated(ctx, dealID, limit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"related_count": len(related),
	})

	return related, nil
}
