package usecase

import (
	"context"
	"time"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"
)

type GetDealDetailsUseCase struct {
	storage      port.DealStoragePort
	relatedLimit int
	now          func() time.Time
}

func NewGetDealDetailsUseCase(storage port.DealStoragePort, relatedLimit int) *GetDealDetailsUseCase {
	return &GetDealDetailsUseCase{
		storage:      storage,
		relatedLimit: relatedLimit,
		now:          time.Now,
	}
}

// Execute собирает детальное представление: сделка, производные метрики
// и похожие предложения. Сбой одной метрики не роняет представление —
// метрика просто остаётся пустой.
func (uc *GetDealDetailsUseCase) Execute(ctx context.Context, dealID string) (*domain.DealDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDealDetails",
		"deal_id":  dealID,
	})

	ucLogger.Info("Use case started", nil)

	deal, err := uc.storage.GetDealByID(ctx, dealID)
	if err != nil {
		ucLogger.Warn("Deal lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	metrics := uc.computeMetrics(*deal, ucLogger)

	related, err := uc.storage.FindRelated(ctx, dealID, uc.relatedLimit)
	if err != nil {
		ucLogger.Error("Failed to find related deals", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"related_count": len(related),
	})

	return &domain.DealDetailsView{
		Deal:         *deal,
		Metrics:      metrics,
		RelatedDeals: related,
	}, nil
}

func (uc *GetDealDetailsUseCase) computeMetrics(deal domain.Deal, logger port.LoggerPort) domain.DealMetrics {
	var metrics domain.DealMetrics

	years := domain.YearsRemainingOnLease(deal, uc.now())
	metrics.YearsRemainingOnLease = &years

	if percent, below, err := domain.RentVsMarket(deal); err != nil {
		// Нарушение предусловия — рисуем заглушку, не ошибку.
		logger.Debug("Rent vs market not applicable", port.Fields{"reason": err.Error()})
	} else {
		metrics.RentVsMarketPercent = &percent
		metrics.IsBelowMarket = &below
	}

	if perSqFt, err := domain.PricePerSquareFoot(deal); err != nil {
		logger.Debug("Price per sq ft not applicable", port.Fields{"reason": err.Error()})
	} else {
		metrics.PricePerSqFt = &perSqFt
	}

	return metrics
}
