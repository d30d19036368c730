package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"deals-service/internal/core/domain"
)

func TestGetDealDetails(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deal := domain.Deal{
		ID:           "deal-a",
		PropertyName: "Westway Logistics Center",
		PropertyType: "industrial",
		Tenant: domain.Tenant{
			LeaseExpirationDate: now.AddDate(8, 0, 0),
		},
		Financials: domain.Financials{
			AskingPrice:       18_500_000,
			RentPerSqFt:       24,
			MarketRentPerSqFt: 30,
		},
		Property: domain.PropertyInfo{Size: 120_000},
	}
	related := makeDeals(2)

	storage := &fakeDealStorage{deals: []domain.Deal{deal}, related: related}
	uc := NewGetDealDetailsUseCase(storage, 3)
	uc.now = func() time.Time { return now }

	view, err := uc.Execute(context.Background(), "deal-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Deal.ID != "deal-a" {
		t.Fatalf("expected deal-a, got %s", view.Deal.ID)
	}
	if len(view.RelatedDeals) != 2 {
		t.Fatalf("expected 2 related deals, got %d", len(view.RelatedDeals))
	}

	m := view.Metrics
	if m.YearsRemainingOnLease == nil || math.Abs(*m.YearsRemainingOnLease-8) > 0.01 {
		t.Fatalf("expected ~8 years remaining, got %v", m.YearsRemainingOnLease)
	}
	if m.RentVsMarketPercent == nil || math.Abs(*m.RentVsMarketPercent-20) > 1e-9 {
		t.Fatalf("expected 20%% rent vs market, got %v", m.RentVsMarketPercent)
	}
	if m.IsBelowMarket == nil || !*m.IsBelowMarket {
		t.Fatalf("expected below-market flag, got %v", m.IsBelowMarket)
	}
	if m.PricePerSqFt == nil || *m.PricePerSqFt != 154 {
		t.Fatalf("expected price per sq ft 154, got %v", m.PricePerSqFt)
	}
}

func TestGetDealDetails_MetricsDegradeGracefully(t *testing.T) {
	// Нулевая рыночная ставка и нулевая площадь: метрики недоступны,
	// но представление всё равно собирается.
	deal := domain.Deal{
		ID: "deal-a",
		Tenant: domain.Tenant{
			LeaseExpirationDate: time.Now().AddDate(3, 0, 0),
		},
		Financials: domain.Financials{AskingPrice: 27_800_000},
	}

	storage := &fakeDealStorage{deals: []domain.Deal{deal}}
	uc := NewGetDealDetailsUseCase(storage, 3)

	view, err := uc.Execute(context.Background(), "deal-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Metrics.YearsRemainingOnLease == nil {
		t.Fatal("years remaining must always be computed")
	}
	if view.Metrics.RentVsMarketPercent != nil || view.Metrics.IsBelowMarket != nil {
		t.Fatal("rent vs market must be empty when market rent is unknown")
	}
	if view.Metrics.PricePerSqFt != nil {
		t.Fatal("price per sq ft must be empty when size is unknown")
	}
}

func TestGetDealDetails_NotFound(t *testing.T) {
	uc := NewGetDealDetailsUseCase(&fakeDealStorage{}, 3)

	_, err := uc.Execute(context.Background(), "deal-missing")
	if !errors.Is(err, domain.ErrDealNotFound) {
		t.Fatalf("expected ErrDealNotFound, got %v", err)
	}
}
