package memstore

import (
	"context"
	"testing"

	"deals-service/internal/core/domain"
)

func TestGetDistinctValues_FirstSeenOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	types, err := repo.GetDistinctPropertyTypes(ctx)
	if err != nil {
		t.Fatalf("property types: unexpected error: %v", err)
	}
	wantTypes := []string{"industrial", "office", "retail", "multifamily"}
	if !equalIDs(types, wantTypes) {
		t.Fatalf("expected %v, got %v", wantTypes, types)
	}

	locations, err := repo.GetDistinctLocations(ctx)
	if err != nil {
		t.Fatalf("locations: unexpected error: %v", err)
	}
	wantLocations := []string{"TX", "IL", "FL", "NY", "CA"}
	if !equalIDs(locations, wantLocations) {
		t.Fatalf("expected %v, got %v", wantLocations, locations)
	}

	statuses, err := repo.GetDistinctStatuses(ctx)
	if err != nil {
		t.Fatalf("statuses: unexpected error: %v", err)
	}
	wantStatuses := []string{"active", "under-contract"}
	if !equalIDs(statuses, wantStatuses) {
		t.Fatalf("expected %v, got %v", wantStatuses, statuses)
	}
}

func TestGetObservedRanges(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	priceRange, err := repo.GetPriceRange(ctx)
	if err != nil {
		t.Fatalf("price range: unexpected error: %v", err)
	}
	if priceRange.Min != 9_200_000 || priceRange.Max != 41_300_000 {
		t.Fatalf("expected price range [9200000, 41300000], got [%v, %v]", priceRange.Min, priceRange.Max)
	}

	capRange, err := repo.GetCapRateRange(ctx)
	if err != nil {
		t.Fatalf("cap rate range: unexpected error: %v", err)
	}
	if capRange.Min != 4.7 || capRange.Max != 7.2 {
		t.Fatalf("expected cap rate range [4.7, 7.2], got [%v, %v]", capRange.Min, capRange.Max)
	}
}

func TestGetObservedRanges_EmptyRepository(t *testing.T) {
	repo, err := NewDealRepository(nil)
	if err != nil {
		t.Fatalf("new repository: unexpected error: %v", err)
	}

	priceRange, err := repo.GetPriceRange(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if priceRange.Min != 0 || priceRange.Max != 0 {
		t.Fatalf("expected zero range for empty dataset, got [%v, %v]", priceRange.Min, priceRange.Max)
	}
}

func TestGetTotalCount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.GetTotalCount(ctx, domain.DefaultFilterCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != repo.Len() {
		t.Fatalf("expected %d, got %d", repo.Len(), count)
	}

	criteria := domain.DefaultFilterCriteria()
	criteria.Statuses = []string{"active"}
	count, err = repo.GetTotalCount(ctx, criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 active deals, got %d", count)
	}
}
