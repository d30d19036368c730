package usecase

import (
	"context"
	"errors"
	"testing"

	"deals-service/internal/core/domain"
)

func TestGetFilterOptions(t *testing.T) {
	repo := &fakeFilterRepository{
		propertyTypes: []string{"industrial", "office"},
		locations:     []string{"TX", "NY"},
		statuses:      []string{"active"},
		priceRange:    domain.RangeResult{Min: 9_200_000, Max: 41_300_000},
		capRateRange:  domain.RangeResult{Min: 4.7, Max: 8.3},
		totalCount:    6,
	}
	uc := NewGetFilterOptionsUseCase(repo)

	result, err := uc.Execute(context.Background(), domain.DefaultFilterCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Count != 6 {
		t.Fatalf("expected count 6, got %d", result.Count)
	}

	price, ok := result.Options["price"]
	if !ok || price.Min == nil || price.Max == nil {
		t.Fatal("expected price option with observed bounds")
	}
	if *price.Min != 9_200_000 || *price.Max != 41_300_000 {
		t.Fatalf("unexpected price bounds: [%v, %v]", *price.Min, *price.Max)
	}

	capRate, ok := result.Options["cap_rate"]
	if !ok || capRate.Min == nil || capRate.Max == nil {
		t.Fatal("expected cap_rate option with observed bounds")
	}

	types, ok := result.Options["property_types"]
	if !ok || len(types.Options) != 2 {
		t.Fatalf("expected 2 property types, got %+v", types)
	}
	if _, ok := result.Options["locations"]; !ok {
		t.Fatal("expected locations option")
	}
	if _, ok := result.Options["statuses"]; !ok {
		t.Fatal("expected statuses option")
	}
}

func TestGetFilterOptions_CountErrorPropagates(t *testing.T) {
	wantErr := errors.New("count failed")
	uc := NewGetFilterOptionsUseCase(&fakeFilterRepository{countErr: wantErr})

	_, err := uc.Execute(context.Background(), domain.DefaultFilterCriteria())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected count error to propagate, got %v", err)
	}
}
