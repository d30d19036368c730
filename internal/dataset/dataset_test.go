package dataset

import (
	"testing"

	"deals-service/internal/core/domain"
)

func TestLoad(t *testing.T) {
	deals, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deals) != 8 {
		t.Fatalf("expected 8 deals in the embedded dataset, got %d", len(deals))
	}

	seen := make(map[string]bool, len(deals))
	for _, d := range deals {
		if d.ID == "" {
			t.Fatal("deal with empty id in dataset")
		}
		if seen[d.ID] {
			t.Fatalf("duplicate deal id %s", d.ID)
		}
		seen[d.ID] = true

		if d.ListedDate.IsZero() {
			t.Fatalf("deal %s: listed date was not parsed", d.ID)
		}
		if d.Tenant.LeaseExpirationDate.IsZero() {
			t.Fatalf("deal %s: lease expiration date was not parsed", d.ID)
		}
		if d.Financials.AskingPrice <= 0 {
			t.Fatalf("deal %s: asking price must be positive", d.ID)
		}
		if d.Property.Size <= 0 {
			t.Fatalf("deal %s: property size must be positive", d.ID)
		}
	}
}

func TestLoad_KnownRecord(t *testing.T) {
	deals, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var deal *domain.Deal
	for i := range deals {
		if deals[i].ID == "deal-001" {
			deal = &deals[i]
			break
		}
	}
	if deal == nil {
		t.Fatal("deal-001 is missing from the dataset")
	}

	if deal.PropertyName != "Westway Logistics Center" {
		t.Fatalf("unexpected property name: %s", deal.PropertyName)
	}
	if deal.PropertyType != "industrial" {
		t.Fatalf("unexpected property type: %s", deal.PropertyType)
	}
	if deal.Status != domain.StatusActive {
		t.Fatalf("unexpected status: %s", deal.Status)
	}
	if deal.Address.State != "TX" {
		t.Fatalf("unexpected state: %s", deal.Address.State)
	}
	if deal.Financials.AskingPrice != 18_500_000 {
		t.Fatalf("unexpected asking price: %v", deal.Financials.AskingPrice)
	}
	if deal.ListedDate.Format("2006-01-02") != "2025-06-12" {
		t.Fatalf("unexpected listed date: %s", deal.ListedDate)
	}
	if len(deal.Images.Additional) != 2 {
		t.Fatalf("expected 2 additional images, got %d", len(deal.Images.Additional))
	}
}

func TestToDomain_RejectsMalformedDates(t *testing.T) {
	var rec dealRecord
	rec.ID = "deal-x"
	rec.ListedDate = "12.06.2025"
	rec.Tenant.LeaseExpirationDate = "2033-05-31"
	rec.Financing.LoanMaturity = "2031-07-01"

	if _, err := rec.toDomain(); err == nil {
		t.Fatal("expected error for malformed listed date, got nil")
	}
}
