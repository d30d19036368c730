package contracts

import (
	"strings"
	"testing"
)

const validDealBody = `{
  "id": "deal-900",
  "propertyName": "Test Property",
  "propertyType": "office",
  "status": "active",
  "listedDate": "2025-01-15",
  "description": "Test listing.",
  "address": { "street": "1 Main St", "city": "Austin", "state": "TX", "zip": "78701" },
  "tenant": { "name": "Acme Corp", "creditRating": "A", "leaseExpirationDate": "2030-01-01" },
  "financials": { "rentPerSqFt": 20, "marketRentPerSqFt": 22, "leaseTerm": 10, "capRate": 6.5, "noi": 650000, "askingPrice": 10000000 },
  "property": { "size": 50000, "yearBuilt": 2010, "occupancyRate": 95 },
  "financing": { "assumable": false, "loanAmount": 6000000, "interestRate": 5, "loanMaturity": "2030-06-01", "loanToValue": 60 },
  "images": { "main": "/images/test-main.jpg", "additional": [] },
  "offeringMemorandum": "/docs/test-om.pdf"
}`

func TestValidateRecord_ValidDeal(t *testing.T) {
	if err := ValidateRecord("Deal", "1.0.0", []byte(validDealBody)); err != nil {
		t.Fatalf("valid deal failed validation: %v", err)
	}
}

func TestValidateRecord_InvalidDeal(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "negative asking price",
			body: strings.Replace(validDealBody, `"askingPrice": 10000000`, `"askingPrice": -1`, 1),
		},
		{
			name: "zero property size",
			body: strings.Replace(validDealBody, `"size": 50000`, `"size": 0`, 1),
		},
		{
			name: "unknown status",
			body: strings.Replace(validDealBody, `"status": "active"`, `"status": "archived"`, 1),
		},
		{
			name: "missing id",
			body: strings.Replace(validDealBody, `"id": "deal-900",`, ``, 1),
		},
		{
			name: "not a json",
			body: "{",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateRecord("Deal", "1.0.0", []byte(tc.body)); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestValidateRecord_UnknownSchema(t *testing.T) {
	if err := ValidateRecord("Listing", "1.0.0", []byte(`{}`)); err == nil {
		t.Fatal("expected error for unregistered schema, got nil")
	}
}

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "schemas/deal/v1.json", want: "Deal/1.0.0"},
		{path: "schemas/deal-event/v2.json", want: "DealEvent/2.0.0"},
		{path: "schemas/broken.json", want: ""},
	}

	for _, tc := range tests {
		if got := generateKeyFromPath(tc.path); got != tc.want {
			t.Fatalf("path %q: expected %q, got %q", tc.path, tc.want, got)
		}
	}
}
