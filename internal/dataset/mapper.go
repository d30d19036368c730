package dataset

import (
	"fmt"
	"time"

	"deals-service/internal/core/domain"
)

// Формат дат в наборе данных.
const dateLayout = "2006-01-02"

// dealRecord — DTO одной записи из deals.json.
// Доменная модель не знает про json-теги, поэтому маппим вручную.
type dealRecord struct {
	ID           string `json:"id"`
	PropertyName string `json:"propertyName"`
	PropertyType string `json:"propertyType"`
	Status       string `json:"status"`
	ListedDate   string `json:"listedDate"`
	Description  string `json:"description"`

	Address struct {
		Street string `json:"street"`
		City   string `json:"city"`
		State  string `json:"state"`
		Zip    string `json:"zip"`
	} `json:"address"`

	Tenant struct {
		Name                string `json:"name"`
		CreditRating        string `json:"creditRating"`
		LeaseExpirationDate string `json:"leaseExpirationDate"`
	} `json:"tenant"`

	Financials struct {
		RentPerSqFt       float64 `json:"rentPerSqFt"`
		MarketRentPerSqFt float64 `json:"marketRentPerSqFt"`
		LeaseTerm         int     `json:"leaseTerm"`
		CapRate           float64 `json:"capRate"`
		NOI               float64 `json:"noi"`
		AskingPrice       float64 `json:"askingPrice"`
	} `json:"financials"`

	Property struct {
		Size          float64 `json:"size"`
		YearBuilt     int     `json:"yearBuilt"`
		OccupancyRate float64 `json:"occupancyRate"`
	} `json:"property"`

	Financing struct {
		Assumable    bool    `json:"assumable"`
		LoanAmount   float64 `json:"loanAmount"`
		InterestRate float64 `json:"interestRate"`
		LoanMaturity string  `json:"loanMaturity"`
		LoanToValue  float64 `json:"loanToValue"`
	} `json:"financing"`

	Images struct {
		Main       string   `json:"main"`
		Additional []string `json:"additional"`
	} `json:"images"`

	OfferingMemorandum string `json:"offeringMemorandum"`
}

func (r dealRecord) toDomain() (domain.Deal, error) {
	listedDate, err := parseDate(r.ListedDate)
	if err != nil {
		return domain.Deal{}, fmt.Errorf("listedDate: %w", err)
	}
	leaseExpiration, err := parseDate(r.Tenant.LeaseExpirationDate)
	if err != nil {
		return domain.Deal{}, fmt.Errorf("tenant.leaseExpirationDate: %w", err)
	}
	loanMaturity, err := parseDate(r.Financing.LoanMaturity)
	if err != nil {
		return domain.Deal{}, fmt.Errorf("financing.loanMaturity: %w", err)
	}

	return domain.Deal{
		ID:           r.ID,
		PropertyName: r.PropertyName,
		PropertyType: r.PropertyType,
		Status:       domain.DealStatus(r.Status),
		ListedDate:   listedDate,
		Description:  r.Description,
		Address: domain.Address{
			Street: r.Address.Street,
			City:   r.Address.City,
			State:  r.Address.State,
			Zip:    r.Address.Zip,
		},
		Tenant: domain.Tenant{
			Name:                r.Tenant.Name,
			CreditRating:        r.Tenant.CreditRating,
			LeaseExpirationDate: leaseExpiration,
		},
		Financials: domain.Financials{
			RentPerSqFt:       r.Financials.RentPerSqFt,
			MarketRentPerSqFt: r.Financials.MarketRentPerSqFt,
			LeaseTerm:         r.Financials.LeaseTerm,
			CapRate:           r.Financials.CapRate,
			NOI:               r.Financials.NOI,
			AskingPrice:       r.Financials.AskingPrice,
		},
		Property: domain.PropertyInfo{
			Size:          r.Property.Size,
			YearBuilt:     r.Property.YearBuilt,
			OccupancyRate: r.Property.OccupancyRate,
		},
		Financing: domain.Financing{
			Assumable:    r.Financing.Assumable,
			LoanAmount:   r.Financing.LoanAmount,
			InterestRate: r.Financing.InterestRate,
			LoanMaturity: loanMaturity,
			LoanToValue:  r.Financing.LoanToValue,
		},
		Images: domain.Images{
			Main:       r.Images.Main,
			Additional: r.Images.Additional,
		},
		OfferingMemorandum: r.OfferingMemorandum,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %s date, got %q", dateLayout, value)
	}
	return t, nil
}
