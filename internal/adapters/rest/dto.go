package rest

import (
	"deals-service/internal/core/domain"
)

// Формат дат в ответах API.
const apiDateLayout = "2006-01-02"

// DealCardResponse - DTO для карточки сделки в списке.
type DealCardResponse struct {
	ID           string  `json:"id"`
	PropertyName string  `json:"property_name"`
	PropertyType string  `json:"property_type"`
	Status       string  `json:"status"`
	ListedDate   string  `json:"listed_date"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	AskingPrice  float64 `json:"asking_price"`
	CapRate      float64 `json:"cap_rate"`
	NOI          float64 `json:"noi"`
	Size         float64 `json:"size"`
	MainImage    string  `json:"main_image"`
}

// PaginatedDealsResponse - DTO для ответа со списком и пагинацией.
type PaginatedDealsResponse struct {
	Data    []DealCardResponse `json:"deals"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
}

type AddressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type TenantResponse struct {
	Name                string `json:"name"`
	CreditRating        string `json:"credit_rating"`
	LeaseExpirationDate string `json:"lease_expiration_date"`
}

type FinancialsResponse struct {
	RentPerSqFt       float64 `json:"rent_per_sq_ft"`
	MarketRentPerSqFt float64 `json:"market_rent_per_sq_ft"`
	LeaseTerm         int     `json:"lease_term"`
	CapRate           float64 `json:"cap_rate"`
	NOI               float64 `json:"noi"`
	AskingPrice       float64 `json:"asking_price"`
}

type PropertyResponse struct {
	Size          float64 `json:"size"`
	YearBuilt     int     `json:"year_built"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type FinancingResponse struct {
	Assumable    bool    `json:"assumable"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	LoanMaturity string  `json:"loan_maturity"`
	LoanToValue  float64 `json:"loan_to_value"`
}

type ImagesResponse struct {
	Main       string   `json:"main"`
	Additional []string `json:"additional"`
}

// DealGeneralInfoResponse — полная информация о сделке для детальной страницы.
type DealGeneralInfoResponse struct {
	ID                 string             `json:"id"`
	PropertyName       string             `json:"property_name"`
	PropertyType       string             `json:"property_type"`
	Status             string             `json:"status"`
	ListedDate         string             `json:"listed_date"`
	Description        string             `json:"description,omitempty"`
	Address            AddressResponse    `json:"address"`
	Tenant             TenantResponse     `json:"tenant"`
	Financials         FinancialsResponse `json:"financials"`
	Property           PropertyResponse   `json:"property"`
	Financing          FinancingResponse  `json:"financing"`
	Images             ImagesResponse     `json:"images"`
	OfferingMemorandum string             `json:"offering_memorandum"`
}

// MetricsResponse — производные метрики. null означает "неприменимо".
type MetricsResponse struct {
	YearsRemainingOnLease *float64 `json:"years_remaining_on_lease"`
	RentVsMarketPercent   *float64 `json:"rent_vs_market_percent"`
	IsBelowMarket         *bool    `json:"is_below_market"`
	PricePerSqFt          *float64 `json:"price_per_sq_ft"`
}

// DealDetailsResponse - DTO для детальной страницы.
type DealDetailsResponse struct {
	General      DealGeneralInfoResponse `json:"general"`
	Metrics      MetricsResponse         `json:"metrics"`
	RelatedDeals []DealCardResponse      `json:"related_deals"`
}

type RelatedDealsResponse struct {
	Data []DealCardResponse `json:"data"`
}

type FilterResponse struct {
	Filters map[string]FilterOptionResponse `json:"filters"`
	Count   int                             `json:"count"`
}

type FilterOptionResponse struct {
	Options []string `json:"options,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
}

// FilterDefaultsResponse — критерии по умолчанию (операция "сбросить фильтры").
type FilterDefaultsResponse struct {
	PropertyTypes []string   `json:"property_types"`
	Locations     []string   `json:"locations"`
	Statuses      []string   `json:"statuses"`
	PriceRange    [2]float64 `json:"price_range"`
	CapRateRange  [2]float64 `json:"cap_rate_range"`
	Search        string     `json:"search"`
	Sort          string     `json:"sort"`
}

type DictionaryItemsResponse map[string][]DictionaryItemResponse

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsUser    bool   `json:"is_user"`
	Timestamp string `json:"timestamp"`
}

type ChatExchangeResponse struct {
	Message ChatMessageResponse `json:"message"`
	Reply   ChatMessageResponse `json:"reply"`
}

func toDealCardResponse(d domain.Deal) DealCardResponse {
	return DealCardResponse{
		ID:           d.ID,
		PropertyName: d.PropertyName,
		PropertyType: d.PropertyType,
		Status:       string(d.Status),
		ListedDate:   d.ListedDate.Format(apiDateLayout),
		City:         d.Address.City,
		State:        d.Address.State,
		AskingPrice:  d.Financials.AskingPrice,
		CapRate:      d.Financials.CapRate,
		NOI:          d.Financials.NOI,
		Size:         d.Property.Size,
		MainImage:    d.Images.Main,
	}
}

func toDealCardResponses(deals []domain.Deal) []DealCardResponse {
	cards := make([]DealCardResponse, len(deals))
	for i, d := range deals {
		cards[i] = toDealCardResponse(d)
	}
	return cards
}

func toDealGeneralInfoResponse(d domain.Deal) DealGeneralInfoResponse {
	return DealGeneralInfoResponse{
		ID:           d.ID,
		PropertyName: d.PropertyName,
		PropertyType: d.PropertyType,
		Status:       string(d.Status),
		ListedDate:   d.ListedDate.Format(apiDateLayout),
		Description:  d.Description,
		Address: AddressResponse{
			Street: d.Address.Street,
			City:   d.Address.City,
			State:  d.Address.State,
			Zip:    d.Address.Zip,
		},
		Tenant: TenantResponse{
			Name:                d.Tenant.Name,
			CreditRating:        d.Tenant.CreditRating,
			LeaseExpirationDate: d.Tenant.LeaseExpirationDate.Format(apiDateLayout),
		},
		Financials: FinancialsResponse{
			RentPerSqFt:       d.Financials.RentPerSqFt,
			MarketRentPerSqFt: d.Financials.MarketRentPerSqFt,
			LeaseTerm:         d.Financials.LeaseTerm,
			CapRate:           d.Financials.CapRate,
			NOI:               d.Financials.NOI,
			AskingPrice:       d.Financials.AskingPrice,
		},
		Property: PropertyResponse{
			Size:          d.Property.Size,
			YearBuilt:     d.Property.YearBuilt,
			OccupancyRate: d.Property.OccupancyRate,
		},
		Financing: FinancingResponse{
			Assumable:    d.Financing.Assumable,
			LoanAmount:   d.Financing.LoanAmount,
			InterestRate: d.Financing.InterestRate,
			LoanMaturity: d.Financing.LoanMaturity.Format(apiDateLayout),
			LoanToValue:  d.Financing.LoanToValue,
		},
		Images: ImagesResponse{
			Main:       d.Images.Main,
			Additional: d.Images.Additional,
		},
		OfferingMemorandum: d.OfferingMemorandum,
	}
}

func toChatMessageResponse(m domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Text:      m.Text,
		IsUser:    m.IsUser,
		Timestamp: m.Timestamp.Format("15:04"),
	}
}
