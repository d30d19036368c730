package domain

import "time"

// DealStatus — статус сделки в её жизненном цикле.
type DealStatus string

const (
	StatusActive        DealStatus = "active"
	StatusUnderContract DealStatus = "under-contract"
	StatusClosing       DealStatus = "closing"
	StatusOffMarket     DealStatus = "off-market"
)

// Address — адрес объекта. State используется и для отображения,
// и для фильтра по локации, и для подбора похожих сделок.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// Tenant — информация об арендаторе объекта.
type Tenant struct {
	Name                string
	CreditRating        string
	LeaseExpirationDate time.Time
}

// Financials — финансовые показатели сделки.
// CapRate — процент по шкале 0-100 (обычно 0-10).
type Financials struct {
	RentPerSqFt       float64
	MarketRentPerSqFt float64
	LeaseTerm         int
	CapRate           float64
	NOI               float64
	AskingPrice       float64
}

// PropertyInfo — физические характеристики объекта.
type PropertyInfo struct {
	Size          float64 // площадь в кв. футах, > 0
	YearBuilt     int
	OccupancyRate float64
}

// Financing — условия текущего финансирования объекта.
type Financing struct {
	Assumable    bool
	LoanAmount   float64
	InterestRate float64
	LoanMaturity time.Time
	LoanToValue  float64
}

// Images — ссылки на изображения объекта.
type Images struct {
	Main       string
	Additional []string
}

// Deal — одно инвестиционное предложение коммерческой недвижимости.
// Запись неизменяема в рамках сессии: репозиторий наполняется один раз
// при старте и дальше только читается.
type Deal struct {
	ID           string
	PropertyName string
	PropertyType string
	Status       DealStatus
	ListedDate   time.Time
	Description  string

	Address    Address
	Tenant     Tenant
	Financials Financials
	Property   PropertyInfo
	Financing  Financing
	Images     Images

	OfferingMemorandum string
}
