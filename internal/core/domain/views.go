package domain

import "time"

// DealMetrics — производные показатели для детальной страницы.
// nil означает "метрика неприменима" (нарушено предусловие вычисления);
// presentation-слой показывает в этом случае заглушку.
type DealMetrics struct {
	YearsRemainingOnLease *float64
	RentVsMarketPercent   *float64
	IsBelowMarket         *bool
	PricePerSqFt          *float64
}

// DealDetailsView — полное представление одной сделки для детальной страницы.
type DealDetailsView struct {
	Deal         Deal
	Metrics      DealMetrics
	RelatedDeals []Deal
}

// ChatMessage — одно сообщение в чате воркшопа.
type ChatMessage struct {
	ID        string
	Text      string
	IsUser    bool
	Timestamp time.Time
}

// ChatExchange — пара "сообщение пользователя + ответ-заглушка".
type ChatExchange struct {
	UserMessage ChatMessage
	Reply       ChatMessage
}
