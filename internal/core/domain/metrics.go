package domain

import (
	"math"
	"time"
)

// Производные метрики считаются по запросу и никогда не кэшируются
// и не хранятся на самой сделке.

const hoursPerYear = 24 * 365.25

// YearsRemainingOnLease возвращает, сколько лет осталось до истечения аренды.
// Отрицательное значение — аренда уже истекла; это валидный результат,
// а не ошибка.
func YearsRemainingOnLease(d Deal, now time.Time) float64 {
	return d.Tenant.LeaseExpirationDate.Sub(now).Hours() / hoursPerYear
}

// RentVsMarket возвращает отклонение текущей ставки аренды от рыночной
// в процентах. Положительное значение — аренда ниже рынка.
// При нулевой рыночной ставке вычисление не определено: возвращаем
// ErrMarketRentUnknown вместо Inf/NaN.
func RentVsMarket(d Deal) (percent float64, isBelowMarket bool, err error) {
	market := d.Financials.MarketRentPerSqFt
	if market <= 0 {
		return 0, false, ErrMarketRentUnknown
	}
	percent = (market - d.Financials.RentPerSqFt) / market * 100
	isBelowMarket = d.Financials.RentPerSqFt < market
	return percent, isBelowMarket, nil
}

// PricePerSquareFoot возвращает округлённую цену за квадратный фут.
func PricePerSquareFoot(d Deal) (float64, error) {
	if d.Property.Size <= 0 {
		return 0, ErrInvalidPropertySize
	}
	if d.Financials.AskingPrice <= 0 {
		return 0, ErrInvalidAskingPrice
	}
	return math.Round(d.Financials.AskingPrice / d.Property.Size), nil
}
