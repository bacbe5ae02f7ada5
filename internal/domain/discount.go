package domain

import "github.com/shopspring/decimal"

// discountRates таблица кодов скидок. Перечисление не закрытое:
// неизвестный код — не ошибка, скидка просто не применяется.
var discountRates = map[string]decimal.Decimal{
	"DISCOUNT10": decimal.NewFromFloat(0.10),
	"DISCOUNT20": decimal.NewFromFloat(0.20),
}

// DiscountRate возвращает долю скидки для кода.
// Для пустого либо неизвестного кода возвращает ноль.
func DiscountRate(code string) decimal.Decimal {
	if rate, ok := discountRates[code]; ok {
		return rate
	}
	return decimal.Zero
}
