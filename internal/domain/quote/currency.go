package quote

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencySymbol is the brand's single supported currency.
const CurrencySymbol = "R$"

// FormatCurrency renders an amount as "R$ x.00". It accepts either a float or
// an unformatted decimal string; callers must never pass text that already
// carries a currency symbol.
func FormatCurrency(value any) string {
	switch v := value.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Sprintf("%s 0.00", CurrencySymbol)
		}
		return fmt.Sprintf("%s %.2f", CurrencySymbol, f)
	case float64:
		return fmt.Sprintf("%s %.2f", CurrencySymbol, v)
	case int:
		return fmt.Sprintf("%s %.2f", CurrencySymbol, float64(v))
	default:
		return fmt.Sprintf("%s 0.00", CurrencySymbol)
	}
}

// FormatMoney renders a stored Money value with the currency symbol,
// unparseable values counting as zero.
func FormatMoney(m Money) string {
	return FormatCurrency(ParseMoney(m))
}
