package quote

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMoney reads a numeric-looking cost value. Anything unparseable counts
// as zero; it never fails.
func ParseMoney(m Money) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(m)), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseQuantity reads a quantity, defaulting to 1 when missing or unparseable.
func ParseQuantity(q Quantity) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(q)), 64)
	if err != nil {
		return 1
	}
	return v
}

// LineTotal is (labor + material) * quantity for one item.
func LineTotal(it LineItem) float64 {
	return (ParseMoney(it.LaborCost) + ParseMoney(it.MaterialCost)) * ParseQuantity(it.Quantity)
}

// QuoteTotal sums the line totals and renders the result with exactly two
// decimal places. The returned string is what gets persisted as the quote
// total; storing the formatted string avoids representation drift when the
// record is redisplayed later.
func QuoteTotal(items []LineItem) string {
	var sum float64
	for _, it := range items {
		sum += LineTotal(it)
	}
	return fmt.Sprintf("%.2f", sum)
}
