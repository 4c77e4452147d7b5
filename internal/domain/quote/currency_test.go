package quote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fazzer/go_backend/internal/domain/quote"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "Float", value: 1234.5, want: "R$ 1234.50"},
		{name: "DecimalString", value: "1234.50", want: "R$ 1234.50"},
		{name: "Int", value: 350, want: "R$ 350.00"},
		{name: "Zero", value: 0.0, want: "R$ 0.00"},
		{name: "UnparseableString", value: "n/a", want: "R$ 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quote.FormatCurrency(tt.value))
		})
	}
}

func TestFormatCurrency_CanonicalAcrossInputKinds(t *testing.T) {
	assert.Equal(t, quote.FormatCurrency(1234.5), quote.FormatCurrency("1234.50"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R$ 10.00", quote.FormatMoney("10"))
	assert.Equal(t, "R$ 0.00", quote.FormatMoney(""))
}
