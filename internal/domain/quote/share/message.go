package share

import (
	"net/url"
	"regexp"
	"strings"

	"fazzer/go_backend/internal/domain/quote"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// FileName builds the canonical document name for a client, whitespace runs
// collapsed into single underscores.
func FileName(clientName string) string {
	return "Orcamento_" + whitespaceRuns.ReplaceAllString(strings.TrimSpace(clientName), "_") + ".pdf"
}

// ComposeMessage builds the WhatsApp text for a quote. Items-based records get
// one bullet per line item; legacy records keep the single service line.
func ComposeMessage(rec quote.Record, n quote.Normalized) string {
	var b strings.Builder
	b.WriteString("*Olá " + n.ClientName + "!*\n\n")
	b.WriteString("Aqui está o seu orçamento da *Serralheria Fazzer*:\n\n")

	if rec.IsLegacy() {
		b.WriteString("*Serviço:* " + rec.ServiceDescription + "\n")
	} else {
		for _, it := range n.Items {
			b.WriteString("- " + it.Description + " (" + it.Quantity.Display() + "x)\n")
		}
	}

	b.WriteString("\n*Total:* " + quote.FormatCurrency(n.Total) + "\n\nFico no aguardo!")
	return b.String()
}

// WhatsAppLink is the wa.me deep link for a phone and pre-filled message. The
// phone keeps digits only.
func WhatsAppLink(phone, message string) string {
	return "https://wa.me/" + nonDigits.ReplaceAllString(phone, "") + "?text=" + url.QueryEscape(message)
}
