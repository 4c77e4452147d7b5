package pdf

import "fazzer/go_backend/internal/domain/quote"

// Generator renders a normalized quote into printable document bytes. The
// logo is optional; layout does not branch on its absence.
type Generator interface {
	Generate(n quote.Normalized, logo []byte) ([]byte, error)
}
