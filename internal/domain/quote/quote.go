package quote

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// ErrMalformedRecord marks a stored record that carries neither an items
// sequence nor the legacy flat service fields.
var ErrMalformedRecord = errors.New("quote: record has neither items nor legacy fields")

// ErrNotFound is returned by repositories when no quote matches the given id.
var ErrNotFound = errors.New("quote: not found")

// Money is a stored monetary amount. Old records hold it as a JSON number,
// newer ones as a numeric string, so it decodes from both and always encodes
// back as a string.
type Money string

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Money(s)
		return nil
	}
	*m = Money(data)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

// Quantity behaves like Money on the wire: number or string, kept as string.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	return (*Money)(q).UnmarshalJSON(data)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(q))
}

// Display is the quantity as printed on documents and messages.
func (q Quantity) Display() string {
	if q == "" {
		return "1"
	}
	return string(q)
}

// LineItem is a single priced entry within a quote.
type LineItem struct {
	Description  string   `json:"description"`
	Quantity     Quantity `json:"quantity"`
	LaborCost    Money    `json:"laborCost"`
	MaterialCost Money    `json:"materialCost"`
}

// Record is a quote exactly as persisted. Two generations coexist: current
// records carry Items, legacy ones the flat service fields. Total is computed
// once at save time and is authoritative afterwards; it is never recomputed
// from items on read.
type Record struct {
	ID          string     `json:"id"`
	ClientName  string     `json:"clientName"`
	ClientPhone string     `json:"clientPhone"`
	Items       []LineItem `json:"items,omitempty"`

	// Legacy single-item generation, read-only.
	ServiceDescription string   `json:"serviceDescription,omitempty"`
	Quantity           Quantity `json:"quantity,omitempty"`
	LaborCost          Money    `json:"laborCost,omitempty"`
	MaterialCost       Money    `json:"materialCost,omitempty"`

	Total     string    `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsLegacy reports whether the record predates multi-item support.
func (r Record) IsLegacy() bool {
	return len(r.Items) == 0
}

// Normalized is the single internal representation consumed by the document
// generator and the delivery dispatcher, whichever generation it came from.
type Normalized struct {
	ClientName  string
	ClientPhone string
	Items       []LineItem
	Total       string
	Date        string
}

// Normalize reconciles both schema generations without touching the stored
// record. Legacy flat fields become a one-element items sequence.
func Normalize(r Record) (Normalized, error) {
	n := Normalized{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Total:       r.Total,
		Date:        displayDate(r.CreatedAt),
	}

	switch {
	case len(r.Items) > 0:
		n.Items = r.Items
	case r.ServiceDescription != "":
		n.Items = []LineItem{{
			Description:  r.ServiceDescription,
			Quantity:     r.Quantity,
			LaborCost:    r.LaborCost,
			MaterialCost: r.MaterialCost,
		}}
	default:
		return Normalized{}, ErrMalformedRecord
	}

	return n, nil
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format("02/01/2006")
}
