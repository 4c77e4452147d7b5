package share_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fazzer/go_backend/internal/domain/quote"
	"fazzer/go_backend/internal/domain/quote/share"
)

type stubGenerator struct {
	data  []byte
	err   error
	calls int
}

func (g *stubGenerator) Generate(n quote.Normalized, logo []byte) ([]byte, error) {
	g.calls++
	return g.data, g.err
}

type stubSharer struct {
	can      bool
	shareErr error

	shared     bool
	gotFile    share.File
	gotTitle   string
	gotMessage string
}

func (s *stubSharer) CanShareFiles(ctx context.Context) bool { return s.can }

func (s *stubSharer) ShareFile(ctx context.Context, f share.File, title, text string) error {
	s.shared = true
	s.gotFile = f
	s.gotTitle = title
	s.gotMessage = text
	return s.shareErr
}

func itemsRecord() quote.Record {
	return quote.Record{
		ID:          "q1",
		ClientName:  "João Silva",
		ClientPhone: "+55 (11) 99999-8888",
		Items: []quote.LineItem{
			{Description: "Portão", Quantity: "1", LaborCost: "300", MaterialCost: "50"},
			{Description: "Grade", Quantity: "2", LaborCost: "50", MaterialCost: "20"},
		},
		Total: "490.00",
	}
}

func TestDispatcher_NativeShareWins(t *testing.T) {
	gen := &stubGenerator{data: []byte("%PDF-stub")}
	sharer := &stubSharer{can: true}

	d := share.NewDispatcher(gen, sharer)
	got, err := d.Send(context.Background(), itemsRecord(), nil)
	require.NoError(t, err)

	assert.Equal(t, share.ChannelNative, got.Channel)
	assert.True(t, sharer.shared)
	assert.Equal(t, "Orcamento_João_Silva.pdf", got.File.Name)
	assert.Equal(t, share.ShareTitle, sharer.gotTitle)

	// No fallback artifacts after a completed share.
	assert.Empty(t, got.Message)
	assert.Empty(t, got.WhatsAppURL)
}

func TestDispatcher_FallbackWhenShareUnsupported(t *testing.T) {
	gen := &stubGenerator{data: []byte("%PDF-stub")}
	sharer := &stubSharer{can: false}

	d := share.NewDispatcher(gen, sharer)
	got, err := d.Send(context.Background(), itemsRecord(), nil)
	require.NoError(t, err)

	assert.Equal(t, share.ChannelFallback, got.Channel)
	assert.False(t, sharer.shared)
	assert.Equal(t, []byte("%PDF-stub"), got.File.Data)

	// Digits-only phone in the deep link.
	assert.True(t, strings.HasPrefix(got.WhatsAppURL, "https://wa.me/5511999998888?text="), got.WhatsAppURL)

	// The encoded message carries the formatted total.
	u, err := url.Parse(got.WhatsAppURL)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "R$ 490.00")
}

func TestDispatcher_ShareErrorDegradesSilently(t *testing.T) {
	gen := &stubGenerator{data: []byte("%PDF-stub")}
	sharer := &stubSharer{can: true, shareErr: errors.New("user dismissed")}

	d := share.NewDispatcher(gen, sharer)
	got, err := d.Send(context.Background(), itemsRecord(), nil)
	require.NoError(t, err)

	assert.Equal(t, share.ChannelFallback, got.Channel)
	assert.NotEmpty(t, got.WhatsAppURL)
}

func TestDispatcher_GenerationFailureIsSurfaced(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}

	d := share.NewDispatcher(gen, &stubSharer{can: false})
	_, err := d.Send(context.Background(), itemsRecord(), nil)
	assert.Error(t, err)
}

func TestDispatcher_MalformedRecord(t *testing.T) {
	gen := &stubGenerator{data: []byte("x")}

	d := share.NewDispatcher(gen, &stubSharer{})
	_, err := d.Send(context.Background(), quote.Record{ClientName: "Ana"}, nil)
	assert.ErrorIs(t, err, quote.ErrMalformedRecord)
	assert.Zero(t, gen.calls)
}

func TestComposeMessage_ItemsRecord(t *testing.T) {
	rec := itemsRecord()
	n, err := quote.Normalize(rec)
	require.NoError(t, err)

	msg := share.ComposeMessage(rec, n)
	assert.Contains(t, msg, "*Olá João Silva!*")
	assert.Contains(t, msg, "- Portão (1x)")
	assert.Contains(t, msg, "- Grade (2x)")
	assert.Contains(t, msg, "*Total:* R$ 490.00")
	assert.NotContains(t, msg, "*Serviço:*")
}

func TestComposeMessage_LegacyRecord(t *testing.T) {
	rec := quote.Record{
		ClientName:         "Maria",
		ClientPhone:        "11988887777",
		ServiceDescription: "Conserto de portão",
		Quantity:           "1",
		LaborCost:          "150",
		Total:              "150.00",
	}
	n, err := quote.Normalize(rec)
	require.NoError(t, err)

	msg := share.ComposeMessage(rec, n)
	assert.Contains(t, msg, "*Serviço:* Conserto de portão")
	assert.Contains(t, msg, "*Total:* R$ 150.00")
	assert.NotContains(t, msg, "(1x)")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "João Silva", want: "Orcamento_João_Silva.pdf"},
		{in: "  Ana   Paula  ", want: "Orcamento_Ana_Paula.pdf"},
		{in: "Cliente", want: "Orcamento_Cliente.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, share.FileName(tt.in))
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := share.WhatsAppLink("+55 (11) 9 9999-8888", "Olá! Total: R$ 350.00")
	assert.Equal(t, "https://wa.me/5511999998888?text="+url.QueryEscape("Olá! Total: R$ 350.00"), link)
}
