package share

import (
	"context"
	"log"

	"fazzer/go_backend/internal/domain/quote"
	"fazzer/go_backend/internal/domain/quote/pdf"
)

// ShareTitle is the fixed title handed to the host share mechanism.
const ShareTitle = "Orçamento Serralheria Fazzer"

type Channel string

const (
	ChannelNative   Channel = "native"
	ChannelFallback Channel = "fallback"
)

// File is the document as delivered to either channel.
type File struct {
	Name string
	Data []byte
}

// Sharer is the host environment's file-sharing capability. A declined or
// failed share is not an error condition for the caller; it routes to the
// fallback channel.
type Sharer interface {
	CanShareFiles(ctx context.Context) bool
	ShareFile(ctx context.Context, f File, title, text string) error
}

// Delivery reports which channel carried the document. Message and
// WhatsAppURL are set on the fallback channel only.
type Delivery struct {
	Channel     Channel
	File        File
	Message     string
	WhatsAppURL string
}

type Dispatcher struct {
	gen    pdf.Generator
	sharer Sharer
}

func NewDispatcher(gen pdf.Generator, sharer Sharer) *Dispatcher {
	return &Dispatcher{gen: gen, sharer: sharer}
}

// Send builds the document once and attempts delivery: native share first,
// then the download + WhatsApp deep-link fallback. The fallback never runs
// after a share that completed.
func (d *Dispatcher) Send(ctx context.Context, rec quote.Record, logo []byte) (*Delivery, error) {
	n, err := quote.Normalize(rec)
	if err != nil {
		return nil, err
	}

	data, err := d.gen.Generate(n, logo)
	if err != nil {
		return nil, err
	}
	f := File{Name: FileName(rec.ClientName), Data: data}

	if d.sharer != nil && d.sharer.CanShareFiles(ctx) {
		greeting := "Olá " + rec.ClientName + "! Aqui está o seu orçamento da Serralheria Fazzer."
		err := d.sharer.ShareFile(ctx, f, ShareTitle, greeting)
		if err == nil {
			return &Delivery{Channel: ChannelNative, File: f}, nil
		}
		// A failed share is a routing signal, not an error to surface.
		log.Printf("quote share: native share failed, falling back: %v", err)
	}

	msg := ComposeMessage(rec, n)
	return &Delivery{
		Channel:     ChannelFallback,
		File:        f,
		Message:     msg,
		WhatsAppURL: WhatsAppLink(rec.ClientPhone, msg),
	}, nil
}
