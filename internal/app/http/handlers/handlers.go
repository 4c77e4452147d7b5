package handlers

import (
	"fazzer/go_backend/internal/domain/quote"
	"fazzer/go_backend/internal/domain/quote/pdf"
)

type Handlers struct {
	Quotes *quote.Service
	PDF    pdf.Generator

	// Logo is preloaded once at boot and reused for every document.
	Logo []byte
}

func New(quotes *quote.Service, gen pdf.Generator, logo []byte) *Handlers {
	return &Handlers{
		Quotes: quotes,
		PDF:    gen,
		Logo:   logo,
	}
}
