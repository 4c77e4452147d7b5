package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fazzer/go_backend/internal/domain/quote"
	"fazzer/go_backend/internal/domain/quote/share"
)

type createQuoteRequest struct {
	ClientName  string           `json:"clientName"`
	ClientPhone string           `json:"clientPhone"`
	Items       []quote.LineItem `json:"items"`
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	rec, err := h.Quotes.Create(r.Context(), quote.CreateParams{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Items:       req.Items,
	})
	if err != nil {
		var vErr *quote.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("quotes: create failed: %v", err)
		http.Error(w, "could not save quote", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Quotes.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("quotes: list failed: %v", err)
		http.Error(w, "could not list quotes", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []*quote.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadQuote(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Quotes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			http.Error(w, "quote not found", http.StatusNotFound)
			return
		}
		log.Printf("quotes: delete failed id=%s: %v", id, err)
		http.Error(w, "could not delete quote", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// QuotePDF streams the printable document for a stored quote.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	n, err := quote.Normalize(*rec)
	if err != nil {
		http.Error(w, "quote record is malformed", http.StatusUnprocessableEntity)
		return
	}

	data, err := h.PDF.Generate(n, h.Logo)
	if err != nil {
		log.Printf("quotes: pdf generation failed id=%s: %v", rec.ID, err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", share.FileName(rec.ClientName)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

type sendQuoteRequest struct {
	// CanShareFiles is the client's own share-capability probe. When true the
	// document goes out over the client's native share sheet; otherwise the
	// dispatcher falls back to download plus WhatsApp deep link.
	CanShareFiles bool `json:"canShareFiles"`
}

type sendQuoteResponse struct {
	Channel  share.Channel `json:"channel"`
	FileName string        `json:"fileName"`

	// DownloadURL is set on the fallback channel: the client fetches the same
	// document bytes there for the direct download.
	DownloadURL string `json:"downloadUrl,omitempty"`
	Message     string `json:"message,omitempty"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

func (h *Handlers) SendQuote(w http.ResponseWriter, r *http.Request) {
	var req sendQuoteRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
	}

	rec, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	d := share.NewDispatcher(h.PDF, share.NewClientProbe(req.CanShareFiles))
	delivery, err := d.Send(r.Context(), *rec, h.Logo)
	if err != nil {
		if errors.Is(err, quote.ErrMalformedRecord) {
			http.Error(w, "quote record is malformed", http.StatusUnprocessableEntity)
			return
		}
		log.Printf("quotes: send failed id=%s: %v", rec.ID, err)
		http.Error(w, "could not send quote", http.StatusInternalServerError)
		return
	}

	resp := sendQuoteResponse{
		Channel:     delivery.Channel,
		FileName:    delivery.File.Name,
		Message:     delivery.Message,
		WhatsAppURL: delivery.WhatsAppURL,
	}
	if delivery.Channel == share.ChannelFallback {
		resp.DownloadURL = fmt.Sprintf("/v1/quotes/%s/pdf", rec.ID)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) loadQuote(w http.ResponseWriter, r *http.Request) (*quote.Record, bool) {
	id := chi.URLParam(r, "id")
	rec, err := h.Quotes.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			http.Error(w, "quote not found", http.StatusNotFound)
			return nil, false
		}
		log.Printf("quotes: get failed id=%s: %v", id, err)
		http.Error(w, "could not load quote", http.StatusInternalServerError)
		return nil, false
	}
	return rec, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("quotes: encode response failed: %v", err)
	}
}
