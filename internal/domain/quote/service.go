package quote

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=quote
type Repository interface {
	CreateQuote(ctx context.Context, rec *Record) error
	GetQuote(ctx context.Context, id string) (*Record, error)
	ListQuotes(ctx context.Context) ([]*Record, error)
	DeleteQuote(ctx context.Context, id string) error
}

// ValidationError reports missing required input before any storage call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quote: invalid %s: %s", e.Field, e.Reason)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ClientName  string
	ClientPhone string
	Items       []LineItem
}

// Validate enforces the save preconditions: a client name and at least one
// item carrying a description and a labor cost.
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.ClientName) == "" {
		return &ValidationError{Field: "clientName", Reason: "required"}
	}
	if len(p.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "at least one item is required"}
	}
	for i, it := range p.Items {
		if strings.TrimSpace(it.Description) == "" {
			return &ValidationError{Field: fmt.Sprintf("items[%d].description", i), Reason: "required"}
		}
		if strings.TrimSpace(string(it.LaborCost)) == "" {
			return &ValidationError{Field: fmt.Sprintf("items[%d].laborCost", i), Reason: "required"}
		}
	}
	return nil
}

// Create validates the draft, computes the total once and persists the record.
// Validation failures never reach the repository.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Record, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rec := &Record{
		ClientName:  strings.TrimSpace(params.ClientName),
		ClientPhone: strings.TrimSpace(params.ClientPhone),
		Items:       params.Items,
		Total:       QuoteTotal(params.Items),
	}
	if err := s.repo.CreateQuote(ctx, rec); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	return rec, nil
}

// List returns quotes newest first, optionally filtered by a case-insensitive
// search over client names and item descriptions.
func (s *Service) List(ctx context.Context, search string) ([]*Record, error) {
	recs, err := s.repo.ListQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return recs, nil
	}

	filtered := make([]*Record, 0, len(recs))
	for _, r := range recs {
		if matchesSearch(r, search) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func matchesSearch(r *Record, term string) bool {
	if strings.Contains(strings.ToLower(r.ClientName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.ServiceDescription), term) {
		return true
	}
	for _, it := range r.Items {
		if strings.Contains(strings.ToLower(it.Description), term) {
			return true
		}
	}
	return false
}

func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	return s.repo.GetQuote(ctx, id)
}

// Delete removes the quote permanently. There is no soft delete or undo.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteQuote(ctx, id)
}
