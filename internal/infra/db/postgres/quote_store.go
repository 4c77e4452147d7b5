package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fazzer/go_backend/internal/domain/quote"
)

// QuoteStore persists quotes in the quotes table:
//
//	id                  uuid primary key default gen_random_uuid()
//	client_name         text not null
//	client_phone        text not null default ''
//	items               jsonb
//	service_description text        -- legacy single-item rows
//	quantity            text
//	labor_cost          text
//	material_cost       text
//	total               text not null
//	created_at          timestamptz not null default now()
//
// New rows always carry items; the legacy columns stay readable for rows
// migrated from the first schema generation.
type QuoteStore struct {
	db *DB
}

func NewQuoteStore(db *DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// CreateQuote inserts the record and fills in the storage-assigned id and
// creation timestamp.
func (s *QuoteStore) CreateQuote(ctx context.Context, rec *quote.Record) error {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	var id uuid.UUID
	row := s.db.Pool.QueryRow(ctx,
		`INSERT INTO quotes (client_name, client_phone, items, total)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rec.ClientName, rec.ClientPhone, items, rec.Total,
	)
	if err := row.Scan(&id, &rec.CreatedAt); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	rec.ID = id.String()
	return nil
}

func (s *QuoteStore) GetQuote(ctx context.Context, id string) (*quote.Record, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, quote.ErrNotFound
	}

	row := s.db.Pool.QueryRow(ctx, selectQuote+` WHERE id = $1`, uid)
	rec, err := scanQuote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, quote.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return rec, nil
}

func (s *QuoteStore) ListQuotes(ctx context.Context) ([]*quote.Record, error) {
	rows, err := s.db.Pool.Query(ctx, selectQuote+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var recs []*quote.Record
	for rows.Next() {
		rec, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return recs, nil
}

func (s *QuoteStore) DeleteQuote(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return quote.ErrNotFound
	}

	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrNotFound
	}
	return nil
}

const selectQuote = `SELECT id, client_name, client_phone, items,
	service_description, quantity, labor_cost, material_cost, total, created_at
	FROM quotes`

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(row scanner) (*quote.Record, error) {
	var (
		rec      quote.Record
		id       uuid.UUID
		items    []byte
		desc     *string
		qty      *string
		labor    *string
		material *string
	)
	if err := row.Scan(
		&id, &rec.ClientName, &rec.ClientPhone, &items,
		&desc, &qty, &labor, &material, &rec.Total, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	rec.ID = id.String()
	if len(items) > 0 {
		if err := json.Unmarshal(items, &rec.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	if desc != nil {
		rec.ServiceDescription = *desc
	}
	if qty != nil {
		rec.Quantity = quote.Quantity(*qty)
	}
	if labor != nil {
		rec.LaborCost = quote.Money(*labor)
	}
	if material != nil {
		rec.MaterialCost = quote.Money(*material)
	}
	return &rec, nil
}
