package quote_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fazzer/go_backend/internal/domain/quote"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    quote.CreateParams
		setupMock func(m *quote.MockRepository)
		wantTotal string
		wantErr   bool
		wantValid bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: quote.CreateParams{
				ClientName:  "João Silva",
				ClientPhone: "11999998888",
				Items: []quote.LineItem{
					{Description: "Portão", Quantity: "1", LaborCost: "300", MaterialCost: "50"},
				},
			},
			setupMock: func(m *quote.MockRepository) {
				m.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *quote.Record) error {
						rec.ID = "8b60f4a5-0f0e-4f2e-9a4c-0d6a2e3f1b11"
						rec.CreatedAt = time.Now()
						return nil
					})
			},
			wantTotal: "350.00",
		},
		{
			// No storage call may happen on validation failure.
			name: "EmptyClientName",
			params: quote.CreateParams{
				Items: []quote.LineItem{{Description: "Portão", LaborCost: "300"}},
			},
			wantErr:   true,
			wantValid: true,
		},
		{
			name: "NoItems",
			params: quote.CreateParams{
				ClientName: "João Silva",
			},
			wantErr:   true,
			wantValid: true,
		},
		{
			name: "ItemWithoutDescription",
			params: quote.CreateParams{
				ClientName: "João Silva",
				Items:      []quote.LineItem{{LaborCost: "300"}},
			},
			wantErr:   true,
			wantValid: true,
		},
		{
			name: "ItemWithoutLaborCost",
			params: quote.CreateParams{
				ClientName: "João Silva",
				Items:      []quote.LineItem{{Description: "Portão"}},
			},
			wantErr:   true,
			wantValid: true,
		},
		{
			name: "RepoError",
			params: quote.CreateParams{
				ClientName: "João Silva",
				Items:      []quote.LineItem{{Description: "Portão", LaborCost: "300"}},
			},
			setupMock: func(m *quote.MockRepository) {
				m.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := quote.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := quote.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				if tt.wantValid {
					var vErr *quote.ValidationError
					assert.ErrorAs(t, err, &vErr)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestService_List_Search(t *testing.T) {
	stored := []*quote.Record{
		{ID: "1", ClientName: "João Silva", Items: []quote.LineItem{{Description: "Portão basculante"}}},
		{ID: "2", ClientName: "Maria", ServiceDescription: "Grade de proteção"},
		{ID: "3", ClientName: "Pedro", Items: []quote.LineItem{{Description: "Corrimão"}}},
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "NoFilterKeepsOrder", search: "", wantIDs: []string{"1", "2", "3"}},
		{name: "ByClientName", search: "joão", wantIDs: []string{"1"}},
		{name: "ByItemDescription", search: "portão", wantIDs: []string{"1"}},
		{name: "ByLegacyDescription", search: "grade", wantIDs: []string{"2"}},
		{name: "NoMatch", search: "piscina", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := quote.NewMockRepository(ctrl)
			repo.EXPECT().ListQuotes(gomock.Any()).Return(stored, nil)

			got, err := quote.NewService(repo).List(context.Background(), tt.search)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := quote.NewMockRepository(ctrl)
	repo.EXPECT().DeleteQuote(gomock.Any(), "abc").Return(nil)
	repo.EXPECT().DeleteQuote(gomock.Any(), "missing").Return(quote.ErrNotFound)

	svc := quote.NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), "abc"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), quote.ErrNotFound)
}
