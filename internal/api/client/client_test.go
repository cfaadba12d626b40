package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

func TestListCards(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/cards", r.URL.Path)
		assert.Equal(t, "Available", r.URL.Query().Get("status"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(CardsResponse{
			Cards: []domain.Card{{ID: "c1", Title: "Gengar"}},
			Total: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListCards(context.Background(), &ListCardsParams{
		Status: "Available",
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, "Gengar", resp.Cards[0].Title)
	assert.Equal(t, 1, resp.Total)
}

func TestImportBulk(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/import/bulk", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Gengar|Fossil", body["text"])

		_ = json.NewEncoder(w).Encode(domain.ImportSummary{
			State:    domain.ImportSucceeded,
			Accepted: 1,
		})
	}))
	defer srv.Close()

	summary, err := New(srv.URL).ImportBulk(context.Background(), "Gengar|Fossil")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportSucceeded, summary.State)
	assert.Equal(t, 1, summary.Accepted)
}

func TestImportJSON_PassesDocumentThrough(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"version":1,"items":[{"title":"Gengar"}]}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got domain.Export
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, 1, got.Version)
		require.Len(t, got.Items, 1)

		_ = json.NewEncoder(w).Encode(domain.ImportSummary{State: domain.ImportSucceeded})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ImportJSON(context.Background(), doc)
	require.NoError(t, err)
}

func TestExportEbayCSV(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/export/ebay-csv", r.URL.Path)
		assert.Equal(t, "1.1", r.URL.Query().Get("usd_rate"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Action,Title\nAdd,Gengar\n"))
	}))
	defer srv.Close()

	csv, err := New(srv.URL).ExportEbayCSV(context.Background(), "", 1.1)
	require.NoError(t, err)
	assert.Contains(t, string(csv), "Add,Gengar")
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"a card with this title already exists"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateCard(context.Background(), &domain.Card{Title: "Gengar"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 409")
	assert.Contains(t, err.Error(), "already exists")
}

func TestConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1")
	_, err := c.GetQueueStatus(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}
