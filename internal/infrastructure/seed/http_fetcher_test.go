package seed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventar/internal/domain"
	"github.com/jhoicas/inventar/internal/infrastructure/seed"
)

const fakeData = `[{"id":"abc","productName":"Widget","sku":4,"unitPrice":2.5,"totalPrice":10}]`

func TestFetchSeed_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(fakeData))
	}))
	defer srv.Close()

	records, err := seed.NewHTTPFetcher(srv.URL).WithClient(srv.Client()).FetchSeed(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Widget", records[0].ProductName)
	assert.Equal(t, "10", records[0].TotalPrice.String())
}

func TestFetchSeed_HTTPNoOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := seed.NewHTTPFetcher(srv.URL).FetchSeed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchSeed_JSONInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := seed.NewHTTPFetcher(srv.URL).FetchSeed(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedStoreData)
}

func TestFetchSeed_ArchivoLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fakeData.json")
	require.NoError(t, os.WriteFile(path, []byte(fakeData), 0o600))

	records, err := seed.NewHTTPFetcher(path).FetchSeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = seed.NewHTTPFetcher(filepath.Join(t.TempDir(), "nope.json")).FetchSeed(context.Background())
	assert.Error(t, err)
}
