// Package seed obtiene el documento JSON de datos semilla que se consulta en el primer arranque.
package seed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/infrastructure/localstore"
)

const (
	defaultTimeout = 10 * time.Second
	maxSeedBytes   = 1 << 20
)

var _ appinventory.SeedFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher descarga la semilla por HTTP(S). Si source no tiene esquema http(s) se lee como ruta local.
type HTTPFetcher struct {
	source     string
	httpClient *http.Client
}

// NewHTTPFetcher crea el fetcher con timeout de red fijo.
func NewHTTPFetcher(source string) *HTTPFetcher {
	return &HTTPFetcher{
		source:     source,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithClient reemplaza el cliente HTTP (tests).
func (f *HTTPFetcher) WithClient(c *http.Client) *HTTPFetcher {
	f.httpClient = c
	return f
}

// FetchSeed descarga y decodifica la semilla con el mismo formato que el blob persistido.
func (f *HTTPFetcher) FetchSeed(ctx context.Context) ([]entity.Record, error) {
	var (
		raw []byte
		err error
	)
	if isRemote(f.source) {
		raw, err = f.fetchRemote(ctx)
	} else {
		raw, err = readLocal(f.source)
	}
	if err != nil {
		return nil, err
	}
	records, err := localstore.DecodeRecords(string(raw))
	if err != nil {
		return nil, fmt.Errorf("seed: decodificar: %w", err)
	}
	return records, nil
}

func (f *HTTPFetcher) fetchRemote(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.source, nil)
	if err != nil {
		return nil, fmt.Errorf("seed: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("seed: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("seed: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSeedBytes))
	if err != nil {
		return nil, fmt.Errorf("seed: leer respuesta: %w", err)
	}
	return body, nil
}

func readLocal(path string) ([]byte, error) {
	b, err := os.ReadFile(strings.TrimPrefix(path, "file://"))
	if err != nil {
		return nil, fmt.Errorf("seed: leer archivo: %w", err)
	}
	return b, nil
}

func isRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
