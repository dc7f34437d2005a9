// import_legacy carga en el almacén configurado un volcado JSON del inventario guardado
// por la versión de navegador (valor de la llave inventoryTable).
//
// Uso: go run ./cmd/import_legacy [-charset iso-8859-1] [-append] [-dry-run] [ruta/inventoryTable.json]
// Por defecto busca inventoryTable.json en el directorio actual.
// Sin -append reemplaza la lista completa; con -append cada producto se agrega o reemplaza por ID.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
	"github.com/jhoicas/inventar/internal/infrastructure/localstore"
	"github.com/jhoicas/inventar/internal/infrastructure/storage"
	"github.com/jhoicas/inventar/pkg/config"
	"github.com/jhoicas/inventar/pkg/logger"
)

func main() {
	charset := flag.String("charset", "utf-8", "codificación del archivo (utf-8, iso-8859-1, iso-8859-2, windows-1250)")
	appendMode := flag.Bool("append", false, "agregar/reemplazar por ID en lugar de reemplazar la lista")
	dryRun := flag.Bool("dry-run", false, "solo mostrar lo que se importaría")
	flag.Parse()

	path := "inventoryTable.json"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir JSON: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := readLegacy(f, *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer inventario: %v\n", err)
		os.Exit(1)
	}
	records, err = normalize(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Normalizar inventario: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		for _, r := range records {
			fmt.Printf("%s\t%s\t%s x %s = %s\n", r.ID, r.ProductName, r.SKU, r.UnitPrice.StringFixed(2), r.TotalPrice.StringFixed(2))
		}
		fmt.Printf("TOTAL\t%s %s (%d productos)\n", inventory.TotalOf(records).StringFixed(2), cfg.App.Currency, len(records))
		return
	}

	ctx := context.Background()
	kv, closer, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("conexión al almacén")
	}
	defer closer.Close()

	store := localstore.NewRecordStore(kv, cfg.Store.RecordsKey, log.Component("localstore"))
	if !*appendMode {
		if err := store.Save(ctx, records); err != nil {
			log.Fatal().Err(err).Msg("guardar inventario")
		}
		log.Info().Int("records", len(records)).Str("key", cfg.Store.RecordsKey).Msg("inventario reemplazado")
		return
	}

	repo := appinventory.NewRecordRepository(store)
	var inserted, updated int
	for _, r := range records {
		_, outcome, err := repo.Upsert(ctx, r)
		if err != nil {
			log.Fatal().Err(err).Str("id", r.ID).Msg("guardar producto")
		}
		if outcome == appinventory.OutcomeInserted {
			inserted++
		} else {
			updated++
		}
	}
	log.Info().Int("inserted", inserted).Int("updated", updated).Msg("inventario importado")
}

// readLegacy decodifica el volcado, convirtiendo a UTF-8 si el archivo viene en otra codificación.
func readLegacy(r io.Reader, charset string) ([]entity.Record, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
	case "iso-8859-1", "iso8859-1", "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "iso-8859-2", "iso8859-2", "latin2":
		r = transform.NewReader(r, charmap.ISO8859_2.NewDecoder())
	case "windows-1250", "cp1250":
		r = transform.NewReader(r, charmap.Windows1250.NewDecoder())
	default:
		return nil, fmt.Errorf("codificación no soportada %q", charset)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return localstore.DecodeRecords(string(raw))
}

// normalize genera IDs faltantes y recalcula los totales (los volcados viejos pueden traer NaN → 0).
func normalize(records []entity.Record) ([]entity.Record, error) {
	out := make([]entity.Record, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" || seen[r.ID] {
			id, err := inventory.NewRecordID()
			if err != nil {
				return nil, err
			}
			r.ID = id
		}
		seen[r.ID] = true
		r.TotalPrice = inventory.LineTotal(r.UnitPrice, r.SKU)
		out = append(out, r)
	}
	return out, nil
}
