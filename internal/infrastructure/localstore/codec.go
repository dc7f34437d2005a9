package localstore

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventar/internal/domain"
	"github.com/jhoicas/inventar/internal/domain/entity"
)

// recordJSON formato persistido de un producto; mismos nombres de campo que el blob del navegador.
// Los importes viajan como números JSON (json.Number) para no perder precisión con float64.
type recordJSON struct {
	ID          string      `json:"id"`
	ProductName string      `json:"productName"`
	SKU         json.Number `json:"sku"`
	UnitPrice   json.Number `json:"unitPrice"`
	TotalPrice  json.Number `json:"totalPrice"`
}

// EncodeRecords serializa la lista como arreglo JSON. nil se serializa como "[]".
func EncodeRecords(records []entity.Record) (string, error) {
	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		out = append(out, recordJSON{
			ID:          r.ID,
			ProductName: r.ProductName,
			SKU:         json.Number(r.SKU.String()),
			UnitPrice:   json.Number(r.UnitPrice.String()),
			TotalPrice:  json.Number(r.TotalPrice.String()),
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("serializar productos: %w", err)
	}
	return string(b), nil
}

// DecodeRecords decodifica el blob. Vacío = lista vacía; JSON inválido = ErrMalformedStoreData.
// Importes nulos o ilegibles (NaN guardado como null) se leen como 0.
func DecodeRecords(payload string) ([]entity.Record, error) {
	if strings.TrimSpace(payload) == "" {
		return []entity.Record{}, nil
	}
	var raw []recordJSON
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedStoreData, err)
	}
	out := make([]entity.Record, 0, len(raw))
	for _, r := range raw {
		out = append(out, entity.Record{
			ID:          r.ID,
			ProductName: r.ProductName,
			SKU:         amount(r.SKU),
			UnitPrice:   amount(r.UnitPrice),
			TotalPrice:  amount(r.TotalPrice),
		})
	}
	return out, nil
}

func amount(n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
