package dto

import "github.com/shopspring/decimal"

// RecordResponse producto tal como se persiste (mismos nombres de campo que el blob JSON).
type RecordResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	SKU         decimal.Decimal `json:"sku"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// UpsertRecordRequest alta o edición directa por API. Los importes llegan como texto con el mismo
// formato que admite el formulario (unitPrice hasta 2 decimales, sku solo dígitos); otro formato es 400.
// totalPrice siempre se recalcula.
type UpsertRecordRequest struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	SKU         string `json:"sku"`
}

// UpsertRecordResponse resultado de un upsert.
type UpsertRecordResponse struct {
	Outcome string         `json:"outcome"` // inserted | updated
	Record  RecordResponse `json:"record"`
}

// TableRowResponse fila visible de la tabla.
type TableRowResponse struct {
	ProductName string         `json:"productName"`
	TotalPrice  string         `json:"totalPrice"` // "10.00 RON"
	Record      RecordResponse `json:"record"`     // payload para abrir la edición
}

// TableTotalResponse fila TOTAL.
type TableTotalResponse struct {
	Label      string          `json:"label"`
	TotalPrice string          `json:"totalPrice"`
	Amount     decimal.Decimal `json:"amount"`
}

// TableResponse tabla completa o filtrada.
type TableResponse struct {
	Query string              `json:"query,omitempty"`
	Rows  []TableRowResponse  `json:"rows"`
	Total *TableTotalResponse `json:"total,omitempty"`
	Empty bool                `json:"empty"`
}
