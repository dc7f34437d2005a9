package entity

import "github.com/shopspring/decimal"

// Record representa una línea del inventario (un producto de la lista).
// TotalPrice se calcula al crear/editar (UnitPrice * SKU redondeado a 2 decimales) y se guarda tal cual;
// no se recalcula al leer.
type Record struct {
	ID          string
	ProductName string
	SKU         decimal.Decimal // cantidad de unidades, pese al nombre heredado
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
