package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventar/internal/domain/entity"
)

// MoneyPlaces decimales con los que se redondean y muestran los importes.
const MoneyPlaces = 2

// LineTotal calcula el total de una línea: round(precioUnitario * cantidad, 2).
func LineTotal(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity).Round(MoneyPlaces)
}

// TotalOf suma TotalPrice de todos los registros y redondea a 2 decimales.
// Es la única implementación usada por la tabla y por todos los exports.
func TotalOf(records []entity.Record) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.TotalPrice)
	}
	return sum.Round(MoneyPlaces)
}

// FormatMoney formatea un importe con 2 decimales fijos y sufijo de moneda. Ej: "10.00 RON".
func FormatMoney(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(MoneyPlaces)
	if currency == "" {
		return s
	}
	return s + " " + currency
}
