package inventory

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventar/internal/domain"
	"github.com/jhoicas/inventar/internal/domain/entity"
)

var repeatedDots = regexp.MustCompile(`\.\.+`)

// SanitizePrice limpia el campo de precio en cada pulsación: solo dígitos y '.', colapsa puntos
// consecutivos y deja como máximo 2 decimales. "1..5" → "1.5", "12.345" → "12.34", "1.2.3" → "1.2".
func SanitizePrice(raw string) string {
	s := keepOnly(raw, func(r rune) bool { return isASCIIDigit(r) || r == '.' })
	s = repeatedDots.ReplaceAllString(s, ".")

	parts := strings.Split(s, ".")
	if len(parts) > 1 {
		frac := parts[1]
		if len(frac) > MoneyPlaces {
			frac = frac[:MoneyPlaces]
		}
		s = parts[0] + "." + frac
	}
	return s
}

// SanitizeQuantity deja solo dígitos en el campo de cantidad.
func SanitizeQuantity(raw string) string {
	return keepOnly(raw, isASCIIDigit)
}

// ParseAmount convierte un campo ya saneado a decimal. Vacío o "." es ErrInvalidInput.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if s == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if d.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return d, nil
}

func keepOnly(s string, keep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// BuildRecord arma un producto con los valores actuales del formulario y calcula TotalPrice.
// Los importes se parsean tal cual: ya vienen saneados por pulsación o cargados del almacén.
// id vacío queda para que el repositorio lo genere.
func BuildRecord(id, productName, unitPrice, quantity string) (entity.Record, error) {
	if strings.TrimSpace(productName) == "" {
		return entity.Record{}, fmt.Errorf("nombre de producto vacío: %w", domain.ErrInvalidInput)
	}
	price, err := ParseAmount(unitPrice)
	if err != nil {
		return entity.Record{}, fmt.Errorf("precio unitario: %w", err)
	}
	qty, err := ParseAmount(quantity)
	if err != nil {
		return entity.Record{}, fmt.Errorf("cantidad: %w", err)
	}
	return entity.Record{
		ID:          id,
		ProductName: productName,
		SKU:         qty,
		UnitPrice:   price,
		TotalPrice:  LineTotal(price, qty),
	}, nil
}

// CheckTypedAmounts rechaza importes que el saneado por pulsación modificaría
// (coma decimal, más de 2 decimales en el precio, cantidad no entera).
func CheckTypedAmounts(unitPrice, quantity string) error {
	if SanitizePrice(unitPrice) != unitPrice {
		return fmt.Errorf("precio unitario %q: %w", unitPrice, domain.ErrInvalidInput)
	}
	if SanitizeQuantity(quantity) != quantity {
		return fmt.Errorf("cantidad %q: %w", quantity, domain.ErrInvalidInput)
	}
	return nil
}
