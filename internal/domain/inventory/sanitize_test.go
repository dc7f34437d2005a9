package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventar/internal/domain"
	"github.com/jhoicas/inventar/internal/domain/inventory"
)

func TestSanitizePrice(t *testing.T) {
	cases := map[string]string{
		"12.34":     "12.34",
		"12.345":    "12.34",
		"1..5":      "1.5",
		"1.2.3":     "1.2",
		"a1b2,5":    "125",
		"$ 3.999":   "3.99",
		".5":        ".5",
		"7.":        "7.",
		"":          "",
		"١٢":        "",
		"10...0001": "10.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, inventory.SanitizePrice(in), "entrada %q", in)
	}
}

func TestSanitizeQuantity(t *testing.T) {
	assert.Equal(t, "42", inventory.SanitizeQuantity("4x2"))
	assert.Equal(t, "10", inventory.SanitizeQuantity("1.0"))
	assert.Equal(t, "", inventory.SanitizeQuantity("-abc"))
}

func TestParseAmount(t *testing.T) {
	d, err := inventory.ParseAmount("7.")
	require.NoError(t, err)
	assert.Equal(t, "7", d.String())

	d, err = inventory.ParseAmount(".5")
	require.NoError(t, err)
	assert.Equal(t, "0.5", d.String())

	for _, bad := range []string{"", ".", "  ", "-3", "abc"} {
		_, err := inventory.ParseAmount(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", bad)
	}
}

func TestBuildRecord_CalculaTotal(t *testing.T) {
	rec, err := inventory.BuildRecord("", "Widget", "2.5", "4")
	require.NoError(t, err)
	assert.Empty(t, rec.ID)
	assert.Equal(t, "10.00", rec.TotalPrice.StringFixed(2))

	rec, err = inventory.BuildRecord("abc", "Cuie", "0.333", "3")
	require.NoError(t, err)
	assert.Equal(t, "abc", rec.ID)
	assert.Equal(t, "0.333", rec.UnitPrice.String())
	assert.Equal(t, "1", rec.TotalPrice.String())
}

func TestBuildRecord_ConservaCantidadFraccionaria(t *testing.T) {
	rec, err := inventory.BuildRecord("", "Cable", "4", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "2.5", rec.SKU.String())
	assert.Equal(t, "10", rec.TotalPrice.String())

	_, err = inventory.BuildRecord("", "Cable", "1,5", "2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckTypedAmounts(t *testing.T) {
	assert.NoError(t, inventory.CheckTypedAmounts("12.34", "3"))
	assert.NoError(t, inventory.CheckTypedAmounts("", ""))
	for _, tc := range []struct{ price, qty string }{
		{"1,5", "2"},
		{"1.234", "2"},
		{"1..5", "2"},
		{"4", "2.5"},
		{"4", " 2"},
	} {
		assert.ErrorIs(t, inventory.CheckTypedAmounts(tc.price, tc.qty), domain.ErrInvalidInput, "%+v", tc)
	}
}

func TestBuildRecord_CamposInvalidos(t *testing.T) {
	for _, tc := range []struct{ name, price, qty string }{
		{"", "1", "1"},
		{"   ", "1", "1"},
		{"A", "", "1"},
		{"A", "1", "abc"},
		{"A", ".", "1"},
	} {
		_, err := inventory.BuildRecord("", tc.name, tc.price, tc.qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", tc)
	}
}
