package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
)

func TestFilter_NombreSinDistinguirMayusculas(t *testing.T) {
	records := []entity.Record{
		{ID: "a", ProductName: "Widget", TotalPrice: dec("10")},
		{ID: "b", ProductName: "Gadget", TotalPrice: dec("3.5")},
	}

	got := inventory.Filter(records, "widget")
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	assert.Len(t, inventory.Filter(records, "WIDGET"), 1)
}

func TestFilter_PorTotalEnTexto(t *testing.T) {
	records := []entity.Record{
		{ID: "a", ProductName: "Widget", TotalPrice: dec("10")},
		{ID: "b", ProductName: "Gadget", TotalPrice: dec("3.5")},
	}

	got := inventory.Filter(records, "3.5")
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	// "10.00" no coincide: el texto del total es "10".
	assert.Empty(t, inventory.Filter(records, "10.00"))
}

func TestFilter_QueryVaciaDevuelveTodoEnOrden(t *testing.T) {
	records := []entity.Record{{ID: "x"}, {ID: "y"}}
	assert.Equal(t, records, inventory.Filter(records, ""))
}
