package inventory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventar/internal/domain/inventory"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func TestNewRecordID_LongitudYAlfabeto(t *testing.T) {
	id, err := inventory.NewRecordID()
	require.NoError(t, err)
	require.Len(t, id, inventory.RecordIDLength)
	for _, c := range id {
		assert.True(t, strings.ContainsRune(alphabet, c), "carácter fuera del alfabeto: %q", c)
	}
}

func TestNewRecordID_SinColisionesEn10000(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id, err := inventory.NewRecordID()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "id repetido: %s", id)
		seen[id] = struct{}{}
	}
}
