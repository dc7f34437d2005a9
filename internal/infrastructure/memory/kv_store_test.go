package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventar/internal/infrastructure/memory"
)

func TestKVStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()

	_, found, err := s.Get(ctx, "inventoryTable")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "inventoryTable", "[]"))
	require.NoError(t, s.Set(ctx, "inventoryTable", `[{"id":"x"}]`))

	v, found, err := s.Get(ctx, "inventoryTable")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"x"}]`, v, "Set sobrescribe sin mezclar")
}

func TestKVStore_ValorVacioExiste(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()
	require.NoError(t, s.Set(ctx, "k", ""))

	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, v)
}
