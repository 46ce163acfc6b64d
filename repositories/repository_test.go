package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	itemRepo, userRepo, err := New("memory")
	require.NoError(t, err)
	assert.IsType(t, &MemoryItemRepository{}, itemRepo)
	assert.IsType(t, &MemoryUserRepository{}, userRepo)

	itemRepo, userRepo, err = New("sql")
	require.NoError(t, err)
	assert.IsType(t, &SQLItemRepository{}, itemRepo)
	assert.IsType(t, &SQLUserRepository{}, userRepo)
}

func TestNew_UnknownMode(t *testing.T) {
	_, _, err := New("redis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown repository mode")
}
