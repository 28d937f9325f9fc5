package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrComputeComputesOnceWhileFresh(t *testing.T) {
	c := New()

	computeCalls := 0
	compute := func() (interface{}, error) {
		computeCalls++
		return map[string]int{"total": 42}, nil
	}

	var first map[string]int
	err := c.GetOrCompute("performance:abc123", time.Minute, &first, compute)
	require.NoError(t, err)
	assert.Equal(t, 42, first["total"])

	var second map[string]int
	err = c.GetOrCompute("performance:abc123", time.Minute, &second, compute)
	require.NoError(t, err)
	assert.Equal(t, 42, second["total"])

	assert.Equal(t, 1, computeCalls, "segunda leitura deve ser servida do cache")
}

func TestGetOrComputeRecomputesAfterExpiry(t *testing.T) {
	c := New()

	computeCalls := 0
	compute := func() (interface{}, error) {
		computeCalls++
		return computeCalls, nil
	}

	var value int
	require.NoError(t, c.GetOrCompute("trends:acc1:7d", time.Millisecond, &value, compute))
	assert.Equal(t, 1, value)

	time.Sleep(5 * time.Millisecond)

	require.NoError(t, c.GetOrCompute("trends:acc1:7d", time.Millisecond, &value, compute))
	assert.Equal(t, 2, value, "entrada expirada deve ser recalculada")
}

func TestGetOrComputeDoesNotCacheFailures(t *testing.T) {
	c := New()

	computeErr := errors.New("falha ao consultar o banco")
	calls := 0

	var value int
	err := c.GetOrCompute("platforms:acc1:all", time.Minute, &value, func() (interface{}, error) {
		calls++
		return 0, computeErr
	})
	require.ErrorIs(t, err, computeErr)
	assert.Equal(t, 0, c.Len(), "falha de cálculo não deve deixar entrada no cache")

	err = c.GetOrCompute("platforms:acc1:all", time.Minute, &value, func() (interface{}, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, value)
	assert.Equal(t, 2, calls)
}

func TestInvalidateExactKey(t *testing.T) {
	c := New()

	var v string
	require.NoError(t, c.GetOrCompute("performance:p1", time.Minute, &v, func() (interface{}, error) { return "a", nil }))
	require.NoError(t, c.GetOrCompute("performance:p2", time.Minute, &v, func() (interface{}, error) { return "b", nil }))

	removed := c.Invalidate("performance:p1")
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())
}

func TestInvalidateByPrefix(t *testing.T) {
	c := New()

	var v string
	require.NoError(t, c.GetOrCompute("performance:p1", time.Minute, &v, func() (interface{}, error) { return "a", nil }))
	require.NoError(t, c.GetOrCompute("performance:p2", time.Minute, &v, func() (interface{}, error) { return "b", nil }))
	require.NoError(t, c.GetOrCompute("trends:acc1:7d", time.Minute, &v, func() (interface{}, error) { return "c", nil }))

	removed := c.Invalidate("performance:*")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len(), "apenas a família performance deve ser invalidada")
}

func TestRemoveExpired(t *testing.T) {
	c := New()

	var v string
	require.NoError(t, c.GetOrCompute("dashboard:acc1:30d", time.Millisecond, &v, func() (interface{}, error) { return "a", nil }))
	require.NoError(t, c.GetOrCompute("dashboard:acc2:30d", time.Minute, &v, func() (interface{}, error) { return "b", nil }))

	time.Sleep(5 * time.Millisecond)

	removed := c.RemoveExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())
}
