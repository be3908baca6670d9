package settle

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_KeepsEachOutcome(t *testing.T) {
	var g Group

	ok := Go(&g, func() (int, error) { return 42, nil })
	failed := Go(&g, func() (string, error) { return "partial", errors.New("boom") })
	panicked := Go(&g, func() ([]int, error) { panic("kaboom") })

	g.Wait()

	require.True(t, ok.Ok())
	assert.Equal(t, 42, ok.Or(0))

	assert.False(t, failed.Ok())
	assert.EqualError(t, failed.Err, "boom")
	assert.Equal(t, "default", failed.Or("default"))

	assert.False(t, panicked.Ok())
	assert.Contains(t, panicked.Err.Error(), "kaboom")
	assert.Nil(t, panicked.Value)
	assert.Equal(t, []int{}, panicked.Or([]int{}))
}

func TestGo_DoesNotShortCircuit(t *testing.T) {
	var g Group
	var finished atomic.Int32

	Go(&g, func() (bool, error) { return false, errors.New("fast failure") })
	slow := Go(&g, func() (bool, error) {
		time.Sleep(50 * time.Millisecond)
		finished.Add(1)
		return true, nil
	})

	g.Wait()

	assert.EqualValues(t, 1, finished.Load())
	assert.True(t, slow.Or(false))
}

func TestGo_RunsConcurrently(t *testing.T) {
	var g Group
	delay := 80 * time.Millisecond

	start := time.Now()
	for i := 0; i < 3; i++ {
		Go(&g, func() (struct{}, error) {
			time.Sleep(delay)
			return struct{}{}, nil
		})
	}
	g.Wait()

	assert.Less(t, time.Since(start), 2*delay)
}
