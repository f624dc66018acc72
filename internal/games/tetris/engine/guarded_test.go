package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardedConcurrentCommands(t *testing.T) {
	g := NewGuarded(New(DefaultConfig(), WithRandomizer(NewBag(11))))
	require.Equal(t, OutcomeApplied, g.Spawn())

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch (w + i) % 4 {
				case 0:
					g.Tick(50 * time.Millisecond)
				case 1:
					g.Move(DirLeft)
				case 2:
					g.Move(DirRight)
				default:
					g.Rotate()
				}
				_ = g.Snapshot()
			}
		}(w)
	}
	wg.Wait()

	snap := g.Snapshot()
	for y := range Height {
		assert.False(t, snap.Grid[y].Full(), "row %d left full", y)
	}
}

func TestGuardedFallInterval(t *testing.T) {
	g := NewGuarded(New(DefaultConfig(), WithRandomizer(NewSequence(PieceO))))
	require.Equal(t, OutcomeApplied, g.Spawn())

	g.SetFallInterval(10 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, g.Snapshot().FallInterval)
	assert.Equal(t, OutcomeApplied, g.Tick(10*time.Millisecond))
	assert.Equal(t, OutcomeApplied, g.Move(DirDown))
	assert.Equal(t, 16, g.Snapshot().Active.Origin.Y)
}
