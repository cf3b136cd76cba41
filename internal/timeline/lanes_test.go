package timeline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignLanesOverlappingPair(t *testing.T) {
	lanes := AssignLanes([]Span{{ID: 0, X1: 20, X2: 30}, {ID: 1, X1: 25, X2: 35}})
	assert.Equal(t, map[int]int{0: 0, 1: 1}, lanes)
}

func TestAssignLanesTouchingEndpointsOverlap(t *testing.T) {
	lanes := AssignLanes([]Span{{ID: 0, X1: 0, X2: 10}, {ID: 1, X1: 10, X2: 20}, {ID: 2, X1: 21, X2: 30}})
	assert.Equal(t, 0, lanes[0])
	assert.Equal(t, 1, lanes[1])
	assert.Equal(t, 0, lanes[2])
}

func TestAssignLanesInvertedSpan(t *testing.T) {
	lanes := AssignLanes([]Span{{ID: 7, X1: 50, X2: 10}, {ID: 8, X1: 20, X2: 30}})
	assert.Equal(t, 0, lanes[7])
	assert.Equal(t, 1, lanes[8])
}

func TestAssignLanesFirstFitByOrder(t *testing.T) {
	// order matters: a global optimizer could use two lanes here
	lanes := AssignLanes([]Span{
		{ID: 0, X1: 0, X2: 10},
		{ID: 1, X1: 20, X2: 30},
		{ID: 2, X1: 5, X2: 25},
		{ID: 3, X1: 12, X2: 18},
	})
	assert.Equal(t, map[int]int{0: 0, 1: 0, 2: 1, 3: 0}, lanes)
}

func overlap(a, b Span) bool {
	a1, a2 := a.bounds()
	b1, b2 := b.bounds()
	return !(a2 < b1 || a1 > b2)
}

func TestAssignLanesProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(25)
		spans := make([]Span, n)
		for i := range spans {
			spans[i] = Span{ID: i, X1: rng.Float64() * 1000, X2: rng.Float64() * 1000}
		}
		lanes := AssignLanes(spans)
		require.Len(t, lanes, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if lanes[i] == lanes[j] {
					assert.False(t, overlap(spans[i], spans[j]), "spans %d and %d share lane %d", i, j, lanes[i])
				}
			}
			// first fit: every lower lane was blocked by an earlier span
			for lower := 0; lower < lanes[i]; lower++ {
				blocked := false
				for j := 0; j < i; j++ {
					if lanes[j] == lower && overlap(spans[i], spans[j]) {
						blocked = true
						break
					}
				}
				assert.True(t, blocked, "span %d skipped free lane %d", i, lower)
			}
		}
	}
}

func TestAssignLanesByKindIndependent(t *testing.T) {
	kinds := map[int]Kind{0: Bio, 1: Soc, 2: Bio, 3: Soc}
	lanes := AssignLanesByKind([]Span{
		{ID: 0, X1: 0, X2: 100},
		{ID: 1, X1: 0, X2: 100},
		{ID: 2, X1: 50, X2: 60},
		{ID: 3, X1: 200, X2: 300},
	}, func(id int) Kind { return kinds[id] })
	assert.Equal(t, map[int]int{0: 0, 1: 0, 2: 1, 3: 0}, lanes)
}
