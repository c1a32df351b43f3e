package arena_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/fwojciec/distill/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestArena_PutAndRemove(t *testing.T) {
	t.Parallel()

	a := arena.New[[]byte]()
	a.Put("id-1", []byte("payload"))

	v, ok := a.Remove("id-1")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), v)
	assert.Zero(t, a.Len())
}

func TestArena_RemoveUnknownID(t *testing.T) {
	t.Parallel()

	a := arena.New[[]byte]()

	_, ok := a.Remove("never-registered")
	assert.False(t, ok)
}

func TestArena_SecondRemoveIsNoOp(t *testing.T) {
	t.Parallel()

	a := arena.New[[]byte]()

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = fmt.Sprintf("id-%d", i)
		a.Put(ids[i], []byte{byte(i)})
	}

	// Release in random order, then release everything again: every
	// second release must report the id as gone.
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	for _, id := range ids {
		_, ok := a.Remove(id)
		require.True(t, ok)
	}
	for _, id := range ids {
		_, ok := a.Remove(id)
		assert.False(t, ok)
	}
	assert.Zero(t, a.Len())
}

func TestArena_PutReplacesExistingID(t *testing.T) {
	t.Parallel()

	a := arena.New[[]byte]()
	a.Put("id", []byte("old"))
	a.Put("id", []byte("new"))

	v, ok := a.Remove("id")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), v)
}

func TestArena_ConcurrentPutRemove(t *testing.T) {
	t.Parallel()

	const goroutines = 8
	const cycles = 200

	a := arena.New[[]byte]()

	var g errgroup.Group
	for i := range goroutines {
		g.Go(func() error {
			for j := range cycles {
				id := fmt.Sprintf("g%d-c%d", i, j)
				a.Put(id, []byte(id))
				if _, ok := a.Remove(id); !ok {
					return fmt.Errorf("lost entry %s", id)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Zero(t, a.Len())
}
