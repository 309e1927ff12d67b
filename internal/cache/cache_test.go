package cache

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissThenHit(t *testing.T) {
	s := NewStore[string]()
	owner := uuid.New()

	_, ok := s.Get(owner)
	require.False(t, ok)

	s.Put(owner, []string{"a", "b"})

	items, ok := s.Get(owner)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestStore_Invalidate(t *testing.T) {
	s := NewStore[int]()
	owner := uuid.New()

	s.Put(owner, []int{1, 2, 3})
	require.Equal(t, uint64(0), s.Version(owner))

	s.Invalidate(owner)

	_, ok := s.Get(owner)
	assert.False(t, ok, "invalidated entry must miss")
	assert.Equal(t, uint64(1), s.Version(owner))

	s.Invalidate(owner)
	assert.Equal(t, uint64(2), s.Version(owner))
}

func TestStore_OwnersAreIndependent(t *testing.T) {
	s := NewStore[int]()
	first := uuid.New()
	second := uuid.New()

	s.Put(first, []int{1})
	s.Put(second, []int{2})
	s.Invalidate(first)

	_, ok := s.Get(first)
	assert.False(t, ok)

	items, ok := s.Get(second)
	require.True(t, ok)
	assert.Equal(t, []int{2}, items)
	assert.Equal(t, uint64(0), s.Version(second))
}

func TestStore_UnknownOwner(t *testing.T) {
	s := NewStore[int]()
	assert.Equal(t, uint64(0), s.Version(uuid.New()))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore[int]()
	owner := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Put(owner, []int{n})
		}(i)
		go func() {
			defer wg.Done()
			s.Get(owner)
			s.Invalidate(owner)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), s.Version(owner))
}
