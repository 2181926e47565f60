package gc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberlang/gc/heap"
	"github.com/emberlang/gc/rval"
)

// TestScenarioAllocThenDrop is end-to-end scenario 1: allocate PAGE_SIZE+1
// objects under a single save/restore bracket, then collect. Nothing roots
// them, so every slot dies; the initial page survives because it entered
// sweep full and every one of its slots was freed in this pass, while the
// second page (one occupied slot) is released.
func TestScenarioAllocThenDrop(t *testing.T) {
	rt := New(WithPageSize(heap.DefaultPageSize), WithArenaSize(heap.DefaultPageSize+8))
	defer rt.FreeHeap()

	idx := rt.Arena.Save()
	for i := 0; i < heap.DefaultPageSize+1; i++ {
		_, err := rt.ObjAlloc(rval.KindString, nil)
		require.NoError(t, err)
	}
	rt.Arena.Restore(idx)

	rt.Collect()

	require.Equal(t, 0, rt.Heap.Live())
	require.GreaterOrEqual(t, rt.Heap.PageCount(), 1)
}

// TestScenarioCycleProtectedSurvives is scenario 2: two arrays referencing
// each other, only one directly protected. Both must survive because the
// protected one reaches the other.
func TestScenarioCycleProtectedSurvives(t *testing.T) {
	rt := New(WithPageSize(8))
	defer rt.FreeHeap()

	idx := rt.Arena.Save()
	a, err := rt.ObjAlloc(rval.KindArray, nil)
	require.NoError(t, err)
	b, err := rt.ObjAlloc(rval.KindArray, nil)
	require.NoError(t, err)
	rt.Arena.Restore(idx) // drop the automatic protection from ObjAlloc

	a.Payload = &rval.Array{Elems: []*rval.Slot{b}}
	b.Payload = &rval.Array{Elems: []*rval.Slot{a}}

	require.NoError(t, rt.Arena.Protect(a)) // protect only a; b is reachable through it

	rt.Collect()

	require.Equal(t, 2, rt.Heap.Live())
	require.False(t, a.IsDead())
	require.False(t, b.IsDead())
}

// TestScenarioUnreferencedCycleDies is scenario 3: the same cycle as above,
// but with the arena restored before collecting. Nothing roots either
// array, so the cycle as a whole must be finalized.
func TestScenarioUnreferencedCycleDies(t *testing.T) {
	rt := New(WithPageSize(8))
	defer rt.FreeHeap()

	idx := rt.Arena.Save()
	a, err := rt.ObjAlloc(rval.KindArray, nil)
	require.NoError(t, err)
	b, err := rt.ObjAlloc(rval.KindArray, nil)
	require.NoError(t, err)
	a.Payload = &rval.Array{Elems: []*rval.Slot{b}}
	b.Payload = &rval.Array{Elems: []*rval.Slot{a}}
	rt.Arena.Restore(idx)

	rt.Collect()

	require.Equal(t, 0, rt.Heap.Live())
}

// TestScenarioStringFinalization is scenario 4: 100 owned strings, each
// finalized by the collection, observed through each string's buffer being
// released.
func TestScenarioStringFinalization(t *testing.T) {
	rt := New(WithPageSize(16))
	defer rt.FreeHeap()

	strings := make([]*rval.String, 0, 100)

	idx := rt.Arena.Save()
	for i := 0; i < 100; i++ {
		s, err := rt.ObjAlloc(rval.KindString, nil)
		require.NoError(t, err)
		str := &rval.String{Buf: []byte("owned")}
		s.Payload = str
		strings = append(strings, str)
	}
	rt.Arena.Restore(idx)

	rt.Collect()

	require.Equal(t, 0, rt.Heap.Live())
	for _, str := range strings {
		require.Nil(t, str.Buf, "each string's buffer should be freed by finalize")
	}
}

// TestScenarioOOMRetry is scenario 5: an allocator that fails on odd calls
// and succeeds on even ones. The first failure forces exactly one
// collection, after which the retry succeeds and out_of_memory clears.
func TestScenarioOOMRetry(t *testing.T) {
	calls := 0
	rt := New(WithAllocator(func(buf []byte, newSize int) []byte {
		calls++
		if newSize == 0 {
			return nil
		}
		if calls%2 == 1 {
			return nil
		}
		return make([]byte, newSize)
	}))
	defer rt.FreeHeap()

	collectionsBefore := rt.Stats().Collections
	buf, err := rt.Alloc(16)
	require.NoError(t, err)
	require.Len(t, buf, 16)
	require.False(t, rt.OutOfMemory)
	require.Equal(t, collectionsBefore+1, rt.Stats().Collections)
}

// TestScenarioDisabledGC is scenario 6: with the collector disabled, an
// allocation past a full page must grow the heap rather than collect.
func TestScenarioDisabledGC(t *testing.T) {
	const pageSize = 4
	rt := New(WithPageSize(pageSize), WithArenaSize(pageSize+8))
	defer rt.FreeHeap()

	rt.Disable()

	for i := 0; i < pageSize; i++ {
		_, err := rt.ObjAlloc(rval.KindString, nil)
		require.NoError(t, err)
	}
	_, err := rt.ObjAlloc(rval.KindString, nil)
	require.NoError(t, err)

	require.Equal(t, 2, rt.Heap.PageCount())
	require.Equal(t, pageSize+1, rt.Heap.Live())
}
