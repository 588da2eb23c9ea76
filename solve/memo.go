package solve

import (
	"encoding/binary"
	"hash/fnv"
)

// memoTable records search states proven infeasible so equivalent states
// are never re-expanded. A state is keyed by its slot index plus the
// assignment prefix over the ordered slots; the remaining stock is a pure
// function of that prefix, so it needs no separate encoding. Keys are
// FNV-1a digests of the exact encoding, accepting the transposition-table
// collision odds in exchange for flat memory.
type memoTable struct {
	seen   map[uint64]struct{}
	hits   int64
	stores int64
}

func newMemoTable() *memoTable {
	return &memoTable{seen: make(map[uint64]struct{})}
}

// key digests (slot index, assignment prefix).
func (m *memoTable) key(idx int, assign []uint8) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(idx))
	_, _ = h.Write(buf[:])
	_, _ = h.Write(assign[:idx])
	return h.Sum64()
}

// pruned reports whether the state was already proven infeasible.
func (m *memoTable) pruned(idx int, assign []uint8) bool {
	if _, ok := m.seen[m.key(idx, assign)]; ok {
		m.hits++
		return true
	}
	return false
}

// store marks the state infeasible. Callers must only store fully
// explored subtrees; a deadline abort proves nothing.
func (m *memoTable) store(idx int, assign []uint8) {
	m.seen[m.key(idx, assign)] = struct{}{}
	m.stores++
}
