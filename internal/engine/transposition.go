package engine

import (
	"unsafe"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high
	TTUpperBound               // Failed low
)

// TTEntry is one transposition table record. The full 64-bit key is kept so
// that index collisions (two positions mapping to the same slot) can be
// detected rather than silently trusted. Field order packs the struct into
// 16 bytes; entrySize tracks the real size either way.
type TTEntry struct {
	Key      uint64     // Full Zobrist hash for collision detection
	Score    int16      // Score, meaning bounded by Flag
	BestMove board.Move // Best move found at this position
	Depth    int8       // Search depth that produced the score
	Flag     TTFlag     // Type of bound
	Age      uint8      // Generation at time of write
}

const entrySize = uint64(unsafe.Sizeof(TTEntry{}))

// TranspositionTable caches search results keyed by position hash. One search
// owns one table; there is no internal locking.
type TranspositionTable struct {
	entries    []TTEntry
	size       uint64
	mask       uint64
	generation uint8

	hits       uint64
	misses     uint64
	collisions uint64
	stores     uint64
}

// NewTranspositionTable creates a table sized to fit within the given memory
// budget in megabytes. The entry count is rounded down to a power of two so
// indexing is a mask instead of a modulo, and the table never exceeds the
// requested size.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up a position. A hit requires the stored key to match exactly
// and the stored depth to be at least minDepth. A key mismatch on an occupied
// slot counts as a collision; both collisions and shallow entries are misses.
func (tt *TranspositionTable) Probe(hash uint64, minDepth int) (TTEntry, bool) {
	entry := tt.entries[hash&tt.mask]

	if entry.Key == 0 {
		tt.misses++
		return TTEntry{}, false
	}
	if entry.Key != hash {
		tt.collisions++
		tt.misses++
		return TTEntry{}, false
	}
	if int(entry.Depth) < minDepth {
		tt.misses++
		return TTEntry{}, false
	}

	tt.hits++
	return entry, true
}

// Store saves a search result. Empty slots and slots holding the same
// position are always overwritten. A slot holding a different position is
// only replaced when the new result is at least as deep, or when the existing
// entry is stale (its age lags the current generation by more than 2).
func (tt *TranspositionTable) Store(hash uint64, score, depth int, bestMove board.Move, flag TTFlag) {
	entry := &tt.entries[hash&tt.mask]

	if entry.Key != 0 && entry.Key != hash {
		if depth < int(entry.Depth) && tt.generation-entry.Age <= 2 {
			return
		}
	}

	entry.Key = hash
	entry.BestMove = bestMove
	entry.Score = int16(score)
	entry.Depth = int8(depth)
	entry.Flag = flag
	entry.Age = tt.generation
	tt.stores++
}

// NewSearch bumps the generation counter without clearing entries. Results
// from earlier searches remain probeable but become eviction candidates as
// they age.
func (tt *TranspositionTable) NewSearch() {
	tt.generation++
}

// Clear resets all entries and counters.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.generation = 0
	tt.hits = 0
	tt.misses = 0
	tt.collisions = 0
	tt.stores = 0
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() uint64 {
	return tt.size
}

// Hits returns the number of successful probes.
func (tt *TranspositionTable) Hits() uint64 { return tt.hits }

// Misses returns the number of failed probes.
func (tt *TranspositionTable) Misses() uint64 { return tt.misses }

// Collisions returns the number of probes that found a different position
// occupying the slot.
func (tt *TranspositionTable) Collisions() uint64 { return tt.collisions }

// Stores returns the number of entries written.
func (tt *TranspositionTable) Stores() uint64 { return tt.stores }

// HitRate returns the cache hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	probes := tt.hits + tt.misses
	if probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(probes) * 100
}
