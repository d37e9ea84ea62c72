package searcher

import (
	"unsafe"

	"connect/bitboard"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// Table memoizes score vectors by canonical board key. It never evicts, so
// it only suits boards small enough to enumerate.
type Table struct {
	entries map[bitboard.Key]Scores
	cols    int
	lookups uint64
	hits    uint64
}

type TableStats struct {
	Entries int
	Lookups uint64
	Hits    uint64
}

func NewTable() *Table {
	return &Table{entries: make(map[bitboard.Key]Scores)}
}

func (t *Table) Get(key bitboard.Key) (Scores, bool) {
	t.lookups++
	s, ok := t.entries[key]
	if ok {
		t.hits++
	}
	return s, ok
}

func (t *Table) Put(key bitboard.Key, s Scores) {
	t.entries[key] = s
	t.cols = len(s)
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Stats() TableStats {
	return TableStats{
		Entries: len(t.entries),
		Lookups: t.lookups,
		Hits:    t.hits,
	}
}

// estimatedBytes approximates the memory held by the entries: the key, the
// slice header and its backing array.
func (t *Table) estimatedBytes() uint64 {
	var key bitboard.Key
	var s Scores
	per := uint64(unsafe.Sizeof(key)) + uint64(unsafe.Sizeof(s)) + uint64(t.cols)*8
	return uint64(len(t.entries)) * per
}

func (t *Table) LogStats() {
	stats := t.Stats()
	total := memory.TotalMemory()
	estimated := t.estimatedBytes()
	event := log.Info()
	if total > 0 && estimated > total/4 {
		event = log.Warn()
	}
	event.Int("entries", stats.Entries).
		Uint64("lookups", stats.Lookups).
		Uint64("hits", stats.Hits).
		Uint64("estimated-bytes", estimated).
		Uint64("total-system-memory-bytes", total).
		Msg("transposition-table")
}
