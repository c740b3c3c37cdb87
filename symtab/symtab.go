package symtab

import (
	"sort"
	"sync"

	"github.com/katalvlaran/wfst/fst"
	"github.com/zeebo/blake3"
)

// epsilonSymbol is always bound to fst.Epsilon in a freshly constructed
// table, mirroring the convention every OpenFST symbol table follows.
const epsilonSymbol = "<eps>"

// SymbolTable is a bidirectional string↔Label map with a
// labelled-clone operation and a checksum-based compatibility check,
// guarded by the same RWMutex-guarded-mutation discipline used
// elsewhere in this repository for shared mutable stores.
//
// The zero value is not usable; construct with New.
type SymbolTable struct {
	mu         sync.RWMutex
	name       string
	strToLabel map[string]fst.Label
	labelToStr map[fst.Label]string
	next       fst.Label
	checksum   [32]byte
	dirty      bool
}

// New returns a table with only "<eps>" bound, to fst.Epsilon.
func New(name string) *SymbolTable {
	st := &SymbolTable{
		name:       name,
		strToLabel: map[string]fst.Label{epsilonSymbol: fst.Epsilon},
		labelToStr: map[fst.Label]string{fst.Epsilon: epsilonSymbol},
		next:       fst.Epsilon + 1,
		dirty:      true,
	}
	return st
}

// Name returns the table's name, purely descriptive.
func (st *SymbolTable) Name() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.name
}

// AddSymbol returns sym's label, assigning the next unused label if
// sym has not been added before.
func (st *SymbolTable) AddSymbol(sym string) fst.Label {
	st.mu.Lock()
	defer st.mu.Unlock()
	if l, ok := st.strToLabel[sym]; ok {
		return l
	}
	l := st.next
	st.next++
	st.strToLabel[sym] = l
	st.labelToStr[l] = sym
	st.dirty = true
	return l
}

// Find returns the symbol bound to l, if any.
func (st *SymbolTable) Find(l fst.Label) (string, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.labelToStr[l]
	return s, ok
}

// FindLabel returns the label bound to sym, if any.
func (st *SymbolTable) FindLabel(sym string) (fst.Label, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	l, ok := st.strToLabel[sym]
	return l, ok
}

// NumSymbols returns the number of bound symbols, including "<eps>".
func (st *SymbolTable) NumSymbols() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.strToLabel)
}

// Checksum returns a content hash over every (label, symbol) pair,
// computed over a canonical label-sorted encoding so that two tables
// built by adding the same symbols in different orders still compare
// equal. Recomputed lazily — only after a mutation since the last
// call.
func (st *SymbolTable) Checksum() [32]byte {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.dirty {
		return st.checksum
	}
	labels := make([]fst.Label, 0, len(st.labelToStr))
	for l := range st.labelToStr {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	h := blake3.New()
	for _, l := range labels {
		h.Write([]byte(encodePair(l, st.labelToStr[l])))
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	st.checksum = sum
	st.dirty = false
	return sum
}

// Compatible reports whether st and other may be used together in a
// single operation: same checksum, or either side nil.
func Compatible(a, b *SymbolTable) bool {
	if a == nil || b == nil {
		return true
	}
	return a.Checksum() == b.Checksum()
}

// Clone returns an independent deep copy sharing no storage with st;
// since its content is identical, it also shares st's checksum.
func (st *SymbolTable) Clone() *SymbolTable {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := &SymbolTable{
		name:       st.name,
		strToLabel: make(map[string]fst.Label, len(st.strToLabel)),
		labelToStr: make(map[fst.Label]string, len(st.labelToStr)),
		next:       st.next,
		dirty:      true,
	}
	for k, v := range st.strToLabel {
		out.strToLabel[k] = v
	}
	for k, v := range st.labelToStr {
		out.labelToStr[k] = v
	}
	return out
}
