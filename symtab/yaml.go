package symtab

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/wfst/fst"
	"gopkg.in/yaml.v3"
)

func encodePair(l fst.Label, sym string) string {
	return strconv.FormatInt(int64(l), 10) + "\t" + sym + "\n"
}

// symPair is the YAML-visible shape of one (label, symbol) binding.
type symPair struct {
	Label  int64  `yaml:"label"`
	Symbol string `yaml:"symbol"`
}

type symTableDoc struct {
	Name    string    `yaml:"name"`
	Symbols []symPair `yaml:"symbols"`
}

// DumpYAML serialises st to a human-readable text form, using
// `gopkg.in/yaml.v3` the way `bureau-foundation-bureau` uses it for its
// own config trees.
func (st *SymbolTable) DumpYAML() ([]byte, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	labels := make([]fst.Label, 0, len(st.labelToStr))
	for l := range st.labelToStr {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	doc := symTableDoc{Name: st.name, Symbols: make([]symPair, len(labels))}
	for i, l := range labels {
		doc.Symbols[i] = symPair{Label: int64(l), Symbol: st.labelToStr[l]}
	}
	return yaml.Marshal(doc)
}

// LoadYAML parses the form DumpYAML produces into a fresh table.
func LoadYAML(data []byte) (*SymbolTable, error) {
	var doc symTableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	st := &SymbolTable{
		name:       doc.Name,
		strToLabel: make(map[string]fst.Label, len(doc.Symbols)),
		labelToStr: make(map[fst.Label]string, len(doc.Symbols)),
		dirty:      true,
	}
	for _, p := range doc.Symbols {
		l := fst.Label(p.Label)
		st.strToLabel[p.Symbol] = l
		st.labelToStr[l] = p.Symbol
		if l >= st.next {
			st.next = l + 1
		}
	}
	if _, ok := st.strToLabel[epsilonSymbol]; !ok {
		st.strToLabel[epsilonSymbol] = fst.Epsilon
		st.labelToStr[fst.Epsilon] = epsilonSymbol
	}
	return st, nil
}
