package bf

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Dimacs writes the DIMACS CNF representation of clauses to w, so that
// the same clause set this library derived can be handed to an external
// SAT tool. Each atom is assigned a positive integer index in order of
// first appearance across clauses; a comment line "c <name>=<index>"
// records the mapping before the clause lines.
func Dimacs(clauses []Clause, w io.Writer) error {
	idx := make(map[string]int)
	var names []string
	nameIndex := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		i := len(idx) + 1
		idx[name] = i
		names = append(names, name)
		return i
	}

	lines := make([][]int, len(clauses))
	for i, c := range clauses {
		lits := make([]int, len(c.Parts))
		for j, p := range c.Parts {
			v := nameIndex(p.Name)
			if p.Neg {
				v = -v
			}
			lits[j] = v
		}
		lines[i] = lits
	}

	prefix := fmt.Sprintf("p cnf %d %d\n", len(idx), len(clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("bf: could not write DIMACS header: %w", err)
	}

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, name := range sorted {
		if _, err := io.WriteString(w, fmt.Sprintf("c %s=%d\n", name, idx[name])); err != nil {
			return fmt.Errorf("bf: could not write DIMACS variable comment: %w", err)
		}
	}

	for _, lits := range lines {
		strs := make([]string, len(lits))
		for i, l := range lits {
			strs[i] = strconv.Itoa(l)
		}
		line := strings.Join(strs, " ") + " 0\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("bf: could not write DIMACS clause: %w", err)
		}
	}
	return nil
}
