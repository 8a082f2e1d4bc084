package diag

import "golang.org/x/exp/slices"

// Sort orders the list by the start of each diagnostic's range, the same
// ordering the teacher's scanner.ErrorList uses for its position-ordered
// output.
func (l List) Sort() {
	slices.SortFunc(l, func(a, b Error) int {
		return int(a.Range().Start - b.Range().Start)
	})
}
