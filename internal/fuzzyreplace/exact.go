package fuzzyreplace

import "iter"

// Exact is the priority-1 replacer. It yields oldFragment verbatim and
// leaves it to the driver to check whether that value actually occurs in
// content - the replacer itself never inspects content.
func Exact(_ string, oldFragment string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(oldFragment)
	}
}
