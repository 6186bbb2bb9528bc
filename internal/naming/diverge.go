// Package naming derives short, unique display names from vault paths.
package naming

// diverge shortens two sequences to the first position at which they differ, inclusive. When no
// such position exists within the shorter sequence's length, both are truncated to that length.
// The returned slices share memory with the inputs.
func diverge[S ~[]E, E comparable](s1, s2 S) (S, S) {
	n := min(len(s1), len(s2))
	for i := range n {
		if s1[i] != s2[i] {
			return s1[:i+1], s2[:i+1]
		}
	}
	return s1[:n], s2[:n]
}
