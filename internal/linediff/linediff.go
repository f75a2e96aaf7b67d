// Package linediff computes line-level differences between two text
// snapshots using a longest-common-subsequence table.
//
// The input is treated as plain text. Callers that diff structured values
// canonicalise them (for example, pretty-print JSON) before calling Lines.
package linediff

import "strings"

// Kind tags a diff segment.
type Kind string

const (
	KindSame    Kind = "same"
	KindAdded   Kind = "added"
	KindRemoved Kind = "removed"
)

// Segment is one line of output tagged with how it relates to the inputs.
type Segment struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// Diff is the ordered result of comparing two snapshots.
type Diff struct {
	Segments []Segment `json:"segments"`

	// Empty is set when both snapshots had no content at all. Segments is
	// then a non-nil, zero-length slice.
	Empty bool `json:"empty"`

	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// Changed reports whether the diff contains any added or removed line.
func (d Diff) Changed() bool {
	return d.Added > 0 || d.Removed > 0
}

// Lines diffs oldText against newText line by line.
//
// When the two lines under the cursor differ and skipping the old line keeps
// a common subsequence at least as long as skipping the new line, the old
// line is emitted as removed first. The tie-break is fixed, so the output is
// deterministic for a given pair of inputs.
func Lines(oldText, newText string) Diff {
	a := splitLines(oldText)
	b := splitLines(newText)

	if len(a) == 0 && len(b) == 0 {
		return Diff{Segments: []Segment{}, Empty: true}
	}

	m, n := len(a), len(b)
	width := n + 1

	// lcs[i*width+j] is the LCS length of a[i:] and b[j:].
	lcs := make([]int, (m+1)*width)
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i*width+j] = lcs[(i+1)*width+j+1] + 1
			} else {
				lcs[i*width+j] = max(lcs[(i+1)*width+j], lcs[i*width+j+1])
			}
		}
	}

	d := Diff{Segments: make([]Segment, 0, m+n-lcs[0])}

	i, j := 0, 0
	for i < m && j < n {
		switch {
		case a[i] == b[j]:
			d.Segments = append(d.Segments, Segment{Kind: KindSame, Value: a[i]})
			i++
			j++
		case lcs[(i+1)*width+j] >= lcs[i*width+j+1]:
			d.Segments = append(d.Segments, Segment{Kind: KindRemoved, Value: a[i]})
			d.Removed++
			i++
		default:
			d.Segments = append(d.Segments, Segment{Kind: KindAdded, Value: b[j]})
			d.Added++
			j++
		}
	}
	for ; i < m; i++ {
		d.Segments = append(d.Segments, Segment{Kind: KindRemoved, Value: a[i]})
		d.Removed++
	}
	for ; j < n; j++ {
		d.Segments = append(d.Segments, Segment{Kind: KindAdded, Value: b[j]})
		d.Added++
	}

	return d
}

// splitLines splits on "\n". The empty string has no lines; a trailing
// newline yields a trailing empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
