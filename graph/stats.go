package graph

// Stats computes degree statistics in a single pass over all words.
//
// AverageDegree uses real division. Every word attaining the maximum or
// minimum degree is reported, not only the first one found.
//
// Returns ErrEmptyGraph and a zero Stats when the graph has no words.
//
// Complexity: O(V + E) including component labelling.
func (g *Graph) Stats() (Stats, error) {
	n := g.Len()
	if n == 0 {
		return Stats{}, ErrEmptyGraph
	}

	s := Stats{Words: n, MaxDegree: -1, MinDegree: -1}
	for i := 0; i < n; i++ {
		d := g.Degree(i)
		w := g.lex.Text(i)
		s.TotalDegree += d

		switch {
		case d > s.MaxDegree:
			s.MaxDegree = d
			s.MaxDegreeWords = []string{w}
		case d == s.MaxDegree:
			s.MaxDegreeWords = append(s.MaxDegreeWords, w)
		}
		switch {
		case s.MinDegree < 0 || d < s.MinDegree:
			s.MinDegree = d
			s.MinDegreeWords = []string{w}
		case d == s.MinDegree:
			s.MinDegreeWords = append(s.MinDegreeWords, w)
		}
		if d == 0 {
			s.Isolated = append(s.Isolated, w)
		}
	}
	s.AverageDegree = float64(s.TotalDegree) / float64(n)

	labels, count := g.Components()
	sizes := make([]int, count)
	for _, c := range labels {
		sizes[c]++
	}
	s.Components = count
	for _, sz := range sizes {
		s.LargestComponent = max(s.LargestComponent, sz)
	}

	return s, nil
}
