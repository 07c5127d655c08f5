package graph

// Components labels every word with the connected component it belongs to.
// Labels are numbered from 0 in order of each component's first word in the
// lexicon; count is the number of distinct components. Two words are joined
// by some ladder iff their labels are equal.
//
// Time:   O(V + E).
// Memory: O(V) for labels and the queue.
func (g *Graph) Components() (labels []int, count int) {
	n := g.Len()
	labels = make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if labels[start] >= 0 {
			continue
		}
		labels[start] = count
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.adj[queue[qi]] {
				if labels[v] < 0 {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return labels, count
}
