package cycles

import "github.com/KommuSoft/fsmarkov/transition"

// Visitation colors for the rho walk, mirroring the classic three-color
// DFS marking: white = unvisited, gray = on the current walk,
// black = fully classified.
const (
	white = iota
	gray
	black
)

// Analyze classifies every index of g in a single O(n) pass.
//
// Stage 1 (Scan): for each unvisited index, walk next until a previously
// seen index is met, marking the walked path gray.
// Stage 2 (Classify): if the met index is gray it closes a brand-new cycle
// inside the current path; the cycle suffix becomes a new group and the
// prefix becomes its tail. If the met index is black, the whole path is a
// tail feeding an already classified structure.
// Stage 3 (Seal): the path is marked black; no index is ever walked twice.
//
// The loop over one path performs at most n steps before meeting a gray or
// black index, so Analyze always terminates, even though a finite
// functional graph in fact always contains at least one cycle.
//
// Complexity: O(n) time and memory.
func Analyze(g *transition.Graph) (*Analysis, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Size()

	a := &Analysis{
		groupOf: make([]int, n),
		dist:    make([]int, n),
		tour:    make([]int, n),
	}
	for i := range a.groupOf {
		a.groupOf[i] = -1
	}

	color := make([]uint8, n)
	pos := make([]int, n) // position of a gray index inside path
	path := make([]int, 0, n)

	for i := 0; i < n; i++ {
		if color[i] != white {
			continue
		}

		// Walk forward until we meet a gray or black index.
		path = path[:0]
		idx := i
		for color[idx] == white {
			color[idx] = gray
			pos[idx] = len(path)
			path = append(path, idx)
			idx = g.NextAt(idx)
		}

		if color[idx] == gray {
			// idx closes a new cycle: path[pos[idx]:] are its members,
			// listed in traversal order starting at the entry index.
			at := pos[idx]
			gid := len(a.groups)
			members := make([]int, len(path)-at)
			copy(members, path[at:])
			a.groups = append(a.groups, members)
			for _, v := range members {
				a.groupOf[v] = gid
				a.dist[v] = 0
				a.tour[v] = v
			}
			// The prefix is a tail entering the group at idx.
			for p := at - 1; p >= 0; p-- {
				v := path[p]
				a.dist[v] = at - p
				a.tour[v] = idx
			}
		} else {
			// idx was classified on an earlier walk; the whole path is a
			// tail whose distances chain onto idx's.
			for p := len(path) - 1; p >= 0; p-- {
				v := path[p]
				a.dist[v] = len(path) - p + a.dist[idx]
				a.tour[v] = a.tour[idx]
			}
		}

		for _, v := range path {
			color[v] = black
		}
	}

	return a, nil
}
