package hungarian

import "math"

// hopcroftKarp computes a maximum matching on the bipartite graph whose
// edges are the zero entries of reduced, using BFS layering followed by
// DFS augmentation, repeated until no augmenting path reaches the NIL
// layer. matchRow[i] and matchCol[j] are -1 when unmatched.
func hopcroftKarp(reduced [][]int) (matchRow, matchCol []int) {
	n := len(reduced)
	matchRow = make([]int, n)
	matchCol = make([]int, n)
	for i := range matchRow {
		matchRow[i] = -1
		matchCol[i] = -1
	}

	dist := make([]int, n)
	const nilDist = math.MaxInt32

	bfs := func() (distNIL int) {
		distNIL = nilDist
		var queue []int
		for i := 0; i < n; i++ {
			if matchRow[i] == -1 {
				dist[i] = 0
				queue = append(queue, i)
			} else {
				dist[i] = nilDist
			}
		}
		for len(queue) > 0 {
			r := queue[0]
			queue = queue[1:]
			if dist[r] >= distNIL {
				continue
			}
			for c := 0; c < n; c++ {
				if reduced[r][c] != 0 {
					continue
				}
				mr := matchCol[c]
				if mr == -1 {
					if distNIL == nilDist {
						distNIL = dist[r] + 1
					}
				} else if dist[mr] == nilDist {
					dist[mr] = dist[r] + 1
					queue = append(queue, mr)
				}
			}
		}
		return distNIL
	}

	var dfs func(r int, distNIL int) bool
	dfs = func(r int, distNIL int) bool {
		for c := 0; c < n; c++ {
			if reduced[r][c] != 0 {
				continue
			}
			mr := matchCol[c]
			if mr == -1 {
				if distNIL == dist[r]+1 {
					matchRow[r] = c
					matchCol[c] = r
					return true
				}
				continue
			}
			if dist[mr] == dist[r]+1 && dfs(mr, distNIL) {
				matchRow[r] = c
				matchCol[c] = r
				return true
			}
		}
		dist[r] = nilDist
		return false
	}

	for {
		distNIL := bfs()
		if distNIL == nilDist {
			break
		}
		for i := 0; i < n; i++ {
			if matchRow[i] == -1 {
				dfs(i, distNIL)
			}
		}
	}
	return matchRow, matchCol
}
