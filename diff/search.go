package diff

import (
	"math"
	"sort"
)

// Matcher builds a correspondence chain from a similarity table
type Matcher func(table *SimTable, threshold int, cost CostFunction) *SearchNode

// Greedy pairs old elements in descending order of their best score with the best unclaimed new element, a zero score is never paired
func Greedy(table *SimTable, threshold int, cost CostFunction) *SearchNode {
	if len(table.Old) == 0 || len(table.New) == 0 {
		return nil
	}
	order := make([]int, len(table.Old))
	best := make([]int, len(table.Old))
	for i := range table.Old {
		order[i] = i
		_, best[i] = table.RowMax(i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return best[order[a]] > best[order[b]]
	})
	claimed := make([]bool, len(table.New))
	var result *SearchNode
	for _, i := range order {
		candidate, score := -1, -1
		for j := range table.New {
			if claimed[j] {
				continue
			}
			if s := table.Score(i, j); s > score {
				candidate, score = j, s
			}
		}
		if candidate == -1 || score <= 0 || score < threshold {
			continue
		}
		claimed[candidate] = true
		result = NewSearchNode(result, table.Old[i], table.New[candidate], score, cost)
	}
	return result
}

// Optimal pairs elements maximizing total score of accepted pairs, pairs below threshold or scoring zero are never accepted
func Optimal(table *SimTable, threshold int, cost CostFunction) *SearchNode {
	rows, cols := len(table.Old), len(table.New)
	if rows == 0 || cols == 0 {
		return nil
	}
	size := max(rows, cols)
	costs := make([][]float64, size)
	for i := range costs {
		costs[i] = make([]float64, size)
		for j := range costs[i] {
			score := 0
			if i < rows && j < cols {
				if s := table.Score(i, j); s >= threshold {
					score = s
				}
			}
			costs[i][j] = float64(100 - score)
		}
	}
	assignment := assign(costs)
	var result *SearchNode
	for i := 0; i < rows; i++ {
		j := assignment[i]
		if j >= cols {
			continue
		}
		score := table.Score(i, j)
		if score <= 0 || score < threshold {
			continue
		}
		result = NewSearchNode(result, table.Old[i], table.New[j], score, cost)
	}
	return result
}

// assign solves square minimum cost assignment (Hungarian method with potentials), returns column for every row
func assign(costs [][]float64) []int {
	n := len(costs)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)
	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				if cur := costs[i0-1][j-1] - u[i0] - v[j]; cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}
	result := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			result[p[j]-1] = j - 1
		}
	}
	return result
}
