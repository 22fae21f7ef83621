// Package combination joins independent per-variable choices into joint
// assignments.
package combination

import (
	"maps"
	"slices"

	"github.com/denizgursoy/senaryo/internal/random"
)

type (
	// Candidates maps a variable to the values it may take.
	Candidates[T any] map[string][]T

	// Combination assigns one value to each variable.
	Combination[T any] map[string]T

	// Strategy combines candidates into joint assignments. Variables are
	// visited in sorted order and variables without candidates are left
	// out. No variable at all yields a single empty combination.
	Strategy[T any] interface {
		Combine(candidates Candidates[T]) []Combination[T]
	}

	CartesianProduct[T any] struct{}

	// OneWise makes every candidate appear at least once using as many
	// combinations as the longest list. Shorter lists are filled with
	// random candidates.
	OneWise[T any] struct {
		Random *random.Random
	}

	// ShuffledOneWise shuffles every list before applying OneWise.
	ShuffledOneWise[T any] struct {
		Random *random.Random
	}

	SingleRandomOfEach[T any] struct {
		Random *random.Random
	}

	// IndexOfEach picks the candidate at Index, or the last one when the
	// list is shorter.
	IndexOfEach[T any] struct {
		Index int
	}
)

// Variables returns the variables that have candidates, sorted.
func (c Candidates[T]) Variables() []string {
	vars := make([]string, 0, len(c))
	for _, v := range slices.Sorted(maps.Keys(c)) {
		if len(c[v]) > 0 {
			vars = append(vars, v)
		}
	}
	return vars
}

func (CartesianProduct[T]) Combine(candidates Candidates[T]) []Combination[T] {
	result := []Combination[T]{{}}
	for _, v := range candidates.Variables() {
		next := make([]Combination[T], 0, len(result)*len(candidates[v]))
		for _, partial := range result {
			for _, value := range candidates[v] {
				c := maps.Clone(partial)
				c[v] = value
				next = append(next, c)
			}
		}
		result = next
	}
	return result
}

func (s OneWise[T]) Combine(candidates Candidates[T]) []Combination[T] {
	return oneWise(s.Random, candidates)
}

func (s ShuffledOneWise[T]) Combine(candidates Candidates[T]) []Combination[T] {
	shuffled := Candidates[T]{}
	for _, v := range candidates.Variables() {
		values := slices.Clone(candidates[v])
		s.Random.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		shuffled[v] = values
	}
	return oneWise(s.Random, shuffled)
}

func oneWise[T any](r *random.Random, candidates Candidates[T]) []Combination[T] {
	vars := candidates.Variables()
	size := 1
	for _, v := range vars {
		size = max(size, len(candidates[v]))
	}

	result := make([]Combination[T], 0, size)
	for i := range size {
		c := Combination[T]{}
		for _, v := range vars {
			values := candidates[v]
			if i < len(values) {
				c[v] = values[i]
				continue
			}
			c[v] = values[r.IntN(len(values))]
		}
		result = append(result, c)
	}
	return result
}

func (s SingleRandomOfEach[T]) Combine(candidates Candidates[T]) []Combination[T] {
	c := Combination[T]{}
	for _, v := range candidates.Variables() {
		values := candidates[v]
		c[v] = values[s.Random.IntN(len(values))]
	}
	return []Combination[T]{c}
}

func (s IndexOfEach[T]) Combine(candidates Candidates[T]) []Combination[T] {
	c := Combination[T]{}
	for _, v := range candidates.Variables() {
		values := candidates[v]
		c[v] = values[min(max(s.Index, 0), len(values)-1)]
	}
	return []Combination[T]{c}
}
