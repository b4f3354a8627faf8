// Package graph validates dependency edges between tasks.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var ErrCycle = errors.New("dependency cycle")

// Edge means From depends on To.
type Edge struct {
	From uuid.UUID
	To   uuid.UUID
}

// CycleError names one node that could not be ordered because of a cycle.
type CycleError struct {
	Node uuid.UUID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: through %s", ErrCycle, e.Node)
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// TopoOrder returns the nodes so that every dependency precedes its dependents.
// Ties are broken by uuid string order so the result is stable.
func TopoOrder(edges []Edge) ([]uuid.UUID, error) {
	indegree := make(map[uuid.UUID]int)
	dependents := make(map[uuid.UUID][]uuid.UUID)
	for _, e := range edges {
		if e.From == e.To {
			return nil, &CycleError{Node: e.From}
		}
		if _, ok := indegree[e.To]; !ok {
			indegree[e.To] = 0
		}
		indegree[e.From]++
		dependents[e.To] = append(dependents[e.To], e.From)
	}

	ready := make([]uuid.UUID, 0, len(indegree))
	for n, d := range indegree {
		if d == 0 {
			ready = append(ready, n)
		}
	}
	sortIDs(ready)

	order := make([]uuid.UUID, 0, len(indegree))
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)

		next := dependents[n]
		sortIDs(next)
		for _, m := range next {
			indegree[m]--
			if indegree[m] == 0 {
				ready = append(ready, m)
			}
		}
	}

	if len(order) != len(indegree) {
		remaining := make([]uuid.UUID, 0)
		for n, d := range indegree {
			if d > 0 {
				remaining = append(remaining, n)
			}
		}
		sortIDs(remaining)
		return nil, &CycleError{Node: remaining[0]}
	}
	return order, nil
}

// DetectCycle returns a *CycleError when edges contain a cycle.
func DetectCycle(edges []Edge) error {
	_, err := TopoOrder(edges)
	return err
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}
