package uiegen

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/query"
)

// DependenciesOf returns the variables of the UI Elements the element's
// properties refer to, directly or inside queries.
func DependenciesOf(uie *models.UIElement, spec *models.Spec, doc *models.Document) []string {
	var names []string
	for _, p := range uie.Properties {
		if p.Value == nil {
			continue
		}
		switch p.Value.Kind {
		case models.KindUIElement:
			names = append(names, p.Value.Text())
		case models.KindQuery:
			for _, ref := range query.References(p.Value.Text()) {
				if ref.Kind == query.ReferenceUIElement {
					names = append(names, ref.Name)
				}
			}
		}
	}

	var deps []string
	for _, name := range names {
		variable := name
		if other := spec.UIElementByVariable(name, doc); other != nil {
			variable = other.Variable()
		}
		if !slices.Contains(deps, variable) {
			deps = append(deps, variable)
		}
	}
	return deps
}

// SortByDependencies orders the variables of elements so that every
// element comes after the elements it depends on. Dependencies outside
// elements are ignored. Elements in a cycle, or depending on one, are left
// out of the order and reported with ErrCircularReference.
func SortByDependencies(elements []*models.UIElement, spec *models.Spec, doc *models.Document) ([]string, error) {
	dependents := map[string][]string{}
	pending := map[string]int{}
	for _, uie := range elements {
		pending[uie.Variable()] = 0
	}
	for _, uie := range elements {
		v := uie.Variable()
		for _, dep := range DependenciesOf(uie, spec, doc) {
			if _, ok := pending[dep]; !ok {
				continue
			}
			dependents[dep] = append(dependents[dep], v)
			pending[v]++
		}
	}

	var ready []string
	for v, n := range pending {
		if n == 0 {
			ready = append(ready, v)
		}
	}
	slices.Sort(ready)

	order := make([]string, 0, len(pending))
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)
		delete(pending, v)

		var unlocked []string
		for _, d := range dependents[v] {
			pending[d]--
			if pending[d] == 0 {
				unlocked = append(unlocked, d)
			}
		}
		ready = append(ready, unlocked...)
		slices.Sort(ready)
	}

	if len(pending) > 0 {
		cyclic := slices.Sorted(maps.Keys(pending))
		return order, fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cyclic, ", "))
	}
	return order, nil
}
