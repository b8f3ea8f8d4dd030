package beads

import (
	"fmt"
	"sort"
)

type Registry struct {
	algorithms map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]Algorithm),
	}

	r.algorithms["bead"] = Sort
	r.algorithms["gravity"] = Sort

	return r
}

func (r *Registry) Register(name string, algo Algorithm) {
	r.algorithms[name] = algo
}

func (r *Registry) Get(name string) (Algorithm, error) {
	algo, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return algo, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
