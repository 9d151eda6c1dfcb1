package quiz

import (
	"fmt"
	"math/rand"
	"sort"
)

// Source produces questions of a single kind. Implementations must
// guarantee CorrectAnswer ∈ AcceptableAnswers; constructing results through
// NewQuestion satisfies that automatically.
type Source interface {
	Kind() Kind
	Category() Category
	Generate(difficulty Difficulty) Question
}

// Registry maps kinds to sources and categories to selection pools.
type Registry struct {
	sources map[Kind]Source
	pools   map[Category][]Kind
	all     []Kind
}

// NewRegistry builds a registry from the given sources. Pools are derived
// from each source's category; the mixed pool spans every registered kind.
// Pool order is sorted by kind name so selection is deterministic for a
// seeded RNG.
func NewRegistry(sources ...Source) *Registry {
	r := &Registry{
		sources: make(map[Kind]Source),
		pools:   make(map[Category][]Kind),
	}
	for _, s := range sources {
		r.sources[s.Kind()] = s
		r.pools[s.Category()] = append(r.pools[s.Category()], s.Kind())
		r.all = append(r.all, s.Kind())
	}
	for _, pool := range r.pools {
		sort.Slice(pool, func(i, j int) bool { return pool[i] < pool[j] })
	}
	sort.Slice(r.all, func(i, j int) bool { return r.all[i] < r.all[j] })
	r.pools[CategoryMixed] = r.all
	return r
}

// Source returns the source registered for kind.
func (r *Registry) Source(kind Kind) (Source, bool) {
	s, ok := r.sources[kind]
	return s, ok
}

// Pool returns the kinds selectable for category. CategoryTargeted has no
// static pool; the engine resolves it to concrete kinds first.
func (r *Registry) Pool(category Category) ([]Kind, error) {
	pool, ok := r.pools[category]
	if !ok || len(pool) == 0 {
		return nil, fmt.Errorf("no question sources registered for category %q", category)
	}
	return pool, nil
}

// AllKinds returns every registered kind, sorted.
func (r *Registry) AllKinds() []Kind {
	return r.all
}

// Pick selects a kind uniformly from pool using rng and generates a
// question at the given difficulty.
func (r *Registry) Pick(rng *rand.Rand, pool []Kind, difficulty Difficulty) (Question, error) {
	if len(pool) == 0 {
		return Question{}, fmt.Errorf("empty question pool")
	}
	kind := pool[rng.Intn(len(pool))]
	s, ok := r.sources[kind]
	if !ok {
		return Question{}, fmt.Errorf("no source registered for kind %q", kind)
	}
	return s.Generate(difficulty), nil
}
