package domain

import "fmt"

// SourceStats records what one icon set contributed to a registry build.
type SourceStats struct {
	Source string `json:"source"`
	// Added counts entries registered from this source.
	Added int `json:"added"`
	// Shadowed counts entries skipped because an earlier source already owned the identifier.
	Shadowed int `json:"shadowed"`
	// Rejected counts entries that are not valid icon identifiers or are not renderable.
	Rejected int `json:"rejected"`
}

// Registry maps icon identifiers to icon handles.
// It is immutable after NewRegistry returns.
type Registry struct {
	icons map[string]Icon
	order []string
	stats []SourceStats
}

// NewRegistry merges icon sets in the order given. The first set to register an
// identifier owns it; later sets cannot overwrite it. Callers pass sets in
// SourceOrder so collisions resolve the same way on every run.
//
// Sets may be empty. A registry with no icons at all is an error of kind KindEmptyRegistry.
func NewRegistry(sets ...IconSet) (*Registry, error) {
	r := &Registry{
		icons: map[string]Icon{},
		stats: make([]SourceStats, 0, len(sets)),
	}

	for _, set := range sets {
		st := SourceStats{Source: set.Source}
		for _, ic := range set.Icons {
			if ic.Slug == "" || !IsIconIdentifier(ic.ID, set.Prefix) {
				st.Rejected++
				continue
			}
			if _, exists := r.icons[ic.ID]; exists {
				st.Shadowed++
				continue
			}
			if ic.Source == "" {
				ic.Source = set.Source
			}
			r.icons[ic.ID] = ic
			r.order = append(r.order, ic.ID)
			st.Added++
		}
		r.stats = append(r.stats, st)
	}

	if len(r.order) == 0 {
		return nil, &OpError{
			Op:   "registry.build",
			Kind: KindEmptyRegistry,
			Err:  fmt.Errorf("%d source(s) contributed no icons: %w", len(sets), ErrEmptyRegistry),
		}
	}

	return r, nil
}

// Lookup returns the icon registered under id. Identifiers are case-sensitive.
func (r *Registry) Lookup(id string) (Icon, bool) {
	if r == nil || id == "" {
		return Icon{}, false
	}
	ic, ok := r.icons[id]
	return ic, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// Identifiers returns all identifiers in registration order.
func (r *Registry) Identifiers() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Icons returns all icons in registration order.
func (r *Registry) Icons() []Icon {
	if r == nil {
		return nil
	}
	out := make([]Icon, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.icons[id])
	}
	return out
}

// Len returns the number of registered icons.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Stats returns per-source build statistics in registration order.
func (r *Registry) Stats() []SourceStats {
	if r == nil {
		return nil
	}
	out := make([]SourceStats, len(r.stats))
	copy(out, r.stats)
	return out
}
